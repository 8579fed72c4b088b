package utils

import (
	"docai-portal/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GeneratePortalSessionID() string {
	return uuid.NewString()
}
