package contracts

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/dto/requests"
)

type AuthService interface {
	Register(ctx context.Context, request *requests.RegisterPayload) (*models.Session, error)
	Login(ctx context.Context, role models.Role, request *requests.Login) (*models.Session, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*models.User, error)
	ChangePassword(ctx context.Context, request *requests.ChangePassword) error
}
