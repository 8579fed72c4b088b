package controllers

import (
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type NotificationController struct {
	Log  *zap.Logger
	Feed contracts.NotificationFeed
}

func NewNotificationController(logger *zap.Logger, feed contracts.NotificationFeed) *NotificationController {
	return &NotificationController{
		Log:  logger,
		Feed: feed,
	}
}

// Drain hands the browser every notification queued since its last poll.
func (ctrl *NotificationController) Drain(w http.ResponseWriter, r *http.Request) {
	notifications, err := ctrl.Feed.Drain(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationsGetSuccess, notifications)
}
