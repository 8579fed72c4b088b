package controllers

import (
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	Version string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{Version: version}
}

func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthySuccess, map[string]string{"version": ctrl.Version})
}
