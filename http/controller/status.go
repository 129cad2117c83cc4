package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-drive-service/utils"
)

// CheckStatus reports service liveness and probes the object storage backend.
func (ctrl *Controller) CheckStatus(c *gin.Context) {
	storageStatus := "ok"
	if err := ctrl.Infra.Storage.Health(c.Request.Context()); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(c.Request.Context(), "[Status] Storage health check failed: %v", err)
		storageStatus = "unreachable"
	}

	utils.JSON200(c, gin.H{
		"status":  "ok",
		"storage": storageStatus,
	})
}
