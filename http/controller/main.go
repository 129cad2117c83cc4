package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-drive-service/config"
	"github.com/tnqbao/gau-drive-service/infra"
	"github.com/tnqbao/gau-drive-service/service"
	"github.com/tnqbao/gau-drive-service/utils"
)

type Controller struct {
	Config  *config.Config
	Infra   *infra.Infra
	Service *service.Service
}

func NewController(config *config.Config, infra *infra.Infra, svc *service.Service) *Controller {
	if svc == nil {
		panic("Failed to initialize Service")
	}
	return &Controller{
		Config:  config,
		Infra:   infra,
		Service: svc,
	}
}

// respondServiceError translates a service error kind into an HTTP status.
// Message text never drives the mapping.
func (ctrl *Controller) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalid):
		utils.JSON400(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		utils.JSON404(c, err.Error())
	case errors.Is(err, service.ErrConflict):
		utils.JSON409(c, err.Error())
	default:
		ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "[API] Unhandled service error")
		utils.JSON500(c, "internal server error")
	}
}

func parseOptionalUUID(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
