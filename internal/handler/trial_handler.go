package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/service"
	"github.com/yashvi-parmar/freethrows-backend-go/pkg/response"
)

// TrialHandler handles HTTP requests for trial lookups
type TrialHandler struct {
	trialService *service.TrialService
}

// NewTrialHandler creates a new trial handler
func NewTrialHandler(trialService *service.TrialService) *TrialHandler {
	return &TrialHandler{trialService: trialService}
}

// List handles GET /api/v1/trials
func (h *TrialHandler) List(c *gin.Context) {
	trials, err := h.trialService.List()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, trials)
}

// WristTimeseries handles GET /api/v1/trials/:trial_id/wrist-timeseries
func (h *TrialHandler) WristTimeseries(c *gin.Context) {
	section, err := h.trialService.WristTimeseries(c.Param("trial_id"))
	if err != nil {
		writeTrialError(c, err)
		return
	}
	response.Success(c, section)
}

// writeTrialError maps trial lookup failures to user-facing responses:
// malformed IDs are 400, unknown trials 404, empty analysis windows 422.
func writeTrialError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTrialID):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrTrialNotFound):
		response.NotFound(c, "trial not found")
	case errors.Is(err, service.ErrNoDataInRange):
		response.UnprocessableEntity(c, "no data in range")
	default:
		response.InternalError(c, err.Error())
	}
}
