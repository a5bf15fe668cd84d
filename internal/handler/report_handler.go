package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/service"
	"github.com/yashvi-parmar/freethrows-backend-go/pkg/response"
)

// DefaultTrialID is the trial preselected in the report input.
const DefaultTrialID = "T0002"

// ReportHandler handles HTTP requests for the full report
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport handles GET /api/v1/report?trial_id=T0002
//
// The report always renders: a section that cannot be built (unknown trial,
// degenerate group) carries an inline error and the others are unaffected.
func (h *ReportHandler) GetReport(c *gin.Context) {
	trialID := c.DefaultQuery("trial_id", DefaultTrialID)
	response.Success(c, h.reportService.Build(trialID))
}
