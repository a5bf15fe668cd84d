package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/service"
	"github.com/yashvi-parmar/freethrows-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for the individual report sections
type StatsHandler struct {
	reportService *service.ReportService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(reportService *service.ReportService) *StatsHandler {
	return &StatsHandler{reportService: reportService}
}

func (h *StatsHandler) serveSection(c *gin.Context, build func() (*models.ReportSection, error)) {
	section, err := build()
	if err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	response.Success(c, section)
}

// GroupMeans handles GET /api/v1/stats/group-means
func (h *StatsHandler) GroupMeans(c *gin.Context) {
	h.serveSection(c, h.reportService.GroupMeansSection)
}

// WristStability handles GET /api/v1/stats/wrist-stability
func (h *StatsHandler) WristStability(c *gin.Context) {
	h.serveSection(c, h.reportService.WristStabilitySection)
}

// SymmetryDensity handles GET /api/v1/stats/symmetry-density
func (h *StatsHandler) SymmetryDensity(c *gin.Context) {
	h.serveSection(c, h.reportService.SymmetrySection)
}

// PinkyOffset handles GET /api/v1/stats/pinky-offset
func (h *StatsHandler) PinkyOffset(c *gin.Context) {
	h.serveSection(c, h.reportService.PinkyOffsetSection)
}

// Motion handles GET /api/v1/stats/motion
func (h *StatsHandler) Motion(c *gin.Context) {
	h.serveSection(c, h.reportService.MotionSection)
}
