package report

import (
	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// Handler serves the admin reporting endpoints.
type Handler struct {
	svc Service
}

// NewHandler creates a new report Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Summary handles GET /api/v1/admin/reports/summary.
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, summary)
}

// Sales handles GET /api/v1/admin/reports/sales.
// Accepts the same date_from and date_to query params as listing endpoints.
func (h *Handler) Sales(c *gin.Context) {
	opts := pkg.ParseListOptions(c)

	report, err := h.svc.Sales(c.Request.Context(), opts.DateFrom, opts.DateTo)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, report)
}
