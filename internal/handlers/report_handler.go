package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadflow/internal/pdf"
	"leadflow/internal/services"
)

type ReportHandler struct {
	Service          *services.ReportService
	Generator        *pdf.Generator
	DefaultThreshold float64
}

func NewReportHandler(service *services.ReportService, generator *pdf.Generator, defaultThreshold float64) *ReportHandler {
	return &ReportHandler{Service: service, Generator: generator, DefaultThreshold: defaultThreshold}
}

func (h *ReportHandler) filter(c *gin.Context) services.ReportFilter {
	threshold := h.DefaultThreshold
	if raw := c.Query("salary_threshold"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			threshold = v
		}
	}
	return services.ReportFilter{
		From:            dateQuery(c, "from"),
		To:              dateQuery(c, "to"),
		AdID:            c.Query("ad_id"),
		SalaryThreshold: threshold,
	}
}

// @Summary      Aggregate report
// @Description  Customer-database aggregates blended with lead-store matching statistics
// @Tags         Reports
// @Produce      json
// @Param        from              query  string  false  "Window start (YYYY-MM-DD)"
// @Param        to                query  string  false  "Window end (YYYY-MM-DD)"
// @Param        ad_id             query  string  false  "Campaign filter"
// @Param        salary_threshold  query  number  false  "Quality salary threshold"
// @Success      200  {object}  services.ReportSummary
// @Router       /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	data, err := h.Service.Summary(h.filter(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to build report", err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// Reconcile re-runs cross-store matching over a date window.
func (h *ReportHandler) Reconcile(c *gin.Context) {
	from := dateQuery(c, "from")
	to := dateQuery(c, "to")
	if from.IsZero() || to.IsZero() {
		respondError(c, http.StatusBadRequest, "from and to (YYYY-MM-DD) are required", nil)
		return
	}
	result, err := h.Service.Reconcile(from, to)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "reconciliation failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ReportHandler) SummaryPDF(c *gin.Context) {
	f := h.filter(c)
	data, err := h.Service.Summary(f)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to build report", err)
		return
	}
	path, err := h.Generator.GenerateSummary(data, f.From, f.To)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to render report", err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
