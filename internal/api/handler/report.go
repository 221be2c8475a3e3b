package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/milewise/mile_go_server/internal/api/middleware"
	"github.com/milewise/mile_go_server/internal/pkg/response"
	"github.com/milewise/mile_go_server/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Dashboard returns current month/year stats for the caller.
// GET /api/v1/dashboard/stats
func (h *ReportHandler) Dashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	stats, err := h.reportService.Dashboard(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, stats)
}

// TaxReport aggregates a caller-chosen date range.
// GET /api/v1/reports/tax?start_date=...&end_date=...
func (h *ReportHandler) TaxReport(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		response.ParamError(c, "invalid start_date")
		return
	}
	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		response.ParamError(c, "invalid end_date")
		return
	}

	report, err := h.reportService.TaxReport(userID, start, end)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, report)
}

// parseDate accepts ISO-8601 timestamps (Z suffix means UTC) or plain dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if !strings.Contains(value, "T") {
		if t, err := time.Parse("2006-01-02", value); err == nil {
			return t.UTC(), nil
		}
	}
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
