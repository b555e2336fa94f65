package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/application/service"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting endpoints
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// reportRange extracts outlet and inclusive date range from the request
func (h *ReportHandler) reportRange(c *gin.Context) (uuid.UUID, time.Time, time.Time, bool) {
	outletID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		response.Error(c, err)
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	return outletID, start, end, true
}

// DailyRevenue handles GET /outlets/:id/reports/daily-revenue
func (h *ReportHandler) DailyRevenue(c *gin.Context) {
	outletID, start, end, ok := h.reportRange(c)
	if !ok {
		return
	}

	rows, err := h.reportService.DailyRevenue(c.Request.Context(), outletID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily revenue retrieved", rows)
}

// SalesSummary handles GET /outlets/:id/reports/sales-summary
func (h *ReportHandler) SalesSummary(c *gin.Context) {
	outletID, start, end, ok := h.reportRange(c)
	if !ok {
		return
	}

	rows, err := h.reportService.SalesSummary(c.Request.Context(), outletID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales summary retrieved", rows)
}

// SalesDetail handles GET /outlets/:id/reports/sales-detail
func (h *ReportHandler) SalesDetail(c *gin.Context) {
	outletID, start, end, ok := h.reportRange(c)
	if !ok {
		return
	}

	rows, err := h.reportService.SalesDetail(c.Request.Context(), outletID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales detail retrieved", rows)
}

// IngredientUsage handles GET /outlets/:id/reports/ingredient-usage
func (h *ReportHandler) IngredientUsage(c *gin.Context) {
	outletID, start, end, ok := h.reportRange(c)
	if !ok {
		return
	}

	rows, err := h.reportService.IngredientUsage(c.Request.Context(), outletID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ingredient usage retrieved", rows)
}

// ExportSalesDetail handles GET /outlets/:id/reports/sales-detail/export
func (h *ReportHandler) ExportSalesDetail(c *gin.Context) {
	outletID, start, end, ok := h.reportRange(c)
	if !ok {
		return
	}

	buf, err := h.reportService.ExportSalesDetailXLSX(c.Request.Context(), outletID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("sales-detail-%s-%s.xlsx",
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
