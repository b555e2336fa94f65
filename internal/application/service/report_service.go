package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/apperror"
	"github.com/restopos/restopos-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// ReportService serves the read-only reporting endpoints and the XLSX export
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// normalizeRange turns inclusive business dates into a half-open UTC range
func normalizeRange(start, end time.Time) (time.Time, time.Time, error) {
	s := utils.UTCMidnight(start)
	e := utils.UTCMidnight(end).Add(24 * time.Hour)
	if !e.After(s) {
		return time.Time{}, time.Time{}, apperror.NewBadRequestError("End date must not be before start date")
	}
	return s, e, nil
}

// DailyRevenue returns per-day billed revenue for the date range
func (s *ReportService) DailyRevenue(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]repository.DailyRevenueResult, error) {
	from, to, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.reportRepo.DailyRevenue(ctx, outletID, from, to)
}

// SalesSummary returns billed totals grouped by order type and payment type
func (s *ReportService) SalesSummary(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]repository.SalesSummaryResult, error) {
	from, to, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.reportRepo.SalesSummary(ctx, outletID, from, to)
}

// SalesDetail returns one row per billing in the date range, voids included
func (s *ReportService) SalesDetail(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]repository.SalesDetailResult, error) {
	from, to, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.reportRepo.SalesDetail(ctx, outletID, from, to)
}

// IngredientUsage returns ingredient quantities consumed by paid orders in
// the date range
func (s *ReportService) IngredientUsage(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]repository.IngredientUsageResult, error) {
	from, to, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.reportRepo.IngredientUsage(ctx, outletID, from, to)
}

// ExportSalesDetailXLSX renders the sales detail report as an Excel workbook
func (s *ReportService) ExportSalesDetailXLSX(ctx context.Context, outletID uuid.UUID, start, end time.Time) (*bytes.Buffer, error) {
	rows, err := s.SalesDetail(ctx, outletID, start, end)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sales Detail"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Receipt", "Order", "Order Type", "Payment", "Status", "Subtotal", "Discount", "Total", "Paid At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		values := []interface{}{
			row.ReceiptNumber,
			row.OrderNumber,
			row.OrderTypeName,
			row.PaymentType,
			row.Status,
			row.Subtotal,
			row.Discount,
			row.Total,
			row.PaidAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
