package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	domainRepo "github.com/restopos/restopos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) DailyRevenue(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]domainRepo.DailyRevenueResult, error) {
	var results []domainRepo.DailyRevenueResult
	err := dbFrom(ctx, r.db).Raw(`
		SELECT
			DATE_TRUNC('day', b.paid_at AT TIME ZONE 'UTC') AS date,
			COUNT(*) AS order_count,
			COALESCE(SUM(b.subtotal), 0) AS gross_revenue,
			COALESCE(SUM(b.discount), 0) AS discount,
			COALESCE(SUM(b.total), 0) AS net_revenue
		FROM billings b
		WHERE b.outlet_id = ?
			AND b.status = 'PAID'
			AND b.paid_at >= ? AND b.paid_at < ?
		GROUP BY DATE_TRUNC('day', b.paid_at AT TIME ZONE 'UTC')
		ORDER BY date ASC
	`, outletID, start, end).Scan(&results).Error
	return results, err
}

func (r *reportRepository) SalesSummary(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]domainRepo.SalesSummaryResult, error) {
	var results []domainRepo.SalesSummaryResult
	err := dbFrom(ctx, r.db).Raw(`
		SELECT
			ot.name AS order_type_name,
			b.payment_type AS payment_type,
			COUNT(*) AS order_count,
			COALESCE(SUM(b.total), 0) AS total_amount
		FROM billings b
		JOIN orders o ON o.id = b.order_id
		JOIN order_types ot ON ot.id = o.order_type_id
		WHERE b.outlet_id = ?
			AND b.status = 'PAID'
			AND b.paid_at >= ? AND b.paid_at < ?
		GROUP BY ot.name, b.payment_type
		ORDER BY ot.name ASC, b.payment_type ASC
	`, outletID, start, end).Scan(&results).Error
	return results, err
}

func (r *reportRepository) SalesDetail(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]domainRepo.SalesDetailResult, error) {
	var results []domainRepo.SalesDetailResult
	err := dbFrom(ctx, r.db).Raw(`
		SELECT
			b.receipt_number,
			o.order_number,
			ot.name AS order_type_name,
			b.payment_type AS payment_type,
			b.status AS status,
			b.subtotal,
			b.discount,
			b.total,
			b.paid_at
		FROM billings b
		JOIN orders o ON o.id = b.order_id
		JOIN order_types ot ON ot.id = o.order_type_id
		WHERE b.outlet_id = ?
			AND b.paid_at >= ? AND b.paid_at < ?
		ORDER BY b.paid_at ASC
	`, outletID, start, end).Scan(&results).Error
	return results, err
}

func (r *reportRepository) IngredientUsage(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]domainRepo.IngredientUsageResult, error) {
	var results []domainRepo.IngredientUsageResult
	err := dbFrom(ctx, r.db).Raw(`
		SELECT
			i.name AS ingredient_name,
			i.unit AS unit,
			COALESCE(SUM(l.quantity), 0) AS quantity_used
		FROM ingredient_stock_logs l
		JOIN ingredients i ON i.id = l.ingredient_id
		WHERE l.outlet_id = ?
			AND l.type IN ('OUTBOUND_NM', 'OUTBOUND_BOSS', 'OUTBOUND_STAFF')
			AND l.transaction_date >= ? AND l.transaction_date < ?
		GROUP BY i.name, i.unit
		ORDER BY i.name ASC
	`, outletID, start, end).Scan(&results).Error
	return results, err
}
