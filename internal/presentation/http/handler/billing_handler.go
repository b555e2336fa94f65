package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/application/service"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/request"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/response"
	"github.com/restopos/restopos-api/pkg/pagination"
)

// BillingHandler handles billing endpoints
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Create handles POST /orders/:id/billing
func (h *BillingHandler) Create(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.CreateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	billing, err := h.billingService.CreateBilling(c.Request.Context(), &service.CreateBillingInput{
		OrderID:        orderID,
		PaymentType:    enum.PaymentType(req.PaymentType),
		AmountPaid:     req.AmountPaid,
		ManualDiscount: req.ManualDiscount,
		Remark:         req.Remark,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Billing created", billing)
}

// Void handles POST /orders/:id/billing/void
func (h *BillingHandler) Void(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.VoidBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	billing, err := h.billingService.VoidBilling(c.Request.Context(), orderID, req.Remark)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing voided", billing)
}

// VoidByReceipt handles POST /outlets/:id/billings/:receipt/void
func (h *BillingHandler) VoidByReceipt(c *gin.Context) {
	outletID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	outletID, err = resolveOutletScope(c, outletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.VoidBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	billing, err := h.billingService.VoidBillingByReceipt(c.Request.Context(), outletID, c.Param("receipt"), req.Remark)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing voided", billing)
}

// GetByOrder handles GET /orders/:id/billing
func (h *BillingHandler) GetByOrder(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	billing, err := h.billingService.GetBillingByOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing retrieved", billing)
}

// List handles GET /billings
func (h *BillingHandler) List(c *gin.Context) {
	var req request.BillingFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	params := &repository.BillingFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
	}

	if bound := GetOutletID(c); bound != nil {
		params.OutletID = bound
	} else if req.OutletID != "" {
		id, err := uuid.Parse(req.OutletID)
		if err != nil {
			response.BadRequest(c, "Invalid outlet_id")
			return
		}
		params.OutletID = &id
	}
	if req.Status != "" {
		status := enum.BillingStatus(req.Status)
		params.Status = &status
	}
	if req.PaymentType != "" {
		pt := enum.PaymentType(req.PaymentType)
		if !pt.IsValid() {
			response.BadRequest(c, "Invalid payment_type")
			return
		}
		params.PaymentType = &pt
	}
	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		params.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		end = end.Add(24 * time.Hour)
		params.EndDate = &end
	}

	result, err := h.billingService.ListBillings(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Billings retrieved", result)
}

// GetByReceipt handles GET /outlets/:id/billings/:receipt
func (h *BillingHandler) GetByReceipt(c *gin.Context) {
	outletID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	outletID, err = resolveOutletScope(c, outletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	billing, err := h.billingService.GetBillingByReceipt(c.Request.Context(), outletID, c.Param("receipt"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing retrieved", billing)
}
