package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/internal/application/service"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/request"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/response"
)

// ReconciliationHandler handles daily cash reconciliation endpoints
type ReconciliationHandler struct {
	reconciliationService *service.ReconciliationService
}

// NewReconciliationHandler creates a new reconciliation handler
func NewReconciliationHandler(reconciliationService *service.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationService: reconciliationService}
}

// Submit handles POST /reconciliations
func (h *ReconciliationHandler) Submit(c *gin.Context) {
	var req request.SubmitReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	outletID, err := resolveOutletScope(c, req.OutletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	row, err := h.reconciliationService.SubmitReconciliation(c.Request.Context(), &service.SubmitReconciliationInput{
		OutletID:         outletID,
		Date:             date,
		CashDeposit:      req.CashDeposit,
		AdjustmentAmount: req.AdjustmentAmount,
		CashierName:      req.CashierName,
		Remarks:          req.Remarks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Reconciliation submitted", row)
}

// Unlock handles POST /reconciliations/unlock
func (h *ReconciliationHandler) Unlock(c *gin.Context) {
	var req request.UnlockReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	row, err := h.reconciliationService.UnlockReconciliation(c.Request.Context(), req.OutletID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reconciliation unlocked", row)
}

// Get handles GET /outlets/:id/reconciliations/:date
func (h *ReconciliationHandler) Get(c *gin.Context) {
	outletID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	date, err := parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	row, err := h.reconciliationService.GetReconciliation(c.Request.Context(), outletID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reconciliation retrieved", row)
}

// List handles GET /outlets/:id/reconciliations
func (h *ReconciliationHandler) List(c *gin.Context) {
	outletID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	start, err := parseDate(c.DefaultQuery("start_date", ""))
	if err != nil {
		response.Error(c, err)
		return
	}
	end, err := parseDate(c.DefaultQuery("end_date", ""))
	if err != nil {
		response.Error(c, err)
		return
	}

	rows, err := h.reconciliationService.ListReconciliations(c.Request.Context(), outletID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reconciliations retrieved", rows)
}
