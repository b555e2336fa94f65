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

// StockHandler handles ingredient and stock ledger endpoints
type StockHandler struct {
	inventoryService *service.InventoryService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(inventoryService *service.InventoryService) *StockHandler {
	return &StockHandler{inventoryService: inventoryService}
}

// CreateIngredient handles POST /ingredients
func (h *StockHandler) CreateIngredient(c *gin.Context) {
	var req request.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	outletID, err := resolveOutletScope(c, req.OutletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	ingredient, err := h.inventoryService.CreateIngredient(c.Request.Context(), &service.CreateIngredientInput{
		OutletID: outletID,
		Name:     req.Name,
		Unit:     req.Unit,
		StockQty: req.StockQty,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ingredient created", ingredient)
}

// UpdateIngredient handles PUT /ingredients/:id
func (h *StockHandler) UpdateIngredient(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ingredient, err := h.inventoryService.UpdateIngredient(c.Request.Context(), id, &service.UpdateIngredientInput{
		Name: req.Name,
		Unit: req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ingredient updated", ingredient)
}

// DeleteIngredient handles DELETE /ingredients/:id
func (h *StockHandler) DeleteIngredient(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.inventoryService.DeleteIngredient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetIngredient handles GET /ingredients/:id
func (h *StockHandler) GetIngredient(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	ingredient, err := h.inventoryService.GetIngredient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ingredient retrieved", ingredient)
}

// ListIngredients handles GET /outlets/:id/ingredients
func (h *StockHandler) ListIngredients(c *gin.Context) {
	outletID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.inventoryService.ListIngredients(c.Request.Context(), outletID, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Ingredients retrieved", result)
}

// CreateStockEntry handles POST /stock-logs
func (h *StockHandler) CreateStockEntry(c *gin.Context) {
	var req request.ManualStockEntryRequest
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

	log, err := h.inventoryService.CreateManualStockEntry(c.Request.Context(), &service.ManualStockEntryInput{
		OutletID:     outletID,
		IngredientID: req.IngredientID,
		Type:         enum.StockLogType(req.Type),
		Quantity:     req.Quantity,
		Date:         date,
		Remark:       req.Remark,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock entry created", log)
}

// ListStockLogs handles GET /stock-logs
func (h *StockHandler) ListStockLogs(c *gin.Context) {
	var req request.StockLogFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	params := &repository.StockLogFilterParams{
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
	if req.IngredientID != "" {
		id, err := uuid.Parse(req.IngredientID)
		if err != nil {
			response.BadRequest(c, "Invalid ingredient_id")
			return
		}
		params.IngredientID = &id
	}
	if req.Type != "" {
		logType := enum.StockLogType(req.Type)
		if !logType.IsValid() {
			response.BadRequest(c, "Invalid type")
			return
		}
		params.Type = &logType
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

	result, err := h.inventoryService.ListStockLogs(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock logs retrieved", result)
}
