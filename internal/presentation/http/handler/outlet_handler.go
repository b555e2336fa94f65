package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/internal/application/service"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/request"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/response"
)

// OutletHandler handles outlet and dining table endpoints
type OutletHandler struct {
	outletService *service.OutletService
}

// NewOutletHandler creates a new outlet handler
func NewOutletHandler(outletService *service.OutletService) *OutletHandler {
	return &OutletHandler{outletService: outletService}
}

// Create handles POST /outlets
func (h *OutletHandler) Create(c *gin.Context) {
	var req request.CreateOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	outlet, err := h.outletService.CreateOutlet(c.Request.Context(), &service.CreateOutletInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Outlet created", outlet)
}

// Update handles PUT /outlets/:id
func (h *OutletHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	outlet, err := h.outletService.UpdateOutlet(c.Request.Context(), id, &service.UpdateOutletInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Outlet updated", outlet)
}

// Get handles GET /outlets/:id
func (h *OutletHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	outlet, err := h.outletService.GetOutlet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Outlet retrieved", outlet)
}

// List handles GET /outlets
func (h *OutletHandler) List(c *gin.Context) {
	outlets, err := h.outletService.ListOutlets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Outlets retrieved", outlets)
}

// CreateTable handles POST /dining-tables
func (h *OutletHandler) CreateTable(c *gin.Context) {
	var req request.CreateDiningTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	outletID, err := resolveOutletScope(c, req.OutletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	table, err := h.outletService.CreateDiningTable(c.Request.Context(), &service.CreateDiningTableInput{
		OutletID: outletID,
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Dining table created", table)
}

// UpdateTable handles PUT /dining-tables/:id
func (h *OutletHandler) UpdateTable(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateDiningTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	table, err := h.outletService.UpdateDiningTable(c.Request.Context(), id, &service.UpdateDiningTableInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dining table updated", table)
}

// DeleteTable handles DELETE /dining-tables/:id
func (h *OutletHandler) DeleteTable(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.outletService.DeleteDiningTable(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListTables handles GET /outlets/:id/dining-tables
func (h *OutletHandler) ListTables(c *gin.Context) {
	outletID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	tables, err := h.outletService.ListDiningTables(c.Request.Context(), outletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dining tables retrieved", tables)
}
