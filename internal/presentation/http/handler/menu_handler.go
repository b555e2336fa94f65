package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/internal/application/service"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/request"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/response"
	"github.com/restopos/restopos-api/pkg/pagination"
)

// MenuHandler handles menu catalog endpoints
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// CreateFood handles POST /foods
func (h *MenuHandler) CreateFood(c *gin.Context) {
	var req request.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	outletID, err := resolveOutletScope(c, req.OutletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	food, err := h.menuService.CreateFood(c.Request.Context(), &service.CreateFoodInput{
		OutletID: outletID,
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Food created", food)
}

// UpdateFood handles PUT /foods/:id
func (h *MenuHandler) UpdateFood(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	food, err := h.menuService.UpdateFood(c.Request.Context(), id, &service.UpdateFoodInput{
		Name:     req.Name,
		Category: req.Category,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Food updated", food)
}

// DeleteFood handles DELETE /foods/:id
func (h *MenuHandler) DeleteFood(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.menuService.DeleteFood(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetFood handles GET /foods/:id
func (h *MenuHandler) GetFood(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	food, err := h.menuService.GetFood(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Food retrieved", food)
}

// ListFoods handles GET /outlets/:id/foods
func (h *MenuHandler) ListFoods(c *gin.Context) {
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

	result, err := h.menuService.ListFoods(c.Request.Context(), outletID, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Foods retrieved", result)
}

// SetFoodPrice handles PUT /foods/:id/prices
func (h *MenuHandler) SetFoodPrice(c *gin.Context) {
	foodID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.SetFoodPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	price, err := h.menuService.SetFoodPrice(c.Request.Context(), &service.SetFoodPriceInput{
		FoodID:      foodID,
		OrderTypeID: req.OrderTypeID,
		Price:       req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price set", price)
}

// CreateFoodOption handles POST /foods/:id/options
func (h *MenuHandler) CreateFoodOption(c *gin.Context) {
	foodID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.CreateFoodOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	option, err := h.menuService.CreateFoodOption(c.Request.Context(), &service.CreateFoodOptionInput{
		FoodID:     foodID,
		Name:       req.Name,
		ExtraPrice: req.ExtraPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Food option created", option)
}

// UpdateFoodOption handles PUT /food-options/:id
func (h *MenuHandler) UpdateFoodOption(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateFoodOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	option, err := h.menuService.UpdateFoodOption(c.Request.Context(), id, &service.UpdateFoodOptionInput{
		Name:       req.Name,
		ExtraPrice: req.ExtraPrice,
		IsActive:   req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Food option updated", option)
}

// DeleteFoodOption handles DELETE /food-options/:id
func (h *MenuHandler) DeleteFoodOption(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.menuService.DeleteFoodOption(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// SetFoodIngredient handles PUT /foods/:id/ingredients
func (h *MenuHandler) SetFoodIngredient(c *gin.Context) {
	foodID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.SetFoodIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	edge, err := h.menuService.SetFoodIngredient(c.Request.Context(), &service.SetFoodIngredientInput{
		FoodID:          foodID,
		IngredientID:    req.IngredientID,
		QuantityPerUnit: req.QuantityPerUnit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recipe updated", edge)
}

// ListOrderTypes handles GET /order-types
func (h *MenuHandler) ListOrderTypes(c *gin.Context) {
	orderTypes, err := h.menuService.ListOrderTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order types retrieved", orderTypes)
}

// SetDiscount handles PUT /discounts
func (h *MenuHandler) SetDiscount(c *gin.Context) {
	var req request.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	outletID, err := resolveOutletScope(c, req.OutletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	discount, err := h.menuService.SetDiscount(c.Request.Context(), &service.SetDiscountInput{
		OutletID:    outletID,
		OrderTypeID: req.OrderTypeID,
		Percentage:  req.Percentage,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount set", discount)
}

// ListDiscounts handles GET /outlets/:id/discounts
func (h *MenuHandler) ListDiscounts(c *gin.Context) {
	outletID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	discounts, err := h.menuService.ListDiscounts(c.Request.Context(), outletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discounts retrieved", discounts)
}

// DeleteDiscount handles DELETE /discounts/:id
func (h *MenuHandler) DeleteDiscount(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.menuService.DeleteDiscount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteFoodPrice handles DELETE /food-prices/:id
func (h *MenuHandler) DeleteFoodPrice(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.menuService.DeleteFoodPrice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteFoodIngredient handles DELETE /food-ingredients/:id
func (h *MenuHandler) DeleteFoodIngredient(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.menuService.DeleteFoodIngredient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
