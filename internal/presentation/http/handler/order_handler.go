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

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func itemInputs(items []request.OrderItemRequest) []service.OrderItemInput {
	inputs := make([]service.OrderItemInput, 0, len(items))
	for _, item := range items {
		in := service.OrderItemInput{
			FoodID:   item.FoodID,
			Quantity: item.Quantity,
			Remark:   item.Remark,
		}
		for _, opt := range item.Options {
			in.Options = append(in.Options, service.OrderItemOptionInput{
				FoodOptionID: opt.FoodOptionID,
				Quantity:     opt.Quantity,
			})
		}
		inputs = append(inputs, in)
	}
	return inputs
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	outletID, err := resolveOutletScope(c, req.OutletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		OutletID:      outletID,
		OrderTypeID:   req.OrderTypeID,
		WaiterID:      *userID,
		DiningTableID: req.DiningTableID,
		Items:         itemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created", order)
}

// AddItems handles POST /orders/:id/items
func (h *OrderHandler) AddItems(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.AddOrderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.AddItems(c.Request.Context(), orderID, itemInputs(req.Items))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items added", order)
}

// BatchUpdateItems handles PATCH /orders/:id/items
func (h *OrderHandler) BatchUpdateItems(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.BatchUpdateOrderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updates := make([]service.UpdateOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		upd := service.UpdateOrderItemInput{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
			Cancel:   item.Cancel,
		}
		for _, opt := range item.Options {
			upd.Options = append(upd.Options, service.UpdateOrderItemOptionInput{
				OptionID: opt.OptionID,
				Quantity: opt.Quantity,
				Cancel:   opt.Cancel,
			})
		}
		updates = append(updates, upd)
	}

	order, err := h.orderService.BatchUpdateItems(c.Request.Context(), orderID, updates)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items updated", order)
}

// UpdateStatus handles PATCH /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), &service.UpdateOrderStatusInput{
		OrderID:   orderID,
		Status:    enum.OrderStatus(req.Status),
		ActorID:   *userID,
		ActorRole: GetUserRole(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", order)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved", order)
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
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
	if req.WaiterID != "" {
		id, err := uuid.Parse(req.WaiterID)
		if err != nil {
			response.BadRequest(c, "Invalid waiter_id")
			return
		}
		params.WaiterID = &id
	}
	if req.OrderTypeID != "" {
		id, err := uuid.Parse(req.OrderTypeID)
		if err != nil {
			response.BadRequest(c, "Invalid order_type_id")
			return
		}
		params.OrderTypeID = &id
	}
	if req.Status != "" {
		status := enum.OrderStatus(req.Status)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid status")
			return
		}
		params.Status = &status
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

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}
