package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/internal/application/service"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/request"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/response"
)

// UserHandler handles staff account endpoints
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     enum.Role(req.Role),
		OutletID: req.OutletID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created", user)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdateUserInput{
		Name:     req.Name,
		OutletID: req.OutletID,
		IsActive: req.IsActive,
		Password: req.Password,
	}
	if req.Role != nil {
		role := enum.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated", user)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved", user)
}

// ListByOutlet handles GET /outlets/:id/users
func (h *UserHandler) ListByOutlet(c *gin.Context) {
	outletID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	users, err := h.userService.ListUsersByOutlet(c.Request.Context(), outletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved", users)
}
