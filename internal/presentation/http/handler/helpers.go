package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/pkg/apperror"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) enum.Role {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return enum.Role(role.(string))
}

// GetOutletID extracts the outlet binding from the Gin context. Superusers
// have none.
func GetOutletID(c *gin.Context) *uuid.UUID {
	outletVal, exists := c.Get("outlet_id")
	if !exists {
		return nil
	}
	outletID, ok := outletVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &outletID
}

// parseUUIDParam parses a UUID path parameter
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid " + name)
	}
	return id, nil
}

// parseDate parses a YYYY-MM-DD business date
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperror.NewBadRequestError("Invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}

// resolveOutletScope returns the outlet the caller may act on. Outlet-bound
// staff are pinned to their own outlet regardless of what the request says;
// superusers must name one.
func resolveOutletScope(c *gin.Context, requested uuid.UUID) (uuid.UUID, error) {
	if bound := GetOutletID(c); bound != nil {
		return *bound, nil
	}
	if requested == uuid.Nil {
		return uuid.Nil, apperror.NewBadRequestError("Outlet is required")
	}
	return requested, nil
}
