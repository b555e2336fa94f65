package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/application/service"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/request"
	"github.com/restopos/restopos-api/internal/presentation/http/dto/response"
	"github.com/restopos/restopos-api/pkg/oauth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
	googleSvc   *oauth.GoogleOAuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, googleSvc *oauth.GoogleOAuthService) *AuthHandler {
	return &AuthHandler{authService: authService, googleSvc: googleSvc}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"user":          out.User,
		"access_token":  out.AccessToken,
		"refresh_token": out.RefreshToken,
	})
}

// RefreshToken handles POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", gin.H{
		"access_token":  out.AccessToken,
		"refresh_token": out.RefreshToken,
	})
}

// Profile handles GET /auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved", user)
}

// ChangePassword handles POST /auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), &service.ChangePasswordInput{
		UserID:      *userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password changed", nil)
}

// GoogleLogin handles GET /auth/google, redirecting to the consent screen
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := uuid.New().String()
	url, err := h.authService.GetGoogleAuthURL(state)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback handles GET /auth/google/callback
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.googleSvc.FrontendErrorURL())
		return
	}

	out, err := h.authService.HandleGoogleCallback(c.Request.Context(), code)
	if err != nil {
		c.Redirect(http.StatusTemporaryRedirect, h.googleSvc.FrontendErrorURL())
		return
	}

	c.Redirect(http.StatusTemporaryRedirect,
		h.googleSvc.FrontendSuccessURL()+"?access_token="+out.AccessToken+"&refresh_token="+out.RefreshToken)
}
