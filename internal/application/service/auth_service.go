package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/apperror"
	"github.com/restopos/restopos-api/pkg/oauth"
	"github.com/restopos/restopos-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	googleSvc  *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	jwtManager *utils.JWTManager,
	googleSvc *oauth.GoogleOAuthService,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		googleSvc:  googleSvc,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperror.NewForbiddenError("Account is deactivated")
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role), user.OutletID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, apperror.NewForbiddenError("Account is deactivated")
	}

	return s.issueTokens(user)
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// ChangePassword verifies the current password and replaces it
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	if !utils.CheckPasswordHash(input.OldPassword, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed

	return s.userRepo.Update(ctx, user)
}

// GetProfile returns the authenticated user's profile
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// GetGoogleAuthURL returns the Google consent screen URL
func (s *AuthService) GetGoogleAuthURL(state string) (string, error) {
	if !s.googleSvc.IsConfigured() {
		return "", apperror.NewBadRequestError("Google sign-in is not configured")
	}
	return s.googleSvc.GetAuthURL(state), nil
}

// HandleGoogleCallback completes the Google sign-in flow. Accounts are
// provisioned by an admin first; the callback only links and signs in,
// it never creates users.
func (s *AuthService) HandleGoogleCallback(ctx context.Context, code string) (*LoginOutput, error) {
	if !s.googleSvc.IsConfigured() {
		return nil, apperror.NewBadRequestError("Google sign-in is not configured")
	}

	token, err := s.googleSvc.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	info, err := s.googleSvc.GetUserInfo(ctx, token)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	user, err := s.userRepo.GetByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.GetByEmail(ctx, info.Email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperror.NewForbiddenError("No account exists for this Google identity")
		}
		user.GoogleID = info.ID
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	if !user.IsActive {
		return nil, apperror.NewForbiddenError("Account is deactivated")
	}

	return s.issueTokens(user)
}
