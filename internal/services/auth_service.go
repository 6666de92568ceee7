// internal/services/auth_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/config"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type AuthService struct {
	store store.AdminStore
	cfg   *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User        *models.AdminUser `json:"user"`
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresIn   int               `json:"expires_in"` // in seconds
}

func NewAuthService(st store.AdminStore, cfg *config.Config) *AuthService {
	return &AuthService{
		store: st,
		cfg:   cfg,
	}
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	// Find user by email
	user, err := s.store.FindAdminByEmail(ctx, req.Email)
	if err != nil {
		if err = storageError("find admin", err); isNotFound(err) {
			return nil, fmt.Errorf("invalid email or password: %w", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account disabled: %w", apperror.ErrUnauthorized)
	}

	// Check password
	if err := user.CheckPassword(req.Password); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", apperror.ErrUnauthorized)
	}

	accessToken, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if err := s.store.TouchAdminLogin(ctx, user.ID); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("Failed to record admin login")
	}

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600, // Convert hours to seconds
	}, nil
}
