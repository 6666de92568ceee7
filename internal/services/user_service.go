// internal/services/user_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

// UserService manages back-office accounts. At least one active admin must
// remain after every change.
type UserService struct {
	store store.AdminStore
}

type CreateUserRequest struct {
	Email    string           `json:"email" validate:"required,email,max=255"`
	Name     string           `json:"name" validate:"required,min=2,max=100"`
	Password string           `json:"password" validate:"required,min=8,max=72"`
	Role     models.AdminRole `json:"role" validate:"required,oneof=admin editor"`
}

type UpdateUserRequest struct {
	Name     *string           `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Password *string           `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Role     *models.AdminRole `json:"role,omitempty" validate:"omitempty,oneof=admin editor"`
	IsActive *bool             `json:"is_active,omitempty"`
}

func NewUserService(st store.AdminStore) *UserService {
	return &UserService{store: st}
}

func (s *UserService) ListUsers(ctx context.Context, params utils.PaginationParams) ([]models.AdminUser, int64, error) {
	users, total, err := s.store.ListAdminUsers(ctx, params.StorePage())
	if err != nil {
		return nil, 0, storageError("list users", err)
	}
	return users, total, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.AdminUser, error) {
	user, err := s.store.GetAdminUser(ctx, id)
	if err != nil {
		return nil, storageError("get user", err)
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*models.AdminUser, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	user := &models.AdminUser{
		Email:    req.Email,
		Name:     utils.StripHTML(req.Name),
		Role:     req.Role,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.store.CreateAdminUser(ctx, user); err != nil {
		return nil, storageError("create user", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("Back-office user created")
	return user, nil
}

// UpdateUser applies req to the account id on behalf of actorID. Users cannot
// disable themselves.
func (s *UserService) UpdateUser(ctx context.Context, id, actorID string, req *UpdateUserRequest) (*models.AdminUser, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsActive != nil && !*req.IsActive && id == actorID {
		return nil, apperror.Invalid("is_active", "self", "you cannot deactivate your own account")
	}

	losesAdmin := user.Role == models.AdminRoleAdmin && user.IsActive &&
		((req.Role != nil && *req.Role != models.AdminRoleAdmin) || (req.IsActive != nil && !*req.IsActive))
	if losesAdmin {
		if err := s.ensureAnotherAdmin(ctx); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		user.Name = utils.StripHTML(*req.Name)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	if err := s.store.UpdateAdminUser(ctx, user); err != nil {
		return nil, storageError("update user", err)
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return apperror.Invalid("id", "self", "you cannot delete your own account")
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == models.AdminRoleAdmin && user.IsActive {
		if err := s.ensureAnotherAdmin(ctx); err != nil {
			return err
		}
	}

	if err := s.store.DeleteAdminUser(ctx, id); err != nil {
		return storageError("delete user", err)
	}
	return nil
}

func (s *UserService) ensureAnotherAdmin(ctx context.Context) error {
	count, err := s.store.CountActiveAdmins(ctx, models.AdminRoleAdmin)
	if err != nil {
		return storageError("count admins", err)
	}
	if count <= 1 {
		return fmt.Errorf("at least one active admin is required: %w", apperror.ErrConflict)
	}
	return nil
}
