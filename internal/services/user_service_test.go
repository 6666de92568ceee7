package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

func createUser(t *testing.T, svc *UserService, email string, role models.AdminRole) *models.AdminUser {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		Email:    email,
		Name:     "Catalog Team",
		Password: "correct-horse",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestCreateUser(t *testing.T) {
	svc := NewUserService(newTestStore(t))
	ctx := context.Background()

	user := createUser(t, svc, "Editor@Example.com", models.AdminRoleEditor)
	assert.Equal(t, "editor@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NoError(t, user.CheckPassword("correct-horse"))

	_, err := svc.CreateUser(ctx, &CreateUserRequest{
		Email:    "editor@example.com",
		Name:     "Duplicate",
		Password: "correct-horse",
		Role:     models.AdminRoleEditor,
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	_, err = svc.CreateUser(ctx, &CreateUserRequest{
		Email:    "owner@example.com",
		Name:     "Owner",
		Password: "correct-horse",
		Role:     "owner",
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.CreateUser(ctx, &CreateUserRequest{
		Email:    "short@example.com",
		Name:     "Short",
		Password: "abc",
		Role:     models.AdminRoleEditor,
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	users, total, err := svc.ListUsers(ctx, utils.PaginationParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, users, 1)
}

func TestLastAdminIsProtected(t *testing.T) {
	svc := NewUserService(newTestStore(t))
	ctx := context.Background()

	owner := createUser(t, svc, "owner@example.com", models.AdminRoleAdmin)
	editor := createUser(t, svc, "editor@example.com", models.AdminRoleEditor)

	demote := models.AdminRoleEditor
	_, err := svc.UpdateUser(ctx, owner.ID, editor.ID, &UpdateUserRequest{Role: &demote})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	err = svc.DeleteUser(ctx, owner.ID, editor.ID)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	promote := models.AdminRoleAdmin
	promoted, err := svc.UpdateUser(ctx, editor.ID, owner.ID, &UpdateUserRequest{Role: &promote})
	require.NoError(t, err)
	assert.Equal(t, models.AdminRoleAdmin, promoted.Role)

	_, err = svc.UpdateUser(ctx, owner.ID, editor.ID, &UpdateUserRequest{Role: &demote})
	assert.NoError(t, err)
}

func TestUsersCannotRemoveThemselves(t *testing.T) {
	svc := NewUserService(newTestStore(t))
	ctx := context.Background()

	owner := createUser(t, svc, "owner@example.com", models.AdminRoleAdmin)
	createUser(t, svc, "second@example.com", models.AdminRoleAdmin)

	off := false
	_, err := svc.UpdateUser(ctx, owner.ID, owner.ID, &UpdateUserRequest{IsActive: &off})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	err = svc.DeleteUser(ctx, owner.ID, owner.ID)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestDeleteUserFreesEmail(t *testing.T) {
	svc := NewUserService(newTestStore(t))
	ctx := context.Background()

	owner := createUser(t, svc, "owner@example.com", models.AdminRoleAdmin)
	editor := createUser(t, svc, "editor@example.com", models.AdminRoleEditor)

	password := "another-horse"
	updated, err := svc.UpdateUser(ctx, editor.ID, owner.ID, &UpdateUserRequest{Password: &password})
	require.NoError(t, err)
	assert.NoError(t, updated.CheckPassword(password))

	require.NoError(t, svc.DeleteUser(ctx, editor.ID, owner.ID))
	_, err = svc.GetUser(ctx, editor.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	createUser(t, svc, "editor@example.com", models.AdminRoleEditor)
}
