// internal/database/seed.go
package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/config"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

// SeedInitialData creates the first admin account on an empty install.
func SeedInitialData(ctx context.Context, st store.AdminStore, admin config.AdminConfig) error {
	if admin.Email == "" || admin.Password == "" {
		return nil
	}

	count, err := st.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	user := &models.AdminUser{
		Email:    admin.Email,
		Name:     admin.Name,
		Role:     models.AdminRoleAdmin,
		IsActive: true,
	}
	if err := user.SetPassword(admin.Password); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := st.CreateAdminUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logrus.WithField("email", user.Email).Info("Seeded initial admin user")
	return nil
}
