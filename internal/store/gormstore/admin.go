// internal/store/gormstore/admin.go
package gormstore

import (
	"context"
	"strings"
	"time"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

func (s *Store) FindAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetAdminUser(ctx context.Context, id string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) ListAdminUsers(ctx context.Context, page store.Page) ([]models.AdminUser, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.AdminUser{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.AdminUser
	if err := paginate(query, page).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *Store) CreateAdminUser(ctx context.Context, user *models.AdminUser) error {
	user.Email = strings.ToLower(user.Email)
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *Store) UpdateAdminUser(ctx context.Context, user *models.AdminUser) error {
	user.Email = strings.ToLower(user.Email)
	return translate(s.db.WithContext(ctx).Save(user).Error)
}

// DeleteAdminUser removes the row for good so the email can be reused.
func (s *Store) DeleteAdminUser(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Unscoped().Delete(&models.AdminUser{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.AdminUser{}).Count(&count).Error
	return count, err
}

func (s *Store) CountActiveAdmins(ctx context.Context, role models.AdminRole) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.AdminUser{}).
		Where("role = ? AND is_active = ?", role, true).
		Count(&count).Error
	return count, err
}

func (s *Store) TouchAdminLogin(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Model(&models.AdminUser{}).Where("id = ?", id).Update("last_login_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}
