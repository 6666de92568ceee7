// internal/store/mongostore/admin.go
package mongostore

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

func (s *Store) FindAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return findOne[models.AdminUser](ctx, s.collection(adminUsersCollection), bson.M{"email": strings.ToLower(email)})
}

func (s *Store) GetAdminUser(ctx context.Context, id string) (*models.AdminUser, error) {
	return findOne[models.AdminUser](ctx, s.collection(adminUsersCollection), idFilter(id))
}

func (s *Store) ListAdminUsers(ctx context.Context, page store.Page) ([]models.AdminUser, int64, error) {
	return findPage[models.AdminUser](ctx, s.collection(adminUsersCollection), bson.M{}, page, oldestFirst)
}

func (s *Store) CreateAdminUser(ctx context.Context, user *models.AdminUser) error {
	user.Email = strings.ToLower(user.Email)
	user.Touch(s.now())
	_, err := s.collection(adminUsersCollection).InsertOne(ctx, user)
	return translate(err)
}

func (s *Store) UpdateAdminUser(ctx context.Context, user *models.AdminUser) error {
	user.Email = strings.ToLower(user.Email)
	user.UpdatedAt = s.now()
	return translate(replaceByID(ctx, s.collection(adminUsersCollection), user.ID, user))
}

func (s *Store) DeleteAdminUser(ctx context.Context, id string) error {
	return deleteByID(ctx, s.collection(adminUsersCollection), id)
}

func (s *Store) CountAdmins(ctx context.Context) (int64, error) {
	return s.collection(adminUsersCollection).CountDocuments(ctx, bson.M{})
}

func (s *Store) CountActiveAdmins(ctx context.Context, role models.AdminRole) (int64, error) {
	return s.collection(adminUsersCollection).CountDocuments(ctx, bson.M{"role": role, "is_active": true})
}

func (s *Store) TouchAdminLogin(ctx context.Context, id string) error {
	now := s.now()
	return updateByID(ctx, s.collection(adminUsersCollection), id, bson.M{"last_login_at": now, "updated_at": now})
}

func (s *Store) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	entry.Touch(s.now())
	_, err := s.collection(auditLogsCollection).InsertOne(ctx, entry)
	return err
}
