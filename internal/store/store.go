// internal/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/javajoker/wholesale-catalog/internal/models"
)

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateSlug is returned when a write violates the per-type slug unique index.
	ErrDuplicateSlug = errors.New("duplicate slug")
	// ErrDuplicateKey is returned for any other unique index violation.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrSlugAlreadySet is returned by SetSlug when the entity gained a slug
	// after it was listed as missing one.
	ErrSlugAlreadySet = errors.New("slug already set")
)

// Page is an offset window over a sorted listing.
type Page struct {
	Offset int
	Limit  int
}

// CatalogStore backs the slug resolution layer.
type CatalogStore interface {
	// FindBySlug returns the active entity of type t owning slug.
	FindBySlug(ctx context.Context, t models.EntityType, slug string) (models.CatalogEntity, error)
	// FindByID returns the entity regardless of its active flag.
	FindByID(ctx context.Context, t models.EntityType, id string) (models.CatalogEntity, error)
	// SlugTaken reports whether another entity of type t already uses slug.
	SlugTaken(ctx context.Context, t models.EntityType, slug, excludeID string) (bool, error)
	// MissingSlugs lists entities whose slug is absent, null or empty.
	MissingSlugs(ctx context.Context, t models.EntityType) ([]models.CatalogEntity, error)
	// SetSlug persists a slug on an entity that still has none. It never
	// overwrites an existing slug.
	SetSlug(ctx context.Context, t models.EntityType, id, slug string) error
	SlugCounts(ctx context.Context, t models.EntityType) (*models.SlugCounts, error)
}

type RedirectFilter struct {
	Page
	EntityType models.EntityType
	Active     *bool
	Search     string
}

type RedirectStore interface {
	FindActiveRedirect(ctx context.Context, t models.EntityType, fromSlug string) (*models.Redirect, error)
	GetRedirect(ctx context.Context, id string) (*models.Redirect, error)
	ListRedirects(ctx context.Context, filter RedirectFilter) ([]models.Redirect, int64, error)
	CreateRedirect(ctx context.Context, redirect *models.Redirect) error
	UpdateRedirect(ctx context.Context, redirect *models.Redirect) error
	DeleteRedirect(ctx context.Context, id string) error
	// RetargetRedirects points every redirect of type t ending at oldTo to newTo,
	// except one starting at newTo.
	RetargetRedirects(ctx context.Context, t models.EntityType, oldTo, newTo string) (int64, error)
	// DeactivateRedirectsFrom disables active redirects whose source is a live slug again.
	DeactivateRedirectsFrom(ctx context.Context, t models.EntityType, fromSlug string) (int64, error)
}

type ProductFilter struct {
	Page
	CategoryID string
	Search     string
	ActiveOnly bool
}

type ProductStore interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type CategoryFilter struct {
	Page
	ParentID   string
	Search     string
	ActiveOnly bool
}

type CategoryStore interface {
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context, filter CategoryFilter) ([]models.Category, int64, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

type InquiryFilter struct {
	Page
	Kind   models.InquiryKind
	Status models.InquiryStatus
}

type InquiryStore interface {
	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	GetInquiry(ctx context.Context, id string) (*models.Inquiry, error)
	ListInquiries(ctx context.Context, filter InquiryFilter) ([]models.Inquiry, int64, error)
	UpdateInquiryStatus(ctx context.Context, id string, status models.InquiryStatus) error
}

type SampleOrderFilter struct {
	Page
	Status models.SampleOrderStatus
	Email  string
}

type SampleOrderStore interface {
	CreateSampleOrder(ctx context.Context, order *models.SampleOrder) error
	GetSampleOrder(ctx context.Context, id string) (*models.SampleOrder, error)
	ListSampleOrders(ctx context.Context, filter SampleOrderFilter) ([]models.SampleOrder, int64, error)
	UpdateSampleOrder(ctx context.Context, order *models.SampleOrder) error
}

type AdminStore interface {
	FindAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetAdminUser(ctx context.Context, id string) (*models.AdminUser, error)
	ListAdminUsers(ctx context.Context, page Page) ([]models.AdminUser, int64, error)
	CreateAdminUser(ctx context.Context, user *models.AdminUser) error
	UpdateAdminUser(ctx context.Context, user *models.AdminUser) error
	DeleteAdminUser(ctx context.Context, id string) error
	CountAdmins(ctx context.Context) (int64, error)
	// CountActiveAdmins counts enabled accounts holding role.
	CountActiveAdmins(ctx context.Context, role models.AdminRole) (int64, error)
	TouchAdminLogin(ctx context.Context, id string) error
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error
}

// Store is the single storage client shared by every service. It is built
// once at startup and passed by reference.
type Store interface {
	CatalogStore
	RedirectStore
	ProductStore
	CategoryStore
	InquiryStore
	SampleOrderStore
	AdminStore

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
