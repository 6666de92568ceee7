// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess      = "success"
	KeyError        = "error"
	KeyLookupFailed = "lookup_failed"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"

	// Catalog
	KeyCatalogNotFound = "catalog.not_found"
	KeyCatalogMoved    = "catalog.moved"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// Categories
	KeyCategoryCreated  = "category.created"
	KeyCategoryUpdated  = "category.updated"
	KeyCategoryDeleted  = "category.deleted"
	KeyCategoryNotFound = "category.not_found"

	// Redirects
	KeyRedirectCreated  = "redirect.created"
	KeyRedirectUpdated  = "redirect.updated"
	KeyRedirectDeleted  = "redirect.deleted"
	KeyRedirectNotFound = "redirect.not_found"

	// Migrations
	KeyMigrationCompleted = "migration.completed"

	// Inquiries
	KeyInquiryReceived = "inquiry.received"
	KeyMeetingBooked   = "inquiry.meeting_booked"
	KeyInquiryNotFound = "inquiry.not_found"

	// Sample orders
	KeySampleOrderCreated  = "sample_order.created"
	KeySampleOrderNotFound = "sample_order.not_found"

	// Back-office users
	KeyUserCreated  = "user.created"
	KeyUserUpdated  = "user.updated"
	KeyUserDeleted  = "user.deleted"
	KeyUserNotFound = "user.not_found"

	// Uploads
	KeyUploadFailed = "upload.failed"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// Admin
	KeyAdminAccessDenied = "admin.access_denied"

	// System
	KeySystemRateLimit = "system.rate_limit"
)
