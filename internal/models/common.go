// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gorm.io/gorm"
)

// Base model with common fields. IDs are 24-char hex object ids on every backend.
type BaseModel struct {
	ID        string         `json:"id" bson:"_id" gorm:"type:varchar(24);primaryKey"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" bson:"-" gorm:"index"`
}

// NewID returns a fresh object id in hex form.
func NewID() string {
	return bson.NewObjectID().Hex()
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}

// Touch prepares timestamps for backends without automatic tracking.
func (m *BaseModel) Touch(now time.Time) {
	if m.ID == "" {
		m.ID = NewID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type EntityType string

const (
	EntityTypeProduct  EntityType = "product"
	EntityTypeCategory EntityType = "category"
	EntityTypeOther    EntityType = "other"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeProduct, EntityTypeCategory, EntityTypeOther:
		return true
	}
	return false
}

// Sluggable reports whether the type has primary catalog storage.
func (t EntityType) Sluggable() bool {
	return t == EntityTypeProduct || t == EntityTypeCategory
}

// SluggableTypes lists the entity types with their own collections.
func SluggableTypes() []EntityType {
	return []EntityType{EntityTypeProduct, EntityTypeCategory}
}

type AdminRole string

const (
	AdminRoleAdmin  AdminRole = "admin"
	AdminRoleEditor AdminRole = "editor"
)

type InquiryKind string

const (
	InquiryKindInquiry InquiryKind = "inquiry"
	InquiryKindMeeting InquiryKind = "meeting"
)

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

type SampleOrderStatus string

const (
	SampleOrderStatusPending         SampleOrderStatus = "pending"
	SampleOrderStatusAwaitingPayment SampleOrderStatus = "awaiting_payment"
	SampleOrderStatusPaid            SampleOrderStatus = "paid"
	SampleOrderStatusCancelled       SampleOrderStatus = "cancelled"
)

func (s SampleOrderStatus) Valid() bool {
	switch s {
	case SampleOrderStatusPending, SampleOrderStatusAwaitingPayment, SampleOrderStatusPaid, SampleOrderStatusCancelled:
		return true
	}
	return false
}
