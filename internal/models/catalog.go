// internal/models/catalog.go
package models

// CatalogEntity is the slug-addressable view shared by products and categories.
type CatalogEntity interface {
	EntityID() string
	EntityType() EntityType
	DisplayName() string
	CurrentSlug() string
	Active() bool
}

type Category struct {
	BaseModel   `bson:",inline"`
	Name        string `json:"name" bson:"name" gorm:"size:255;not null"`
	Slug        string `json:"slug" bson:"slug,omitempty" gorm:"size:255"`
	Description string `json:"description" bson:"description,omitempty" gorm:"type:text"`
	ParentID    string `json:"parent_id,omitempty" bson:"parent_id,omitempty" gorm:"type:varchar(24);index"`
	SortOrder   int    `json:"sort_order" bson:"sort_order" gorm:"default:0"`
	IsActive    bool   `json:"is_active" bson:"is_active" gorm:"index"`
}

func (c *Category) EntityID() string       { return c.ID }
func (c *Category) EntityType() EntityType { return EntityTypeCategory }
func (c *Category) DisplayName() string    { return c.Name }
func (c *Category) CurrentSlug() string    { return c.Slug }
func (c *Category) Active() bool           { return c.IsActive }

// Redirect maps a retired slug to its replacement within one entity type.
type Redirect struct {
	BaseModel  `bson:",inline"`
	FromSlug   string     `json:"from_slug" bson:"from_slug" gorm:"size:255;not null;index"`
	ToSlug     string     `json:"to_slug" bson:"to_slug" gorm:"size:255;not null"`
	EntityType EntityType `json:"entity_type" bson:"entity_type" gorm:"type:varchar(20);not null;index"`
	IsActive   bool       `json:"is_active" bson:"is_active" gorm:"index"`
	CreatedBy  string     `json:"created_by,omitempty" bson:"created_by,omitempty" gorm:"type:varchar(24)"`
}

// SlugCounts reports slug coverage for one entity type.
type SlugCounts struct {
	EntityType  EntityType `json:"entity_type"`
	Total       int64      `json:"total"`
	WithSlug    int64      `json:"with_slug"`
	WithoutSlug int64      `json:"without_slug"`
}
