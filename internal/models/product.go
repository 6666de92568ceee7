// internal/models/product.go
package models

type Product struct {
	BaseModel   `bson:",inline"`
	Name        string     `json:"name" bson:"name" gorm:"size:255;not null"`
	Slug        string     `json:"slug" bson:"slug,omitempty" gorm:"size:255"`
	SKU         string     `json:"sku" bson:"sku,omitempty" gorm:"size:100;index"`
	Description string     `json:"description" bson:"description,omitempty" gorm:"type:text"`
	CategoryID  string     `json:"category_id,omitempty" bson:"category_id,omitempty" gorm:"type:varchar(24);index"`
	MOQ         int        `json:"moq" bson:"moq" gorm:"default:1"`
	UnitPrice   float64    `json:"unit_price" bson:"unit_price" gorm:"type:decimal(10,2);default:0"`
	SamplePrice float64    `json:"sample_price" bson:"sample_price" gorm:"type:decimal(10,2);default:0"`
	Currency    string     `json:"currency" bson:"currency" gorm:"size:3;default:'usd'"`
	Images      StringList `json:"images" bson:"images,omitempty"`
	Tags        StringList `json:"tags" bson:"tags,omitempty"`
	IsActive    bool       `json:"is_active" bson:"is_active" gorm:"index"`
}

func (p *Product) EntityID() string       { return p.ID }
func (p *Product) EntityType() EntityType { return EntityTypeProduct }
func (p *Product) DisplayName() string    { return p.Name }
func (p *Product) CurrentSlug() string    { return p.Slug }
func (p *Product) Active() bool           { return p.IsActive }
