// internal/models/sample_order.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type SampleOrderItem struct {
	ProductID   string  `json:"product_id" bson:"product_id"`
	ProductSlug string  `json:"product_slug" bson:"product_slug"`
	Name        string  `json:"name" bson:"name"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unit_price" bson:"unit_price"`
}

// SampleOrderItems is persisted as a JSON column by the SQL backends.
type SampleOrderItems []SampleOrderItem

func (items SampleOrderItems) Value() (driver.Value, error) {
	if items == nil {
		return nil, nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (items *SampleOrderItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*items = nil
		return nil
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("unsupported sample order items type %T", value)
	}
}

type SampleOrder struct {
	BaseModel       `bson:",inline"`
	OrderNumber     string            `json:"order_number" bson:"order_number" gorm:"size:32;uniqueIndex;not null"`
	ContactName     string            `json:"contact_name" bson:"contact_name" gorm:"size:100;not null"`
	Email           string            `json:"email" bson:"email" gorm:"size:255;not null;index"`
	Company         string            `json:"company,omitempty" bson:"company,omitempty" gorm:"size:255"`
	Phone           string            `json:"phone,omitempty" bson:"phone,omitempty" gorm:"size:50"`
	ShippingAddress string            `json:"shipping_address" bson:"shipping_address" gorm:"type:text;not null"`
	Items           SampleOrderItems  `json:"items" bson:"items" gorm:"type:text"`
	Total           float64           `json:"total" bson:"total" gorm:"type:decimal(10,2);not null"`
	Currency        string            `json:"currency" bson:"currency" gorm:"size:3;not null"`
	Status          SampleOrderStatus `json:"status" bson:"status" gorm:"type:varchar(20);not null;index"`
	PaymentIntentID string            `json:"payment_intent_id,omitempty" bson:"payment_intent_id,omitempty" gorm:"size:255"`
	ClientSecret    string            `json:"client_secret,omitempty" bson:"-" gorm:"-"`
}
