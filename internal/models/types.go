// internal/models/types.go
package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is stored as a native text[] on PostgreSQL and as an array literal elsewhere.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return pq.StringArray(l).Value()
}

func (l *StringList) Scan(src interface{}) error {
	return (*pq.StringArray)(l).Scan(src)
}

func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func (StringList) GormDataType() string {
	return "text"
}
