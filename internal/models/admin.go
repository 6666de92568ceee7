// internal/models/admin.go
package models

type AuditLog struct {
	BaseModel    `bson:",inline"`
	UserID       string `json:"user_id,omitempty" bson:"user_id,omitempty" gorm:"type:varchar(24);index"`
	Action       string `json:"action" bson:"action" gorm:"size:100;not null;index"`
	ResourceType string `json:"resource_type" bson:"resource_type" gorm:"size:50;not null;index"`
	ResourceID   string `json:"resource_id,omitempty" bson:"resource_id,omitempty" gorm:"type:varchar(24);index"`
	NewValues    JSONB  `json:"new_values" bson:"new_values,omitempty" gorm:"type:text"`
	Status       int    `json:"status" bson:"status"`
	IPAddress    string `json:"ip_address" bson:"ip_address" gorm:"size:45"`
	UserAgent    string `json:"user_agent" bson:"user_agent" gorm:"type:text"`
}
