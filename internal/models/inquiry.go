// internal/models/inquiry.go
package models

import "time"

// Inquiry is a buyer contact request; meetings carry a preferred time and a call link.
type Inquiry struct {
	BaseModel     `bson:",inline"`
	Kind          InquiryKind   `json:"kind" bson:"kind" gorm:"type:varchar(20);not null;index"`
	Name          string        `json:"name" bson:"name" gorm:"size:100;not null"`
	Email         string        `json:"email" bson:"email" gorm:"size:255;not null"`
	Company       string        `json:"company,omitempty" bson:"company,omitempty" gorm:"size:255"`
	Phone         string        `json:"phone,omitempty" bson:"phone,omitempty" gorm:"size:50"`
	Message       string        `json:"message" bson:"message" gorm:"type:text"`
	ProductIDs    StringList    `json:"product_ids,omitempty" bson:"product_ids,omitempty"`
	PreferredTime *time.Time    `json:"preferred_time,omitempty" bson:"preferred_time,omitempty"`
	MeetLink      string        `json:"meet_link,omitempty" bson:"meet_link,omitempty" gorm:"size:100"`
	Status        InquiryStatus `json:"status" bson:"status" gorm:"type:varchar(20);not null;index"`
}
