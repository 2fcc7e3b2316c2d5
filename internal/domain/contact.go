package domain

import (
	"time"
)

type Contact struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	PhoneNumber string    `gorm:"type:varchar(32);not null;uniqueIndex" json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	SentMessages     []Message `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	ReceivedMessages []Message `gorm:"foreignKey:ReceiverID;constraint:OnDelete:SET NULL" json:"-"`
}

// ContactCreateRules lists the fields a new contact must carry
var ContactCreateRules = map[string]string{
	"name":        "required",
	"phoneNumber": "required",
}

// ContactUpdateRules applies only to fields present in a partial update
var ContactUpdateRules = map[string]string{
	"name":        "required",
	"phoneNumber": "required",
}

// ContactInput holds the writable contact fields. A nil field was not provided.
type ContactInput struct {
	Name        *string
	PhoneNumber *string
}

// Columns returns the provided fields keyed by column name
func (in ContactInput) Columns() map[string]any {
	cols := make(map[string]any, 2)
	if in.Name != nil {
		cols["name"] = *in.Name
	}
	if in.PhoneNumber != nil {
		cols["phone_number"] = *in.PhoneNumber
	}
	return cols
}

// ContactRequest documents the contact request body
type ContactRequest struct {
	Name        string `json:"name" example:"Alice"`
	PhoneNumber string `json:"phoneNumber" example:"+905549998877"`
}
