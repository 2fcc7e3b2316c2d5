package domain

import (
	"time"
)

type MessageStatus string

const (
	StatusSent MessageStatus = "sent"
	StatusRead MessageStatus = "read"
)

type Message struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	SenderID   uint          `gorm:"not null;index" json:"senderId"`
	ReceiverID *uint         `gorm:"index" json:"receiverId"`
	Body       string        `gorm:"type:text;not null" json:"body"`
	Status     MessageStatus `gorm:"type:varchar(10);not null;default:'sent';check:status IN ('sent','read')" json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

var MessageCreateRules = map[string]string{
	"senderId":   "required,number",
	"receiverId": "required,number",
	"body":       "required",
}

var MessageUpdateRules = map[string]string{
	"senderId":   "required,number",
	"receiverId": "required,number",
	"body":       "required",
	"status":     "required,oneof=sent read",
}

// MessageInput holds the writable message fields. A nil field was not provided.
type MessageInput struct {
	SenderID   *uint
	ReceiverID *uint
	Body       *string
	Status     *MessageStatus
}

// Columns returns the provided fields keyed by column name
func (in MessageInput) Columns() map[string]any {
	cols := make(map[string]any, 4)
	if in.SenderID != nil {
		cols["sender_id"] = *in.SenderID
	}
	if in.ReceiverID != nil {
		cols["receiver_id"] = *in.ReceiverID
	}
	if in.Body != nil {
		cols["body"] = *in.Body
	}
	if in.Status != nil {
		cols["status"] = string(*in.Status)
	}
	return cols
}

// MessageRole selects which side of a message a contact is matched on
type MessageRole int

const (
	RoleAny MessageRole = iota
	RoleSender
	RoleReceiver
)

// MessageRequest documents the message request body
type MessageRequest struct {
	SenderID   uint          `json:"senderId" example:"1"`
	ReceiverID uint          `json:"receiverId" example:"2"`
	Body       string        `json:"body" example:"hi"`
	Status     MessageStatus `json:"status,omitempty" example:"read"`
}
