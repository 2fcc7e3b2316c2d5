package repository

import (
	"context"
	"errors"

	"github.com/aniladanir/sms-manager/internal/domain"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, msg *domain.Message) error
	FindByID(ctx context.Context, id uint) (*domain.Message, error)
	FindByContact(ctx context.Context, contactID uint, role domain.MessageRole) ([]domain.Message, error)
	Update(ctx context.Context, msg *domain.Message, columns map[string]any) error
	Delete(ctx context.Context, msg *domain.Message) error
}

type repo struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) Repository {
	return &repo{db: db}
}

// Create inserts sender, receiver, body and status only
func (r *repo) Create(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).
		Select("SenderID", "ReceiverID", "Body", "Status", "CreatedAt", "UpdatedAt").
		Create(msg).Error
}

// FindByID returns nil if there is no message with the given id
func (r *repo) FindByID(ctx context.Context, id uint) (*domain.Message, error) {
	var msg domain.Message
	err := r.db.WithContext(ctx).First(&msg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// FindByContact returns messages the contact takes part in with the given role, oldest first
func (r *repo) FindByContact(ctx context.Context, contactID uint, role domain.MessageRole) ([]domain.Message, error) {
	query := r.db.WithContext(ctx).Order("id")
	switch role {
	case domain.RoleSender:
		query = query.Where("sender_id = ?", contactID)
	case domain.RoleReceiver:
		query = query.Where("receiver_id = ?", contactID)
	default:
		query = query.Where("sender_id = ? OR receiver_id = ?", contactID, contactID)
	}

	var messages []domain.Message
	err := query.Find(&messages).Error
	return messages, err
}

// Update writes the given columns and reloads the message
func (r *repo) Update(ctx context.Context, msg *domain.Message, columns map[string]any) error {
	db := r.db.WithContext(ctx)
	if len(columns) > 0 {
		if err := db.Model(msg).Updates(columns).Error; err != nil {
			return err
		}
	}
	return db.First(msg, msg.ID).Error
}

func (r *repo) Delete(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).Delete(msg).Error
}
