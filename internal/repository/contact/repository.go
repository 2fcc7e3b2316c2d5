package repository

import (
	"context"
	"errors"

	"github.com/aniladanir/sms-manager/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	FindOrCreate(ctx context.Context, contact *domain.Contact) (created bool, err error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Contact, error)
	FindByID(ctx context.Context, id uint) (*domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact, columns map[string]any) error
	Delete(ctx context.Context, contact *domain.Contact) error
}

type repo struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) Repository {
	return &repo{db: db}
}

// FindOrCreate inserts the contact unless one with the same phone number exists,
// in which case the existing record is loaded into contact
func (r *repo) FindOrCreate(ctx context.Context, contact *domain.Contact) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the unique phone number index makes the insert the arbiter between concurrent requests
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone_number"}},
			DoNothing: true,
		}).Create(contact)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			created = true
			return nil
		}

		return tx.Where("phone_number = ?", contact.PhoneNumber).First(contact).Error
	})

	return created, err
}

// FindByPhoneNumber returns nil if no contact has the given phone number
func (r *repo) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// FindByID returns nil if there is no contact with the given id
func (r *repo) FindByID(ctx context.Context, id uint) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.WithContext(ctx).First(&contact, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Update writes the given columns and reloads the contact
func (r *repo) Update(ctx context.Context, contact *domain.Contact, columns map[string]any) error {
	db := r.db.WithContext(ctx)
	if len(columns) > 0 {
		if err := db.Model(contact).Updates(columns).Error; err != nil {
			return err
		}
	}
	return db.First(contact, contact.ID).Error
}

// Delete removes the contact. Sent messages are removed and received ones
// detached by the foreign key rules.
func (r *repo) Delete(ctx context.Context, contact *domain.Contact) error {
	return r.db.WithContext(ctx).Delete(contact).Error
}
