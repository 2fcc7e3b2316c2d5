package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aniladanir/sms-manager/internal/domain"
	contactRepo "github.com/aniladanir/sms-manager/internal/repository/contact"
	messageRepo "github.com/aniladanir/sms-manager/internal/repository/message"
)

const errContactNotFound = "Contact not found"

type ContactService interface {
	Add(ctx context.Context, in domain.ContactInput) (*domain.Contact, error)
	Get(ctx context.Context, phoneNumber string) (*domain.Contact, error)
	Update(ctx context.Context, phoneNumber string, in domain.ContactInput) (*domain.Contact, error)
	Delete(ctx context.Context, phoneNumber string) error
	Messages(ctx context.Context, phoneNumber string, role domain.MessageRole) ([]domain.Message, error)
}

type contactService struct {
	contactRepo contactRepo.Repository
	messageRepo messageRepo.Repository
	logger      *slog.Logger
}

func NewContactService(contactRepo contactRepo.Repository, messageRepo messageRepo.Repository, logger *slog.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Add creates a contact unless its phone number is already taken
func (s *contactService) Add(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	contact := &domain.Contact{}
	if in.Name != nil {
		contact.Name = *in.Name
	}
	if in.PhoneNumber != nil {
		contact.PhoneNumber = *in.PhoneNumber
	}

	created, err := s.contactRepo.FindOrCreate(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to find or create contact: %w", err)
	}
	if !created {
		return nil, domain.Conflict("This contact already exists")
	}

	s.logger.Info("contact created", slog.Uint64("contactId", uint64(contact.ID)))
	return contact, nil
}

func (s *contactService) Get(ctx context.Context, phoneNumber string) (*domain.Contact, error) {
	return s.find(ctx, phoneNumber)
}

// Update applies the provided fields. Moving to a phone number owned by
// another contact is a conflict.
func (s *contactService) Update(ctx context.Context, phoneNumber string, in domain.ContactInput) (*domain.Contact, error) {
	contact, err := s.find(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	if in.PhoneNumber != nil && *in.PhoneNumber != contact.PhoneNumber {
		other, err := s.contactRepo.FindByPhoneNumber(ctx, *in.PhoneNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to get contact: %w", err)
		}
		if other != nil {
			return nil, domain.Conflict("This contact already exists")
		}
	}

	if err := s.contactRepo.Update(ctx, contact, in.Columns()); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, phoneNumber string) error {
	contact, err := s.find(ctx, phoneNumber)
	if err != nil {
		return err
	}

	if err := s.contactRepo.Delete(ctx, contact); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	s.logger.Info("contact deleted", slog.Uint64("contactId", uint64(contact.ID)))
	return nil
}

// Messages returns the messages the contact takes part in with the given role.
// An empty result is reported as not found.
func (s *contactService) Messages(ctx context.Context, phoneNumber string, role domain.MessageRole) ([]domain.Message, error) {
	contact, err := s.find(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	msgs, err := s.messageRepo.FindByContact(ctx, contact.ID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages of contact: %w", err)
	}
	if len(msgs) == 0 {
		return nil, domain.NotFound(noMessagesText(role))
	}

	return msgs, nil
}

func (s *contactService) find(ctx context.Context, phoneNumber string) (*domain.Contact, error) {
	if phoneNumber == "" {
		return nil, domain.BadRequest("Parameter phoneNumber is required")
	}

	contact, err := s.contactRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if contact == nil {
		return nil, domain.NotFound(errContactNotFound)
	}

	return contact, nil
}

func noMessagesText(role domain.MessageRole) string {
	switch role {
	case domain.RoleSender:
		return "No messages sent by this contact"
	case domain.RoleReceiver:
		return "No messages received by this contact"
	default:
		return "No messages found for this contact"
	}
}
