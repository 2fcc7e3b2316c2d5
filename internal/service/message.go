package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aniladanir/sms-manager/internal/domain"
	contactRepo "github.com/aniladanir/sms-manager/internal/repository/contact"
	messageRepo "github.com/aniladanir/sms-manager/internal/repository/message"
)

const errMessageNotFound = "Message not found"

type MessageService interface {
	Add(ctx context.Context, in domain.MessageInput) (*domain.Message, error)
	Get(ctx context.Context, id uint) (*domain.Message, error)
	Update(ctx context.Context, id uint, in domain.MessageInput) (*domain.Message, error)
	Delete(ctx context.Context, id uint) error
}

type messageService struct {
	messageRepo messageRepo.Repository
	contactRepo contactRepo.Repository
	logger      *slog.Logger
}

func NewMessageService(messageRepo messageRepo.Repository, contactRepo contactRepo.Repository, logger *slog.Logger) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Add stores a new message from sender, receiver and body. Status always starts as sent.
func (s *messageService) Add(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	if in.SenderID == nil || in.ReceiverID == nil || in.Body == nil {
		return nil, domain.BadRequest("Parameters senderId, receiverId and body are required")
	}
	if err := s.checkParticipants(ctx, in); err != nil {
		return nil, err
	}

	receiverID := *in.ReceiverID
	msg := &domain.Message{
		SenderID:   *in.SenderID,
		ReceiverID: &receiverID,
		Body:       *in.Body,
		Status:     domain.StatusSent,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	if msg.ID == 0 {
		return nil, domain.Internal("Something went wrong!")
	}

	s.logger.Info("message created", slog.Uint64("messageId", uint64(msg.ID)))
	return msg, nil
}

func (s *messageService) Get(ctx context.Context, id uint) (*domain.Message, error) {
	return s.find(ctx, id)
}

func (s *messageService) Update(ctx context.Context, id uint, in domain.MessageInput) (*domain.Message, error) {
	msg, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkParticipants(ctx, in); err != nil {
		return nil, err
	}

	if err := s.messageRepo.Update(ctx, msg, in.Columns()); err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}

	return msg, nil
}

func (s *messageService) Delete(ctx context.Context, id uint) error {
	msg, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.messageRepo.Delete(ctx, msg); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	s.logger.Info("message deleted", slog.Uint64("messageId", uint64(msg.ID)))
	return nil
}

func (s *messageService) find(ctx context.Context, id uint) (*domain.Message, error) {
	if id == 0 {
		return nil, domain.BadRequest("Parameter messageId is required")
	}

	msg, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	if msg == nil {
		return nil, domain.NotFound(errMessageNotFound)
	}

	return msg, nil
}

// checkParticipants verifies that the sender and receiver given in the input exist
func (s *messageService) checkParticipants(ctx context.Context, in domain.MessageInput) error {
	participants := []struct {
		id   *uint
		role string
	}{
		{in.SenderID, "Sender"},
		{in.ReceiverID, "Receiver"},
	}

	for _, p := range participants {
		if p.id == nil {
			continue
		}
		contact, err := s.contactRepo.FindByID(ctx, *p.id)
		if err != nil {
			return fmt.Errorf("failed to get contact: %w", err)
		}
		if contact == nil {
			return domain.Unprocessable(fmt.Sprintf("%s contact %d does not exist", p.role, *p.id))
		}
	}

	return nil
}
