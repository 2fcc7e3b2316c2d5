package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/aniladanir/sms-manager/internal/domain"
	"github.com/aniladanir/sms-manager/internal/persistant/sqlitetest"
	contactRepo "github.com/aniladanir/sms-manager/internal/repository/contact"
	messageRepo "github.com/aniladanir/sms-manager/internal/repository/message"
)

func newServices(t *testing.T) (ContactService, MessageService) {
	t.Helper()

	db := sqlitetest.Open(t)
	contacts := contactRepo.NewContactRepository(db)
	messages := messageRepo.NewMessageRepository(db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewContactService(contacts, messages, logger), NewMessageService(messages, contacts, logger)
}

func ptr[T any](v T) *T {
	return &v
}

func expectCode(t *testing.T, err error, code int) {
	t.Helper()

	var appErr *domain.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected domain error with code %d, got %v", code, err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %d, got %d (%v)", code, appErr.Code, appErr.Message)
	}
}

func TestAddContactConflict(t *testing.T) {
	contacts, _ := newServices(t)
	ctx := context.Background()

	created, err := contacts.Add(ctx, domain.ContactInput{Name: ptr("Alice"), PhoneNumber: ptr("123")})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	_, err = contacts.Add(ctx, domain.ContactInput{Name: ptr("Mallory"), PhoneNumber: ptr("123")})
	expectCode(t, err, http.StatusConflict)

	stored, err := contacts.Get(ctx, "123")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Name != "Alice" || stored.ID != created.ID {
		t.Fatalf("existing contact was modified: %+v", stored)
	}
}

func TestGetContactErrors(t *testing.T) {
	contacts, _ := newServices(t)

	_, err := contacts.Get(context.Background(), "")
	expectCode(t, err, http.StatusBadRequest)

	_, err = contacts.Get(context.Background(), "999")
	expectCode(t, err, http.StatusNotFound)
}

func TestUpdateContactIsIdempotent(t *testing.T) {
	contacts, _ := newServices(t)
	ctx := context.Background()

	if _, err := contacts.Add(ctx, domain.ContactInput{Name: ptr("Alice"), PhoneNumber: ptr("123")}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	patch := domain.ContactInput{Name: ptr("Alicia"), PhoneNumber: ptr("456")}
	first, err := contacts.Update(ctx, "123", patch)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	second, err := contacts.Update(ctx, "456", patch)
	if err != nil {
		t.Fatalf("repeated update failed: %v", err)
	}
	if first.ID != second.ID || second.Name != "Alicia" || second.PhoneNumber != "456" {
		t.Fatalf("unexpected state after repeated update: %+v", second)
	}

	_, err = contacts.Get(ctx, "123")
	expectCode(t, err, http.StatusNotFound)
}

func TestUpdateContactPhoneNumberTaken(t *testing.T) {
	contacts, _ := newServices(t)
	ctx := context.Background()

	for _, phone := range []string{"1", "2"} {
		if _, err := contacts.Add(ctx, domain.ContactInput{Name: ptr("c"), PhoneNumber: ptr(phone)}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	_, err := contacts.Update(ctx, "1", domain.ContactInput{PhoneNumber: ptr("2")})
	expectCode(t, err, http.StatusConflict)
}

func TestContactMessages(t *testing.T) {
	contacts, messages := newServices(t)
	ctx := context.Background()

	alice, _ := contacts.Add(ctx, domain.ContactInput{Name: ptr("Alice"), PhoneNumber: ptr("1")})
	bob, _ := contacts.Add(ctx, domain.ContactInput{Name: ptr("Bob"), PhoneNumber: ptr("2")})

	_, err := contacts.Messages(ctx, "1", domain.RoleAny)
	expectCode(t, err, http.StatusNotFound)

	if _, err := messages.Add(ctx, domain.MessageInput{SenderID: &alice.ID, ReceiverID: &bob.ID, Body: ptr("hi")}); err != nil {
		t.Fatalf("add message failed: %v", err)
	}

	all, err := contacts.Messages(ctx, "2", domain.RoleAny)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one message, got %v, %v", all, err)
	}

	_, err = contacts.Messages(ctx, "2", domain.RoleSender)
	expectCode(t, err, http.StatusNotFound)

	received, err := contacts.Messages(ctx, "2", domain.RoleReceiver)
	if err != nil || len(received) != 1 {
		t.Fatalf("expected one received message, got %v, %v", received, err)
	}

	_, err = contacts.Messages(ctx, "3", domain.RoleAny)
	expectCode(t, err, http.StatusNotFound)
}

func TestAddMessage(t *testing.T) {
	contacts, messages := newServices(t)
	ctx := context.Background()

	alice, _ := contacts.Add(ctx, domain.ContactInput{Name: ptr("Alice"), PhoneNumber: ptr("1")})
	bob, _ := contacts.Add(ctx, domain.ContactInput{Name: ptr("Bob"), PhoneNumber: ptr("2")})

	msg, err := messages.Add(ctx, domain.MessageInput{SenderID: &alice.ID, ReceiverID: &bob.ID, Body: ptr("hi")})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if msg.ID == 0 || msg.Status != domain.StatusSent {
		t.Fatalf("unexpected message: %+v", msg)
	}

	_, err = messages.Add(ctx, domain.MessageInput{SenderID: &alice.ID, ReceiverID: ptr(uint(99)), Body: ptr("hi")})
	expectCode(t, err, http.StatusUnprocessableEntity)

	_, err = messages.Add(ctx, domain.MessageInput{SenderID: &alice.ID, Body: ptr("hi")})
	expectCode(t, err, http.StatusBadRequest)
}

func TestUpdateAndDeleteMessage(t *testing.T) {
	contacts, messages := newServices(t)
	ctx := context.Background()

	alice, _ := contacts.Add(ctx, domain.ContactInput{Name: ptr("Alice"), PhoneNumber: ptr("1")})
	bob, _ := contacts.Add(ctx, domain.ContactInput{Name: ptr("Bob"), PhoneNumber: ptr("2")})
	msg, err := messages.Add(ctx, domain.MessageInput{SenderID: &alice.ID, ReceiverID: &bob.ID, Body: ptr("hi")})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	read := domain.StatusRead
	updated, err := messages.Update(ctx, msg.ID, domain.MessageInput{Status: &read})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.StatusRead || updated.Body != "hi" {
		t.Fatalf("unexpected message after update: %+v", updated)
	}

	_, err = messages.Update(ctx, msg.ID, domain.MessageInput{SenderID: ptr(uint(99))})
	expectCode(t, err, http.StatusUnprocessableEntity)

	if err := messages.Delete(ctx, msg.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, err = messages.Get(ctx, msg.ID)
	expectCode(t, err, http.StatusNotFound)

	err = messages.Delete(ctx, msg.ID)
	expectCode(t, err, http.StatusNotFound)
}
