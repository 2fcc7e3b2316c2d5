package repository

import (
	"context"
	"testing"

	"github.com/aniladanir/sms-manager/internal/domain"
	"github.com/aniladanir/sms-manager/internal/persistant/sqlitetest"
	"gorm.io/gorm"
)

func seedContacts(t *testing.T, db *gorm.DB, phones ...string) []domain.Contact {
	t.Helper()

	contacts := make([]domain.Contact, 0, len(phones))
	for _, phone := range phones {
		contacts = append(contacts, domain.Contact{Name: "contact " + phone, PhoneNumber: phone})
	}
	if err := db.Create(&contacts).Error; err != nil {
		t.Fatalf("failed to seed contacts: %v", err)
	}
	return contacts
}

func TestCreateAndFind(t *testing.T) {
	db := sqlitetest.Open(t)
	contacts := seedContacts(t, db, "1", "2")
	r := NewMessageRepository(db)
	ctx := context.Background()

	msg := &domain.Message{
		SenderID:   contacts[0].ID,
		ReceiverID: &contacts[1].ID,
		Body:       "hi",
		Status:     domain.StatusSent,
	}
	if err := r.Create(ctx, msg); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if msg.ID == 0 {
		t.Fatal("expected generated id")
	}

	found, err := r.FindByID(ctx, msg.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found == nil || found.Body != "hi" || found.Status != domain.StatusSent {
		t.Fatalf("unexpected message: %+v", found)
	}

	missing, err := r.FindByID(ctx, msg.ID+1)
	if err != nil || missing != nil {
		t.Fatalf("expected nil message and error, got %v, %v", missing, err)
	}
}

func TestFindByContact(t *testing.T) {
	db := sqlitetest.Open(t)
	contacts := seedContacts(t, db, "1", "2", "3")
	r := NewMessageRepository(db)
	ctx := context.Background()

	a, b, c := contacts[0].ID, contacts[1].ID, contacts[2].ID
	for _, m := range []domain.Message{
		{SenderID: a, ReceiverID: &b, Body: "a to b"},
		{SenderID: b, ReceiverID: &a, Body: "b to a"},
		{SenderID: b, ReceiverID: &c, Body: "b to c"},
	} {
		m.Status = domain.StatusSent
		if err := r.Create(ctx, &m); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	tests := []struct {
		name    string
		contact uint
		role    domain.MessageRole
		want    []string
	}{
		{"any", a, domain.RoleAny, []string{"a to b", "b to a"}},
		{"sender", a, domain.RoleSender, []string{"a to b"}},
		{"receiver", a, domain.RoleReceiver, []string{"b to a"}},
		{"sender of many", b, domain.RoleSender, []string{"b to a", "b to c"}},
		{"nothing sent", c, domain.RoleSender, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, err := r.FindByContact(ctx, tt.contact, tt.role)
			if err != nil {
				t.Fatalf("find by contact failed: %v", err)
			}
			if len(msgs) != len(tt.want) {
				t.Fatalf("expected %d messages, got %d", len(tt.want), len(msgs))
			}
			for i, body := range tt.want {
				if msgs[i].Body != body {
					t.Fatalf("expected message %d to be %q, got %q", i, body, msgs[i].Body)
				}
			}
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	db := sqlitetest.Open(t)
	contacts := seedContacts(t, db, "1", "2")
	r := NewMessageRepository(db)
	ctx := context.Background()

	msg := &domain.Message{SenderID: contacts[0].ID, ReceiverID: &contacts[1].ID, Body: "hi", Status: domain.StatusSent}
	if err := r.Create(ctx, msg); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := r.Update(ctx, msg, map[string]any{"status": string(domain.StatusRead)}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if msg.Status != domain.StatusRead || msg.Body != "hi" {
		t.Fatalf("unexpected message after update: %+v", msg)
	}

	if err := r.Delete(ctx, msg); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	found, err := r.FindByID(ctx, msg.ID)
	if err != nil || found != nil {
		t.Fatalf("expected message to be deleted, got %v, %v", found, err)
	}
}

func TestStatusCheckConstraint(t *testing.T) {
	db := sqlitetest.Open(t)
	contacts := seedContacts(t, db, "1", "2")
	r := NewMessageRepository(db)

	msg := &domain.Message{SenderID: contacts[0].ID, ReceiverID: &contacts[1].ID, Body: "hi", Status: "delivered"}
	if err := r.Create(context.Background(), msg); err == nil {
		t.Fatal("expected unknown status to be rejected")
	}
}
