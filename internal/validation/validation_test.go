package validation

import (
	"encoding/json"
	"testing"
)

var rules = map[string]string{
	"senderId": "required,number",
	"body":     "required",
	"status":   "required,oneof=sent read",
}

func TestValidateMissingFields(t *testing.T) {
	v := New()

	errs := v.Validate(map[string]any{"body": "hi"}, rules)
	if len(errs) != 2 {
		t.Fatalf("expected 2 failing fields, got %v", errs)
	}
	if got := errs["senderId"]; len(got) != 1 || got[0] != "The senderId field is required." {
		t.Fatalf("unexpected senderId messages: %v", got)
	}
	if _, ok := errs["status"]; !ok {
		t.Fatal("expected status to fail")
	}
	if _, ok := errs["body"]; ok {
		t.Fatal("body should pass")
	}
}

func TestValidateEmptyString(t *testing.T) {
	v := New()

	errs := v.Validate(map[string]any{"senderId": "1", "body": "", "status": "sent"}, rules)
	if got := errs["body"]; len(got) != 1 || got[0] != "The body field is required." {
		t.Fatalf("unexpected body messages: %v", errs)
	}
}

func TestValidateValues(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		payload map[string]any
		field   string
		wantErr bool
	}{
		{"json number id", map[string]any{"senderId": json.Number("12")}, "senderId", false},
		{"form string id", map[string]any{"senderId": "12"}, "senderId", false},
		{"non numeric id", map[string]any{"senderId": "abc"}, "senderId", true},
		{"negative id", map[string]any{"senderId": "-1"}, "senderId", true},
		{"bool id", map[string]any{"senderId": true}, "senderId", true},
		{"known status", map[string]any{"status": "read"}, "status", false},
		{"unknown status", map[string]any{"status": "delivered"}, "status", true},
		{"null body", map[string]any{"body": nil}, "body", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidatePresent(tt.payload, rules)
			_, failed := errs[tt.field]
			if failed != tt.wantErr {
				t.Fatalf("expected failure %v for %s, got %v", tt.wantErr, tt.field, errs)
			}
		})
	}
}

func TestValidatePresentSkipsAbsentFields(t *testing.T) {
	v := New()

	if errs := v.ValidatePresent(map[string]any{}, rules); errs != nil {
		t.Fatalf("expected no errors for empty partial payload, got %v", errs)
	}
	if errs := v.ValidatePresent(map[string]any{"status": "read"}, rules); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
