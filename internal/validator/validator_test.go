package validator

import (
	"strings"
	"testing"
)

type samplePayload struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidatePassesValidPayload(t *testing.T) {
	v := New()
	err := v.Validate(&samplePayload{Name: "John Doe", Username: "john_doe", Password: "secret1"})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&samplePayload{Password: "short"})

	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error = %T, want *ValidationError", err)
	}

	if _, ok := verr.Errors["name"]; !ok {
		t.Errorf("missing error for json field 'name': %v", verr.Errors)
	}
	if _, ok := verr.Errors["username"]; !ok {
		t.Errorf("missing error for json field 'username': %v", verr.Errors)
	}
	if msg := verr.Errors["password"]; !strings.Contains(msg, "at least 6") {
		t.Errorf("password message = %q, want min length hint", msg)
	}
}
