package domain_test

import (
	"errors"
	"testing"

	"github.com/msomdec/userstore/internal/domain"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in     string
		want   domain.Role
		wantOK bool
	}{
		{"ADMIN", domain.RoleAdmin, true},
		{"USER", domain.RoleUser, true},
		{"admin", "", false},
		{"User", "", false},
		{"", "", false},
		{"test", "", false},
	}

	for _, tc := range tests {
		got, ok := domain.ParseRole(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("ParseRole(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		in     string
		want   domain.Gender
		wantOK bool
	}{
		{"MALE", domain.GenderMale, true},
		{"FEMALE", domain.GenderFemale, true},
		{"male", "", false},
		{"", "", false},
		{"OTHER", "", false},
	}

	for _, tc := range tests {
		got, ok := domain.ParseGender(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("ParseGender(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestValidationResult(t *testing.T) {
	var result domain.ValidationResult
	if !result.IsValid() {
		t.Fatal("expected empty result to be valid")
	}
	if result.HasErrors() {
		t.Fatal("expected empty result to have no errors")
	}

	first := domain.NewValidationError("test code", "Test message")
	second := domain.NewValidationError("other code", "Other message")
	result.Add(first)
	result.Add(second)

	if result.IsValid() {
		t.Fatal("expected result with errors to be invalid")
	}
	if !result.HasErrors() {
		t.Fatal("expected HasErrors to be true")
	}

	errs := result.Errors()
	if len(errs) != 2 || errs[0] != first || errs[1] != second {
		t.Fatalf("unexpected errors %v", errs)
	}

	// Mutating the returned slice must not affect the result.
	errs[0] = second
	if result.Errors()[0] != first {
		t.Fatal("Errors returned an aliased slice")
	}
}

func TestValidationFailedError(t *testing.T) {
	var result domain.ValidationResult
	result.Add(domain.NewValidationError("invalid.birthday", "Birthday is invalid"))
	result.Add(domain.NewValidationError("invalid.role", "Role is invalid"))

	var err error = &domain.ValidationFailedError{Result: result}
	if !errors.Is(err, domain.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if got := err.Error(); got != "validation failed: invalid.birthday, invalid.role" {
		t.Fatalf("unexpected message %q", got)
	}

	var vErr *domain.ValidationFailedError
	if !errors.As(err, &vErr) {
		t.Fatal("expected errors.As to find ValidationFailedError")
	}
	if len(vErr.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(vErr.Errors()))
	}
}
