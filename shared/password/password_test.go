package password_test

import (
	"errors"
	"parkease/shared/password"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}

	if hash == "secret123" {
		t.Error("expected hash to differ from the plaintext password")
	}

	if err := password.Verify("secret123", hash); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}

	if err := password.Verify("wrong-password", hash); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for wrong password, got %v", err)
	}
}

func TestHashEmptyPassword(t *testing.T) {
	if _, err := password.Hash(""); err == nil {
		t.Error("expected an error hashing an empty password")
	}
}

func TestVerifyEmptyInputs(t *testing.T) {
	tests := []struct {
		name     string
		password string
		hash     string
	}{
		{name: "empty password", password: "", hash: "some-hash"},
		{name: "empty hash", password: "secret123", hash: ""},
		{name: "both empty", password: "", hash: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := password.Verify(tt.password, tt.hash); !errors.Is(err, password.ErrInvalidPassword) {
				t.Errorf("expected ErrInvalidPassword, got %v", err)
			}
		})
	}
}

func TestVerifyPlaintext(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		stored    string
		wantErr   bool
	}{
		{
			name:      "matching values",
			candidate: "secret123",
			stored:    "secret123",
			wantErr:   false,
		},
		{
			name:      "mismatched values",
			candidate: "secret123",
			stored:    "other-secret",
			wantErr:   true,
		},
		{
			name:      "empty candidate",
			candidate: "",
			stored:    "secret123",
			wantErr:   true,
		},
		{
			name:      "empty stored value",
			candidate: "secret123",
			stored:    "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.VerifyPlaintext(tt.candidate, tt.stored)

			if tt.wantErr && !errors.Is(err, password.ErrInvalidPassword) {
				t.Errorf("expected ErrInvalidPassword, got %v", err)
			}

			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
