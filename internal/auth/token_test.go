package auth

import (
	"testing"
	"time"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("u1", "jean@example.com", "Jean", RoleUser)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "u1" {
		t.Errorf("expected subject u1, got %s", claims.Subject)
	}
	if claims.Email != "jean@example.com" || claims.Name != "Jean" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Role != RoleUser {
		t.Errorf("expected user role, got %s", claims.Role)
	}
}

func TestTokenManager_AdminRole(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("admin", "admin@batchcook.local", "admin", RoleAdmin)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("expected admin role, got %s", claims.Role)
	}
}

func TestTokenManager_Verify(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "garbage string",
			token: func() string { return "not-a-token" },
		},
		{
			name: "wrong secret",
			token: func() string {
				other := NewTokenManager("other-secret", time.Hour)
				tok, _ := other.Issue("u1", "a@b.c", "A", RoleUser)
				return tok
			},
		},
		{
			name: "expired",
			token: func() string {
				expired := NewTokenManager("test-secret", -time.Minute)
				tok, _ := expired.Issue("u1", "a@b.c", "A", RoleUser)
				return tok
			},
		},
		{
			name:  "empty",
			token: func() string { return "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.token()); err != ErrInvalidToken {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
