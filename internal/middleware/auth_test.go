package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/batcheasycook/batchcook-api/internal/auth"
)

func TestBearerAuth(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	userToken, err := tokens.Issue("user-1", "marie@example.com", "Marie", auth.RoleUser)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	// Test handler that echoes the authenticated user's id
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			t.Error("claims missing from context")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(claims.Subject))
	})

	authHandler := BearerAuth(tokens)(testHandler)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid bearer token",
			header:         "Bearer " + userToken,
			expectedStatus: http.StatusOK,
			expectedBody:   "user-1",
		},
		{
			name:           "missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing bearer prefix",
			header:         userToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			header:         "Bearer not-a-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token signed with another secret",
			header:         "Bearer " + issueWithSecret(t, "other-secret"),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			authHandler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedBody != "" && w.Body.String() != tt.expectedBody {
				t.Errorf("body = %s, want %s", w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	adminToken, err := tokens.Issue("admin", "admin@batchcook.local", "Admin", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to issue admin token: %v", err)
	}
	userToken, err := tokens.Issue("user-1", "marie@example.com", "Marie", auth.RoleUser)
	if err != nil {
		t.Fatalf("failed to issue user token: %v", err)
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := BearerAuth(tokens)(AdminOnly(testHandler))

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{
			name:           "admin token passes",
			token:          adminToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "user token is forbidden",
			token:          userToken,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/batch-cooking-requests", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
		})
	}
}

func issueWithSecret(t *testing.T, secret string) string {
	t.Helper()
	token, err := auth.NewTokenManager(secret, time.Hour).Issue("user-2", "x@example.com", "X", auth.RoleUser)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}
