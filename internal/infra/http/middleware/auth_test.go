package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(sub string) Claims {
	return Claims{
		Email: "sam@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestTokenVerifier_Verify(t *testing.T) {
	v := NewTokenVerifier(testSecret)

	claims, err := v.Verify(signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("user-1")))

	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "sam@example.com", claims.Email)
}

func TestTokenVerifier_Rejects(t *testing.T) {
	v := NewTokenVerifier(testSecret)

	expired := validClaims("user-1")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims("user-1")
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"wrong secret", signToken(t, "another-secret", jwt.SigningMethodHS256, validClaims("user-1"))},
		{"expired", signToken(t, testSecret, jwt.SigningMethodHS256, expired)},
		{"missing exp", signToken(t, testSecret, jwt.SigningMethodHS256, noExpiry)},
		{"missing subject", signToken(t, testSecret, jwt.SigningMethodHS256, validClaims(""))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	v := NewTokenVerifier(testSecret)

	var seenUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser, _ = UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireAuth(v)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"missing header", "", http.StatusUnauthorized, "Missing authorization header"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "Invalid or expired token"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "Invalid or expired token"},
		{"valid", "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("user-42")), http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenUser = ""
			req := httptest.NewRequest(http.MethodPost, "/send-email", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantError, body["error"])
				assert.Empty(t, seenUser)
			} else {
				assert.Equal(t, "user-42", seenUser)
			}
		})
	}
}

func TestUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := UserID(req.Context())
	assert.False(t, ok)

	id, ok := UserID(WithUserID(req.Context(), "user-1"))
	assert.True(t, ok)
	assert.Equal(t, "user-1", id)
}
