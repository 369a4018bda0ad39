package services

import (
	"errors"
	"testing"
	"time"

	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/pkg/apperrors"
)

func pendingUser(token string, expiresAt time.Time) *models.User {
	return &models.User{
		Username:          "invited",
		Password:          "placeholder-hash",
		MustSetPassword:   true,
		RegistrationToken: &token,
		TokenExpiresAt:    &expiresAt,
	}
}

func TestCheckRegistrationToken(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		user    *models.User
		token   string
		wantErr error
	}{
		{
			name:  "valid token inside expiry",
			user:  pendingUser("tok-123", now.Add(24*time.Hour)),
			token: "tok-123",
		},
		{
			name:    "wrong token value",
			user:    pendingUser("tok-123", now.Add(24*time.Hour)),
			token:   "tok-456",
			wantErr: apperrors.ErrTokenInvalid,
		},
		{
			name:    "expired token",
			user:    pendingUser("tok-123", now.Add(-time.Hour)),
			token:   "tok-123",
			wantErr: apperrors.ErrTokenExpired,
		},
		{
			name: "account already registered",
			user: &models.User{
				Username:        "active",
				MustSetPassword: false,
			},
			token:   "tok-123",
			wantErr: apperrors.ErrTokenInvalid,
		},
		{
			name: "pending account without stored token",
			user: &models.User{
				Username:        "broken",
				MustSetPassword: true,
			},
			token:   "tok-123",
			wantErr: apperrors.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkRegistrationToken(tt.user, tt.token, now)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("checkRegistrationToken() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("checkRegistrationToken() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// An expired token must leave the stored hash untouched. The check happens
// before any hashing or persistence, so a failed validation proves no write
// path was reached.
func TestExpiredTokenLeavesHashAlone(t *testing.T) {
	now := time.Now()
	user := pendingUser("tok-123", now.Add(-time.Minute))
	before := user.Password

	err := checkRegistrationToken(user, "tok-123", now)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Fatalf("checkRegistrationToken() error = %v, want token expired", err)
	}
	if user.Password != before {
		t.Errorf("password hash changed on expired token: %q -> %q", before, user.Password)
	}
}
