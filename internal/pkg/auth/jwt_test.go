package auth

import (
	"errors"
	"testing"
	"time"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "schoolhub.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(7, "jdoe", "STAFF")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("GenerateToken() expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("claims.UserID = %d, want 7", claims.UserID)
	}
	if claims.Username != "jdoe" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "jdoe")
	}
	if claims.Role != "STAFF" {
		t.Errorf("claims.Role = %q, want %q", claims.Role, "STAFF")
	}
	if claims.Issuer != "schoolhub.test" {
		t.Errorf("claims.Issuer = %q, want %q", claims.Issuer, "schoolhub.test")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, _, err := svc.GenerateToken(7, "jdoe", "STAFF")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	if _, err := svc.ValidateAndExtractClaims(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateAndExtractClaims() error = %v, want %v", err, ErrExpiredToken)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, _, err := testJWTService(time.Hour).GenerateToken(7, "jdoe", "STAFF")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "schoolhub.test",
	})

	if _, err := other.ValidateAndExtractClaims(token); err == nil {
		t.Error("ValidateAndExtractClaims() with wrong secret expected error, got nil")
	}
}

func TestValidateEmptyToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAndExtractClaims(\"\") error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{
			name:   "bearer prefix stripped",
			header: "Bearer abc.def.ghi",
			want:   "abc.def.ghi",
		},
		{
			name:   "raw token passed through",
			header: "abc.def.ghi",
			want:   "abc.def.ghi",
		},
		{
			name:    "empty header rejected",
			header:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
