package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret123")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "s3cret123" {
		t.Fatal("HashPassword() returned the plaintext password")
	}

	if !CheckPassword(hash, "s3cret123") {
		t.Error("CheckPassword() = false for the correct password")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("CheckPassword() = true for a wrong password")
	}
	if CheckPassword("not-a-hash", "s3cret123") {
		t.Error("CheckPassword() = true for a malformed hash")
	}
}
