package utils

import "testing"

func TestHashPasswordAndVerify(t *testing.T) {
	password := "this-is-a-long-password"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == password {
		t.Fatalf("hash must not equal the raw password")
	}
	if !CheckPasswordHash(password, hash) {
		t.Fatalf("expected password verification to succeed")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatalf("expected wrong password verification to fail")
	}
}
