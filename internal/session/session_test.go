package session

import "testing"

func TestMintAndParse(t *testing.T) {
	token, err := Mint("test-secret", 42, "Ann")
	if err != nil {
		t.Fatalf("mint session: %v", err)
	}

	claims, err := Parse(token, "test-secret")
	if err != nil {
		t.Fatalf("parse session: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Name != "Ann" {
		t.Fatalf("expected name Ann, got %q", claims.Name)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Mint("test-secret", 42, "Ann")
	if err != nil {
		t.Fatalf("mint session: %v", err)
	}
	if _, err := Parse(token, "other-secret"); err == nil {
		t.Fatalf("expected wrong-secret parse to fail")
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	token, err := Mint("test-secret", 42, "Ann")
	if err != nil {
		t.Fatalf("mint session: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := Parse(tampered, "test-secret"); err == nil {
		t.Fatalf("expected tampered parse to fail")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not-a-token", "test-secret"); err == nil {
		t.Fatalf("expected garbage parse to fail")
	}
}
