package auth

import (
	"strings"
	"testing"
	"time"
)

func TestHashAndVerifyPassword(t *testing.T) {
	first, err := HashPassword("hunter2!pass9")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("hunter2!pass9")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same password")
	}
	if !VerifyPassword("hunter2!pass9", first) {
		t.Fatalf("first hash did not verify")
	}
	if !VerifyPassword("hunter2!pass9", second) {
		t.Fatalf("second hash did not verify")
	}
	if VerifyPassword("wrong-password", first) {
		t.Fatalf("wrong password verified")
	}
}

func TestVerifyPasswordBadHashes(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "garbage", hash: "not-a-bcrypt-hash"},
		{name: "truncated", hash: "$2a$10$short"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if VerifyPassword("anything", tc.hash) {
				t.Fatalf("hash %q verified", tc.hash)
			}
		})
	}
}

func TestVerifyPasswordPrefixVariants(t *testing.T) {
	hash, err := HashPassword("prefix#check1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	for _, prefix := range []string{"$2b$", "$2y$"} {
		variant := prefix + strings.TrimPrefix(hash, "$2a$")
		if !VerifyPassword("prefix#check1", variant) {
			t.Fatalf("hash with %s prefix did not verify", prefix)
		}
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("test-secret", 42, RoleManager, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Role != RoleManager {
		t.Fatalf("role = %q, want %q", claims.Role, RoleManager)
	}
	id, ok := SubjectUserID(claims)
	if !ok || id != 42 {
		t.Fatalf("SubjectUserID = (%d, %v), want (42, true)", id, ok)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", 1, RoleEmployee, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Fatalf("token signed with a different secret parsed")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("test-secret", 1, RoleEmployee, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("test-secret", token); err == nil {
		t.Fatalf("expired token parsed")
	}
}

func TestSubjectUserID(t *testing.T) {
	tests := []struct {
		name    string
		claims  *Claims
		wantID  int
		wantOK  bool
	}{
		{name: "nil claims", claims: nil},
		{name: "non numeric subject", claims: claimsWithSubject("abc")},
		{name: "empty subject", claims: claimsWithSubject("")},
		{name: "numeric subject", claims: claimsWithSubject("7"), wantID: 7, wantOK: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := SubjectUserID(tc.claims)
			if id != tc.wantID || ok != tc.wantOK {
				t.Fatalf("SubjectUserID = (%d, %v), want (%d, %v)", id, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}

func claimsWithSubject(subject string) *Claims {
	c := &Claims{}
	c.Subject = subject
	return c
}
