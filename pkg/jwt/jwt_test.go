package jwt

import (
	"testing"
	"time"

	"github.com/Looz41/Diplom-sub000/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing",
		TokenTTL:  24 * time.Hour,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateToken("user-1", []string{"ADMIN", "USER"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("ожидался UserID=user-1, получен %s", claims.UserID)
	}
	if !claims.HasRole("ADMIN") || !claims.HasRole("USER") {
		t.Errorf("ожидались роли ADMIN и USER, получены %v", claims.Roles)
	}
	if claims.HasRole("ROOT") {
		t.Error("роль ROOT не выдавалась")
	}
	if claims.Issuer != "sub000" {
		t.Errorf("ожидался Issuer=sub000, получен %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI не должен быть пустым")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager(&config.AuthConfig{
		JWTSecret: "another-secret-key-0123456789",
		TokenTTL:  24 * time.Hour,
	})

	token, err := m.GenerateToken("user-1", []string{"USER"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("ожидалась ErrTokenInvalid, получено: %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing",
		TokenTTL:  -time.Minute,
	})

	token, err := m.GenerateToken("user-1", []string{"USER"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("ожидалась ErrTokenExpired, получено: %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager()
	if _, err := m.ParseToken("not-a-token"); err != ErrTokenInvalid {
		t.Errorf("ожидалась ErrTokenInvalid, получено: %v", err)
	}
}
