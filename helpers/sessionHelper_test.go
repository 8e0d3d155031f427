package helpers

import (
	"errors"
	"strings"
	"testing"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("sess-123", "5")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	claims, err := ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if claims.SessionID != "sess-123" || claims.TableNumber != "5" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := ValidateSessionToken("not-a-token"); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("garbage token error = %v, want ErrInvalidSession", err)
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	token, err := GenerateSessionToken("sess-123", "5")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]
	if _, err := ValidateSessionToken(tampered); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("tampered token error = %v, want ErrInvalidSession", err)
	}
}
