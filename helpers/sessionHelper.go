package helpers

import (
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// SessionClaims identify one browser session's cart. This is not user
// authentication; the token is only a stable, tamper-proof cart key.
type SessionClaims struct {
	SessionID   string `json:"session_id"`
	TableNumber string `json:"table_number"`
	jwt.StandardClaims
}

var ErrInvalidSession = errors.New("invalid session token")

func sessionSecret() []byte {
	if s := os.Getenv("SECRET_KEY"); s != "" {
		return []byte(s)
	}
	return []byte("table-order-dev-secret")
}

func GenerateSessionToken(sessionID, tableNumber string) (string, error) {
	claims := SessionClaims{
		SessionID:   sessionID,
		TableNumber: tableNumber,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sessionSecret())
}

func ValidateSessionToken(signed string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(signed, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return sessionSecret(), nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
