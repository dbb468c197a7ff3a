package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	AID   string `json:"aid"`
	Email string `json:"email"`
	Admin bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

func secret() []byte {
	s := os.Getenv("SKILLSWAP_JWT_SECRET")
	if s == "" {
		s = "skillswap-dev-secret"
	}
	return []byte(s)
}

// SignToken mints the HS256 session token handed to callers at login.
func SignToken(accountID, email string, admin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		AID:   accountID,
		Email: email,
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// ParseToken validates a session token's signature and expiry. The session
// table stays authoritative: a token that parses fine may still have been
// revoked by logout.
func ParseToken(tok string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (interface{}, error) { return secret(), nil })
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// BearerToken extracts the bearer token from the Authorization header, or ""
// when absent.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
