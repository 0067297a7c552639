package service

import (
	"fmt"
	"strconv"
	"time"

	"account-service/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims is the access-token payload.
type CustomClaims struct {
	UserID  int  `json:"uid"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// AccessTokens issues and verifies the bearer tokens handed out at login.
// The secret is injected at construction; rotating it invalidates every
// outstanding token.
type AccessTokens struct {
	secret []byte
	ttl    time.Duration
}

func NewAccessTokens(secret []byte, ttl time.Duration) *AccessTokens {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AccessTokens{secret: secret, ttl: ttl}
}

// TTL reports the configured token lifetime.
func (t *AccessTokens) TTL() time.Duration { return t.ttl }

func (t *AccessTokens) Issue(user model.User) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *AccessTokens) Verify(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
