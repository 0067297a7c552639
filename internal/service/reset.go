package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"account-service/internal/database"
	"account-service/internal/model"
	"account-service/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// DefaultResetTTL bounds the exposure window of a leaked reset link.
const DefaultResetTTL = 10 * time.Minute

const purposePasswordReset = "password_reset"

// ErrInvalidToken is the only error callers ever see from Verify. The
// specific failure (expired, forged, malformed, unknown subject) is logged
// for operators but deliberately not disclosed.
var ErrInvalidToken = errors.New("invalid or expired token")

type resetClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// ResetTokens issues and verifies the signed, expiring tokens embedded in
// password-reset links. Tokens are self-contained, so no reset state is
// kept server side.
type ResetTokens struct {
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
	now    func() time.Time
}

func NewResetTokens(secret []byte, ttl time.Duration, log zerolog.Logger) *ResetTokens {
	if ttl <= 0 {
		ttl = DefaultResetTTL
	}
	return &ResetTokens{secret: secret, ttl: ttl, log: log, now: time.Now}
}

// Issue signs a token binding the user's id to an expiry of now+ttl. The
// compact JWT serialization is URL-safe, so the token can be a path segment.
func (t *ResetTokens) Issue(user model.User) (string, error) {
	now := t.now()
	claims := resetClaims{
		Purpose: purposePasswordReset,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify decodes the token, checks signature and expiry, and resolves the
// embedded subject against the store. Every failure collapses to
// ErrInvalidToken.
func (t *ResetTokens) Verify(ctx context.Context, db database.DB, tokenString string) (*model.User, error) {
	claims := &resetClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			t.log.Info().Str("subject", claims.Subject).Msg("reset token expired")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			t.log.Warn().Msg("reset token signature mismatch")
		case errors.Is(err, jwt.ErrTokenMalformed):
			t.log.Warn().Msg("reset token malformed")
		default:
			t.log.Warn().Err(err).Msg("reset token rejected")
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.Purpose != purposePasswordReset {
		t.log.Warn().Str("purpose", claims.Purpose).Msg("reset token purpose mismatch")
		return nil, ErrInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		t.log.Warn().Str("subject", claims.Subject).Msg("reset token subject not numeric")
		return nil, ErrInvalidToken
	}
	user, err := store.GetUserByID(ctx, db, userID)
	if err != nil {
		t.log.Info().Int("user_id", userID).Msg("reset token subject no longer exists")
		return nil, ErrInvalidToken
	}
	return user, nil
}
