package cache

import (
	"context"
	"fmt"
	"time"
)

const throttleTTL = 5 * time.Minute

// ResetThrottle limits how often a reset email can be requested for one
// address. Backed by SET NX with expiry, so the window needs no cleanup.
type ResetThrottle struct {
	cache Cache
}

func NewResetThrottle(c Cache) *ResetThrottle {
	return &ResetThrottle{cache: c}
}

// Allow reports whether a reset request for email may proceed, and claims
// the window when it does.
func (t *ResetThrottle) Allow(ctx context.Context, email string) (bool, error) {
	ok, err := t.cache.SetNX(ctx, t.key(email), "1", throttleTTL).Result()
	if err != nil {
		return false, fmt.Errorf("reset throttle: %w", err)
	}
	return ok, nil
}

func (t *ResetThrottle) key(email string) string {
	return "pwreset:" + email
}
