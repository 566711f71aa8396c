package lockout

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"greeniecart/config"
	"greeniecart/internal/domain/service"
)

const (
	failKeyPrefix     = "lockout:fail:"
	codeKeyPrefix     = "lockout:code:"
	cooldownKeyPrefix = "lockout:cooldown:"

	defaultAttemptWindow  = 15 * time.Minute
	defaultPasscodeTTL    = 10 * time.Minute
	defaultResendCooldown = 60 * time.Second
)

// redisLockoutStore is a concrete implementation of the LockoutStore interface
// backed by Redis. Every key carries a TTL so stale lockout state ages out on
// its own.
type redisLockoutStore struct {
	client         redis.Cmdable
	attemptWindow  time.Duration
	passcodeTTL    time.Duration
	resendCooldown time.Duration
}

// NewRedisLockoutStore is the constructor for redisLockoutStore.
func NewRedisLockoutStore(client *redis.Client, cfg *config.Config) service.LockoutStore {
	store := &redisLockoutStore{
		client:         client,
		attemptWindow:  defaultAttemptWindow,
		passcodeTTL:    defaultPasscodeTTL,
		resendCooldown: defaultResendCooldown,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AttemptWindow > 0 {
			store.attemptWindow = cfg.Auth.AttemptWindow
		}
		if cfg.Auth.PasscodeTTL > 0 {
			store.passcodeTTL = cfg.Auth.PasscodeTTL
		}
		if cfg.Auth.ResendCooldown > 0 {
			store.resendCooldown = cfg.Auth.ResendCooldown
		}
	}

	return store
}

// RecordFailure increments the failure counter and refreshes its window.
func (s *redisLockoutStore) RecordFailure(ctx context.Context, email string) (int, error) {
	key := failKeyPrefix + email

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrap(err, "incr failure counter")
	}
	if err := s.client.Expire(ctx, key, s.attemptWindow).Err(); err != nil {
		return 0, errors.Wrap(err, "expire failure counter")
	}

	return int(count), nil
}

// ClearFailures resets the failure counter.
func (s *redisLockoutStore) ClearFailures(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, failKeyPrefix+email).Err(); err != nil {
		return errors.Wrap(err, "delete failure counter")
	}

	return nil
}

// StorePasscode saves the passcode challenge, replacing any previous one.
func (s *redisLockoutStore) StorePasscode(ctx context.Context, email, code string) error {
	if err := s.client.Set(ctx, codeKeyPrefix+email, code, s.passcodeTTL).Err(); err != nil {
		return errors.Wrap(err, "store passcode")
	}

	return nil
}

// GetPasscode returns the pending passcode, or ErrNoPasscode when none exists.
func (s *redisLockoutStore) GetPasscode(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, codeKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", service.ErrNoPasscode
	}
	if err != nil {
		return "", errors.Wrap(err, "get passcode")
	}

	return code, nil
}

// ClearPasscode consumes the pending passcode challenge.
func (s *redisLockoutStore) ClearPasscode(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, codeKeyPrefix+email).Err(); err != nil {
		return errors.Wrap(err, "delete passcode")
	}

	return nil
}

// StartCooldown begins the resend cooldown for the account.
func (s *redisLockoutStore) StartCooldown(ctx context.Context, email string) error {
	if err := s.client.Set(ctx, cooldownKeyPrefix+email, "1", s.resendCooldown).Err(); err != nil {
		return errors.Wrap(err, "start cooldown")
	}

	return nil
}

// CooldownRemaining reports the remaining cooldown, zero when none is active.
func (s *redisLockoutStore) CooldownRemaining(ctx context.Context, email string) (time.Duration, error) {
	remaining, err := s.client.PTTL(ctx, cooldownKeyPrefix+email).Result()
	if err != nil {
		return 0, errors.Wrap(err, "cooldown ttl")
	}
	// PTTL returns a negative duration when the key does not exist or has no TTL.
	if remaining < 0 {
		return 0, nil
	}

	return remaining, nil
}
