package service

import (
	"context"
	"errors"
	"time"
)

// Lockout state errors.
var (
	// ErrNoPasscode is returned when no passcode challenge is pending for the account.
	ErrNoPasscode = errors.New("no pending passcode")
)

// LockoutStore tracks failed login attempts and passcode challenges per
// account. State lives server-side so a fresh browser session cannot reset a
// pending lockout.
type LockoutStore interface {
	// RecordFailure increments the account's failed-attempt counter and
	// returns the new count. Counters expire after the configured window.
	RecordFailure(ctx context.Context, email string) (int, error)

	// ClearFailures resets the account's failed-attempt counter.
	ClearFailures(ctx context.Context, email string) error

	// StorePasscode saves a passcode challenge for the account with the
	// configured time-to-live, replacing any previous one.
	StorePasscode(ctx context.Context, email, code string) error

	// GetPasscode returns the pending passcode, or ErrNoPasscode when none
	// is pending (never issued, consumed, or expired).
	GetPasscode(ctx context.Context, email string) (string, error)

	// ClearPasscode consumes the pending passcode challenge.
	ClearPasscode(ctx context.Context, email string) error

	// StartCooldown begins the resend cooldown for the account.
	StartCooldown(ctx context.Context, email string) error

	// CooldownRemaining returns how long until the account may request
	// another passcode. Zero means no cooldown is active.
	CooldownRemaining(ctx context.Context, email string) (time.Duration, error)
}
