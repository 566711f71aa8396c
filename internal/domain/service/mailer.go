package service

import "context"

// Mailer defines the interface for transactional mail delivery.
// Sends are fire-and-forget from the caller's point of view; a failed mail
// never fails the operation that triggered it.
type Mailer interface {
	// SendVerificationMail sends the account activation link for the given token.
	SendVerificationMail(ctx context.Context, to, token string) error

	// SendPasscodeMail sends the 6-digit login passcode.
	SendPasscodeMail(ctx context.Context, to, code string) error
}
