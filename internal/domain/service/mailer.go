package service

import "context"

// Mailer defines the interface for transactional email delivery.
// Delivery failures must never fail the calling operation; callers log and move on.
type Mailer interface {
	// SendApplicationReceived notifies a seller that their application was submitted.
	SendApplicationReceived(ctx context.Context, to, name string) error

	// SendApplicationApproved notifies a seller that their application was accepted.
	SendApplicationApproved(ctx context.Context, to, name string) error

	// SendApplicationRejected notifies a seller that their application was declined.
	SendApplicationRejected(ctx context.Context, to, name string) error
}
