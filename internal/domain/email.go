package domain

import (
	"context"

	"inboxops-contact-api/pkg/email"
)

// EmailSender delivers a single outbound email through the provider.
type EmailSender interface {
	Send(ctx context.Context, msg *email.Message) (*email.SendResult, error)
	// IsConfigured reports whether credentials are present.
	IsConfigured() bool
}
