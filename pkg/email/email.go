package email

import (
	"errors"
	"fmt"
)

// Message is the payload accepted by the Resend /emails endpoint.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// SendResult holds the provider's response for an accepted message.
type SendResult struct {
	ID string `json:"id"`
}

var ErrNotConfigured = errors.New("email: RESEND_API_KEY not configured")

// ProviderError is returned when the provider answers with a non-2xx status.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("email provider returned status %d", e.StatusCode)
}
