package email

import (
	"context"
	"fmt"

	"inboxops-contact-api/config"

	"github.com/go-resty/resty/v2"
)

const emailsPath = "/emails"

// ResendClient sends emails through the Resend HTTP API
type ResendClient struct {
	apiKey string
	client *resty.Client
}

// NewResendClient creates a Resend client from the application config.
// No retries are configured: every message gets exactly one attempt.
func NewResendClient(cfg *config.Config) *ResendClient {
	return &ResendClient{
		apiKey: cfg.ResendAPIKey,
		client: resty.New().
			SetBaseURL(cfg.ResendBaseURL).
			SetTimeout(cfg.EmailTimeout).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
	}
}

// Send posts a single message. A non-2xx answer is reported as *ProviderError
// carrying the raw response body.
func (s *ResendClient) Send(ctx context.Context, msg *Message) (*SendResult, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}

	var result SendResult
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiKey).
		SetBody(msg).
		SetResult(&result).
		Post(emailsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &ProviderError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	return &result, nil
}

// IsConfigured checks if the client has an API key
func (s *ResendClient) IsConfigured() bool {
	return s.apiKey != ""
}
