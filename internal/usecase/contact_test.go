package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"inboxops-contact-api/config"
	"inboxops-contact-api/internal/domain"
	"inboxops-contact-api/internal/usecase"
	"inboxops-contact-api/pkg/email"
	"inboxops-contact-api/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	companyEmail = "hello@inboxops.app"
	fromEmail    = "noreply@inboxops.app"
)

// Mock email sender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg *email.Message) (*email.SendResult, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*email.SendResult), args.Error(1)
}

func (m *MockEmailSender) IsConfigured() bool {
	return m.Called().Bool(0)
}

func toCompany(msg *email.Message) bool {
	return len(msg.To) == 1 && msg.To[0] == companyEmail
}

func toSubmitter(addr string) func(*email.Message) bool {
	return func(msg *email.Message) bool {
		return len(msg.To) == 1 && msg.To[0] == addr
	}
}

func newContactUsecase(sender *MockEmailSender) domain.ContactUsecase {
	return usecase.NewContactUsecase(sender, validation.New(), &config.Config{
		CompanyEmail: companyEmail,
		FromEmail:    fromEmail,
	})
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:     "Jane",
		Email:    "jane@x.com",
		Subject:  "pricing",
		Message:  "Hi\nthere",
		Language: "en",
	}
}

func TestSendContactMessageMissingFields(t *testing.T) {
	tests := map[string]func(r *domain.ContactRequest){
		"name":    func(r *domain.ContactRequest) { r.Name = "" },
		"email":   func(r *domain.ContactRequest) { r.Email = "" },
		"subject": func(r *domain.ContactRequest) { r.Subject = "" },
		"message": func(r *domain.ContactRequest) { r.Message = "" },
		"missing name wins over bad email": func(r *domain.ContactRequest) {
			r.Name = ""
			r.Email = "not-an-email"
		},
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			sender := new(MockEmailSender)
			uc := newContactUsecase(sender)

			req := validRequest()
			mutate(req)

			err := uc.SendContactMessage(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			sender.AssertNotCalled(t, "IsConfigured")
		})
	}

	t.Run("nil request", func(t *testing.T) {
		uc := newContactUsecase(new(MockEmailSender))
		assert.ErrorIs(t, uc.SendContactMessage(context.Background(), nil), domain.ErrMissingFields)
	})
}

func TestSendContactMessageInvalidEmail(t *testing.T) {
	for _, addr := range []string{"not-an-email", "a@b", "a b@c.de"} {
		t.Run(addr, func(t *testing.T) {
			sender := new(MockEmailSender)
			uc := newContactUsecase(sender)

			req := validRequest()
			req.Email = addr

			err := uc.SendContactMessage(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidEmail)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestSendContactMessageNotConfigured(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(false)
	uc := newContactUsecase(sender)

	req := validRequest()
	req.Email = "a@b.co"

	err := uc.SendContactMessage(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendContactMessageSuccess(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)

	var sent []*email.Message
	record := func(args mock.Arguments) { sent = append(sent, args.Get(1).(*email.Message)) }
	sender.On("Send", mock.Anything, mock.MatchedBy(toCompany)).
		Return(&email.SendResult{ID: "lead-1"}, nil).Run(record).Once()
	sender.On("Send", mock.Anything, mock.MatchedBy(toSubmitter("jane@x.com"))).
		Return(&email.SendResult{ID: "confirm-1"}, nil).Run(record).Once()

	uc := newContactUsecase(sender)
	require.NoError(t, uc.SendContactMessage(context.Background(), validRequest()))
	sender.AssertExpectations(t)

	// Lead always goes first
	require.Len(t, sent, 2)
	lead, confirmation := sent[0], sent[1]

	assert.Equal(t, fromEmail, lead.From)
	assert.Equal(t, []string{companyEmail}, lead.To)
	assert.Equal(t, "[InboxOps Contact] Pricing Question from Jane", lead.Subject)
	assert.Equal(t, "jane@x.com", lead.ReplyTo)
	assert.Contains(t, lead.Text, "Subject: Pricing Question")
	assert.Contains(t, lead.Text, "Hi\nthere")
	assert.Contains(t, lead.HTML, "Hi<br>there")
	assert.Contains(t, lead.HTML, `href="mailto:jane@x.com"`)

	assert.Equal(t, fromEmail, confirmation.From)
	assert.Equal(t, []string{"jane@x.com"}, confirmation.To)
	assert.Equal(t, "Thank You for Your Message – InboxOps", confirmation.Subject)
	assert.Empty(t, confirmation.ReplyTo)
	assert.Contains(t, confirmation.Text, "Hello Jane,")
}

func TestSendContactMessageGerman(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)

	var lead, confirmation *email.Message
	sender.On("Send", mock.Anything, mock.MatchedBy(toCompany)).
		Return(&email.SendResult{ID: "lead-1"}, nil).
		Run(func(args mock.Arguments) { lead = args.Get(1).(*email.Message) })
	sender.On("Send", mock.Anything, mock.MatchedBy(toSubmitter("hans@beispiel.de"))).
		Return(&email.SendResult{ID: "confirm-1"}, nil).
		Run(func(args mock.Arguments) { confirmation = args.Get(1).(*email.Message) })

	uc := newContactUsecase(sender)
	err := uc.SendContactMessage(context.Background(), &domain.ContactRequest{
		Name:     "Hans",
		Email:    "hans@beispiel.de",
		Subject:  "beta",
		Message:  "Hallo",
		Language: "de",
	})
	require.NoError(t, err)

	require.NotNil(t, lead)
	require.NotNil(t, confirmation)
	assert.Equal(t, "[InboxOps Contact] Beta-Anfrage from Hans", lead.Subject)
	assert.Contains(t, lead.Text, "Sprache: Deutsch")
	assert.Equal(t, "Vielen Dank für deine Nachricht – InboxOps", confirmation.Subject)
	assert.Contains(t, confirmation.Text, "Hallo Hans,")
	assert.Contains(t, confirmation.HTML, `<html lang="de">`)
}

func TestSendContactMessageUnknownSubject(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)

	var lead *email.Message
	sender.On("Send", mock.Anything, mock.MatchedBy(toCompany)).
		Return(&email.SendResult{}, nil).
		Run(func(args mock.Arguments) { lead = args.Get(1).(*email.Message) })
	sender.On("Send", mock.Anything, mock.Anything).Return(&email.SendResult{}, nil)

	req := validRequest()
	req.Subject = "unknown_key"
	req.Language = "fr"

	require.NoError(t, newContactUsecase(sender).SendContactMessage(context.Background(), req))
	require.NotNil(t, lead)
	assert.Equal(t, "[InboxOps Contact] Contact Form Submission from Jane", lead.Subject)
}

func TestSendContactMessageLeadRejected(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)
	sender.On("Send", mock.Anything, mock.MatchedBy(toCompany)).
		Return(nil, &email.ProviderError{StatusCode: http.StatusForbidden, Body: `{"message":"domain not verified"}`})

	err := newContactUsecase(sender).SendContactMessage(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrLeadDelivery)

	var provErr *email.ProviderError
	assert.True(t, errors.As(err, &provErr))

	// Confirmation is never attempted
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestSendContactMessageLeadTransportFailure(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)
	sender.On("Send", mock.Anything, mock.MatchedBy(toCompany)).
		Return(nil, errors.New("dial tcp: i/o timeout"))

	err := newContactUsecase(sender).SendContactMessage(context.Background(), validRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrLeadDelivery)
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestSendContactMessageConfirmationFailureIsSwallowed(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)
	sender.On("Send", mock.Anything, mock.MatchedBy(toCompany)).
		Return(&email.SendResult{ID: "lead-1"}, nil)
	sender.On("Send", mock.Anything, mock.MatchedBy(toSubmitter("jane@x.com"))).
		Return(nil, &email.ProviderError{StatusCode: http.StatusUnprocessableEntity, Body: "bad recipient"})

	err := newContactUsecase(sender).SendContactMessage(context.Background(), validRequest())
	assert.NoError(t, err)
	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestSendContactMessageIgnoresCallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := new(MockEmailSender)
	sender.On("IsConfigured").Return(true)
	sender.On("Send", mock.Anything, mock.Anything).
		Return(&email.SendResult{}, nil).
		Run(func(args mock.Arguments) {
			sendCtx := args.Get(0).(context.Context)
			assert.NoError(t, sendCtx.Err())
		})

	require.NoError(t, newContactUsecase(sender).SendContactMessage(ctx, validRequest()))
	sender.AssertNumberOfCalls(t, "Send", 2)
}
