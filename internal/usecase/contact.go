package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inboxops-contact-api/config"
	"inboxops-contact-api/internal/domain"
	"inboxops-contact-api/pkg/email"
	"inboxops-contact-api/pkg/logger"
	"inboxops-contact-api/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const leadSubjectFormat = "[InboxOps Contact] %s from %s"

type contactUsecase struct {
	sender       domain.EmailSender
	validate     *validator.Validate
	companyEmail string
	fromEmail    string
}

// NewContactUsecase creates a new contact usecase.
// validate must have the custom tags from pkg/validation registered.
func NewContactUsecase(sender domain.EmailSender, validate *validator.Validate, cfg *config.Config) domain.ContactUsecase {
	return &contactUsecase{
		sender:       sender,
		validate:     validate,
		companyEmail: cfg.CompanyEmail,
		fromEmail:    cfg.FromEmail,
	}
}

// SendContactMessage validates the submission, hands the lead to the provider and
// then tries to confirm receipt to the submitter. Only the lead is mandatory.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if err := uc.validateRequest(ctx, req); err != nil {
		return err
	}

	// Checked before any rendering or network call
	if !uc.sender.IsConfigured() {
		logger.Log.Error("RESEND_API_KEY is not set")
		return domain.ErrNotConfigured
	}

	lang := domain.ResolveLanguage(string(req.Language))
	locale := domain.LocaleFor(lang)
	subjectLabel := domain.SubjectLabel(req.Subject, lang)
	view := newContactView(req, locale, subjectLabel)

	lead, err := renderLeadEmail(view)
	if err != nil {
		return fmt.Errorf("failed to render lead email: %w", err)
	}
	confirmation, err := renderConfirmationEmail(view)
	if err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	// Sends run to completion even if the client goes away mid-request
	sendCtx := context.WithoutCancel(ctx)

	if err := uc.sendLead(sendCtx, req, subjectLabel, lead); err != nil {
		return err
	}

	uc.sendConfirmation(sendCtx, req, locale, confirmation)
	return nil
}

func (uc *contactUsecase) validateRequest(ctx context.Context, req *domain.ContactRequest) error {
	if req == nil {
		return domain.ErrMissingFields
	}

	err := uc.validate.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	details := strings.Join(validation.FormatValidationErrors(err), "; ")
	switch {
	case validation.HasTag(err, "required"):
		return fmt.Errorf("%w: %s", domain.ErrMissingFields, details)
	case validation.HasTag(err, "contact_email"):
		return fmt.Errorf("%w: %s", domain.ErrInvalidEmail, details)
	default:
		return fmt.Errorf("failed to validate contact request: %w", err)
	}
}

// sendLead delivers the company notification. Any failure aborts the submission.
func (uc *contactUsecase) sendLead(ctx context.Context, req *domain.ContactRequest, subjectLabel string, body renderedEmail) error {
	msg := &email.Message{
		From:    uc.fromEmail,
		To:      []string{uc.companyEmail},
		Subject: fmt.Sprintf(leadSubjectFormat, subjectLabel, req.Name),
		HTML:    body.HTML,
		Text:    body.Text,
		ReplyTo: req.Email,
	}

	res, err := uc.sender.Send(ctx, msg)
	if err != nil {
		var provErr *email.ProviderError
		if errors.As(err, &provErr) {
			logger.Log.Error("Resend API error", "status", provErr.StatusCode, "body", provErr.Body)
			return fmt.Errorf("%w: %w", domain.ErrLeadDelivery, err)
		}
		logger.Log.Error("Failed to reach email provider", "error", err)
		return fmt.Errorf("failed to send lead email: %w", err)
	}

	logger.Log.Info("Lead notification sent", "message_id", messageID(res), "subject", req.Subject)
	return nil
}

// sendConfirmation is best effort: failures are logged and never reach the caller.
func (uc *contactUsecase) sendConfirmation(ctx context.Context, req *domain.ContactRequest, locale domain.Locale, body renderedEmail) {
	msg := &email.Message{
		From:    uc.fromEmail,
		To:      []string{req.Email},
		Subject: locale.ConfirmationSubject,
		HTML:    body.HTML,
		Text:    body.Text,
	}

	res, err := uc.sender.Send(ctx, msg)
	if err != nil {
		attrs := []any{"error", err}
		var provErr *email.ProviderError
		if errors.As(err, &provErr) {
			attrs = append(attrs, "status", provErr.StatusCode, "body", provErr.Body)
		}
		logger.Log.Warn("Failed to send confirmation email, but lead email was sent", attrs...)
		return
	}

	logger.Log.Info("Confirmation email sent", "message_id", messageID(res), "language", string(locale.Tag))
}

func messageID(res *email.SendResult) string {
	if res == nil {
		return ""
	}
	return res.ID
}
