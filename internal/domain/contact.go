package domain

import (
	"context"
	"errors"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contact_email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
	// Language is optional; anything other than "de" renders in English
	Language RequestedLanguage `json:"language" swaggertype:"string"`
}

// Subject keys offered by the contact form. Unknown keys are accepted.
const (
	SubjectBeta        = "beta"
	SubjectPricing     = "pricing"
	SubjectPartnership = "partnership"
	SubjectSupport     = "support"
	SubjectOther       = "other"
)

// DefaultSubjectLabel is used when the subject key is not recognised.
const DefaultSubjectLabel = "Contact Form Submission"

var subjectLabels = map[string]map[Language]string{
	SubjectBeta:        {English: "Beta Request", German: "Beta-Anfrage"},
	SubjectPricing:     {English: "Pricing Question", German: "Fragen zu Preisen"},
	SubjectPartnership: {English: "Partnership Inquiry", German: "Partnerschaft"},
	SubjectSupport:     {English: "Support Request", German: "Support"},
	SubjectOther:       {English: "General Inquiry", German: "Sonstiges"},
}

// SubjectLabel resolves the human readable subject for a language,
// falling back to English and then to DefaultSubjectLabel.
func SubjectLabel(subject string, lang Language) string {
	labels, ok := subjectLabels[subject]
	if !ok {
		return DefaultSubjectLabel
	}
	if label, ok := labels[lang]; ok {
		return label
	}
	if label, ok := labels[English]; ok {
		return label
	}
	return DefaultSubjectLabel
}

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrNotConfigured = errors.New("email service is not configured")
	ErrLeadDelivery  = errors.New("failed to deliver lead notification")
)

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission, notifies the company inbox
	// and then attempts a confirmation to the submitter.
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
