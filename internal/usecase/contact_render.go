package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"inboxops-contact-api/internal/domain"
	"inboxops-contact-api/pkg/email"
)

// leadTitle is the <title> of the company notification; the inbox is English-speaking.
const leadTitle = "New Contact Form Submission"

// leadHeading is shown on top of the company notification card
const leadHeading = "InboxOps"

type renderedEmail struct {
	HTML string
	Text string
}

// contactView is the data every contact template is executed with
type contactView struct {
	Locale       domain.Locale
	Name         string
	Email        string
	MailTo       template.URL
	SubjectLabel string
	Message      string
	MessageHTML  template.HTML
}

const leadContentTemplate = `<div style="color: #E8E8E8;">
  <p style="margin: 0 0 20px; font-size: 16px; line-height: 1.6; color: #E8E8E8;">{{.Locale.LeadIntro}}</p>
  <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" style="margin: 0 0 24px;">
    <tr>
      <td style="padding: 12px; background-color: #1F2937; border-radius: 8px; border: 1px solid #2D3748;">
        <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%">
          <tr>
            <td style="padding: 8px 0; color: #8C8C8C; font-size: 13px; font-weight: 600; width: 120px;">{{.Locale.NameLabel}}</td>
            <td style="padding: 8px 0; color: #E8E8E8; font-size: 14px;">{{.Name}}</td>
          </tr>
          <tr>
            <td style="padding: 8px 0; color: #8C8C8C; font-size: 13px; font-weight: 600;">{{.Locale.EmailLabel}}</td>
            <td style="padding: 8px 0; color: #E8E8E8; font-size: 14px;"><a href="{{.MailTo}}" style="color: #2567E1; text-decoration: none;">{{.Email}}</a></td>
          </tr>
          <tr>
            <td style="padding: 8px 0; color: #8C8C8C; font-size: 13px; font-weight: 600;">{{.Locale.SubjectLabel}}</td>
            <td style="padding: 8px 0; color: #E8E8E8; font-size: 14px;">{{.SubjectLabel}}</td>
          </tr>
          <tr>
            <td style="padding: 8px 0; color: #8C8C8C; font-size: 13px; font-weight: 600;">{{.Locale.LanguageLabel}}:</td>
            <td style="padding: 8px 0; color: #E8E8E8; font-size: 14px;">{{.Locale.LanguageName}}</td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
  <p style="margin: 0 0 12px; font-size: 14px; font-weight: 600; color: #E8E8E8;">{{.Locale.MessageLabel}}</p>
  <div style="padding: 16px; background-color: #1F2937; border-radius: 8px; border: 1px solid #2D3748; color: #E8E8E8; font-size: 14px; line-height: 1.6;">{{.MessageHTML}}</div>
  <p style="margin: 24px 0 0; padding-top: 24px; border-top: 1px solid #2D3748; font-size: 12px; color: #8C8C8C; text-align: center;">{{.Locale.LeadNote}}</p>
</div>`

const confirmationContentTemplate = `<div style="color: #E8E8E8;">
  <p style="margin: 0 0 20px; font-size: 16px; line-height: 1.6; color: #E8E8E8;">{{.Locale.Greeting}} {{.Name}},</p>
  <p style="margin: 0 0 20px; font-size: 15px; line-height: 1.6; color: #E8E8E8;">{{.Locale.ConfirmationBody}}</p>
  <div style="padding: 16px; background-color: #1F2937; border-radius: 8px; border: 1px solid #2D3748; margin: 20px 0;">
    <p style="margin: 0 0 8px; font-size: 13px; font-weight: 600; color: #8C8C8C; text-transform: uppercase; letter-spacing: 0.5px;">{{.Locale.YourMessageLabel}}</p>
    <p style="margin: 0; font-size: 14px; line-height: 1.6; color: #E8E8E8;">{{.MessageHTML}}</p>
  </div>
  <p style="margin: 24px 0 0; font-size: 14px; line-height: 1.6; color: #E8E8E8;">{{.Locale.Closing}}<br>{{.Locale.TeamSignature}}</p>
</div>`

const leadTextTemplate = `
{{.Locale.LeadIntro}}

{{.Locale.NameLabel}} {{.Name}}
{{.Locale.EmailLabel}} {{.Email}}
{{.Locale.SubjectLabel}} {{.SubjectLabel}}
{{.Locale.LanguageLabel}}: {{.Locale.LanguageName}}

{{.Locale.MessageLabel}}
{{.Message}}

---
{{.Locale.LeadNote}}
`

const confirmationTextTemplate = `
{{.Locale.Greeting}} {{.Name}},

{{.Locale.ConfirmationBody}}

{{.Locale.YourMessageLabel}}
{{.Message}}

{{.Locale.Closing}}
{{.Locale.TeamSignature}}
`

var (
	leadContent         = template.Must(template.New("lead").Parse(leadContentTemplate))
	confirmationContent = template.Must(template.New("confirmation").Parse(confirmationContentTemplate))
	leadText            = texttemplate.Must(texttemplate.New("lead_text").Parse(leadTextTemplate))
	confirmationText    = texttemplate.Must(texttemplate.New("confirmation_text").Parse(confirmationTextTemplate))
)

func newContactView(req *domain.ContactRequest, locale domain.Locale, subjectLabel string) contactView {
	return contactView{
		Locale:       locale,
		Name:         req.Name,
		Email:        req.Email,
		MailTo:       template.URL("mailto:" + req.Email),
		SubjectLabel: subjectLabel,
		Message:      req.Message,
		MessageHTML:  email.MultilineHTML(req.Message),
	}
}

// renderLeadEmail builds the company notification bodies.
func renderLeadEmail(view contactView) (renderedEmail, error) {
	return renderEmail(view, leadContent, leadText, email.Layout{
		Lang:    string(view.Locale.Tag),
		Title:   leadTitle,
		Heading: leadHeading,
		Footer:  view.Locale.Footer,
	})
}

// renderConfirmationEmail builds the submitter confirmation bodies.
func renderConfirmationEmail(view contactView) (renderedEmail, error) {
	return renderEmail(view, confirmationContent, confirmationText, email.Layout{
		Lang:    string(view.Locale.Tag),
		Title:   view.Locale.ConfirmationTitle,
		Heading: view.Locale.ConfirmationHeading,
		Footer:  view.Locale.Footer,
	})
}

func renderEmail(view contactView, content *template.Template, text *texttemplate.Template, shell email.Layout) (renderedEmail, error) {
	var fragment bytes.Buffer
	if err := content.Execute(&fragment, view); err != nil {
		return renderedEmail{}, fmt.Errorf("failed to execute %s template: %w", content.Name(), err)
	}
	shell.Content = template.HTML(fragment.String())

	html, err := email.RenderLayout(shell)
	if err != nil {
		return renderedEmail{}, err
	}

	var plain bytes.Buffer
	if err := text.Execute(&plain, view); err != nil {
		return renderedEmail{}, fmt.Errorf("failed to execute %s template: %w", text.Name(), err)
	}

	return renderedEmail{
		HTML: html,
		Text: strings.TrimSpace(plain.String()),
	}, nil
}
