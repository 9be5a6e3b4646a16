package domain

import "encoding/json"

// Language is the tag of a supported email language.
type Language string

const (
	English Language = "en"
	German  Language = "de"
)

// RequestedLanguage is the raw language field of a submission.
// Non-string JSON values decode to empty instead of failing the request.
type RequestedLanguage string

func (l *RequestedLanguage) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*l = ""
		return nil
	}
	*l = RequestedLanguage(s)
	return nil
}

// ResolveLanguage maps the submitted language field to a supported language.
// Only "de" selects German; empty and unknown values fall back to English.
func ResolveLanguage(s string) Language {
	if Language(s) == German {
		return German
	}
	return English
}

// Locale holds every user-facing string of the contact emails for one language.
type Locale struct {
	Tag Language

	// Shared
	LanguageLabel string
	LanguageName  string
	Footer        string

	// Lead notification (company inbox)
	LeadIntro    string
	NameLabel    string
	EmailLabel   string
	SubjectLabel string
	MessageLabel string
	LeadNote     string

	// Confirmation (submitter)
	ConfirmationSubject string
	ConfirmationTitle   string
	ConfirmationHeading string
	Greeting            string
	ConfirmationBody    string
	YourMessageLabel    string
	Closing             string
	TeamSignature       string
}

// Locales is the lookup table used by the email renderer.
var Locales = map[Language]Locale{
	English: {
		Tag:                 English,
		LanguageLabel:       "Language",
		LanguageName:        "English",
		Footer:              "InboxOps – Email-first ticketing for freelancers & small businesses",
		LeadIntro:           "New contact form submission from InboxOps website:",
		NameLabel:           "Name:",
		EmailLabel:          "Email:",
		SubjectLabel:        "Subject:",
		MessageLabel:        "Message:",
		LeadNote:            "This email was sent from the InboxOps contact form.",
		ConfirmationSubject: "Thank You for Your Message – InboxOps",
		ConfirmationTitle:   "Thank You for Your Message!",
		ConfirmationHeading: "Thank You!",
		Greeting:            "Hello",
		ConfirmationBody:    "thank you for contacting InboxOps! We have received your message and will get back to you as soon as possible.",
		YourMessageLabel:    "Your message:",
		Closing:             "Best regards,",
		TeamSignature:       "The InboxOps Team",
	},
	German: {
		Tag:                 German,
		LanguageLabel:       "Sprache",
		LanguageName:        "Deutsch",
		Footer:              "InboxOps – Email-first Ticketing für Freelancer & KMUs",
		LeadIntro:           "Neue Kontaktformular-Anfrage von der InboxOps-Website:",
		NameLabel:           "Name:",
		EmailLabel:          "E-Mail:",
		SubjectLabel:        "Betreff:",
		MessageLabel:        "Nachricht:",
		LeadNote:            "Diese E-Mail wurde über das InboxOps-Kontaktformular gesendet.",
		ConfirmationSubject: "Vielen Dank für deine Nachricht – InboxOps",
		ConfirmationTitle:   "Vielen Dank für deine Nachricht!",
		ConfirmationHeading: "Vielen Dank!",
		Greeting:            "Hallo",
		ConfirmationBody:    "vielen Dank, dass du dich bei InboxOps gemeldet hast! Wir haben deine Nachricht erhalten und werden uns so schnell wie möglich bei dir melden.",
		YourMessageLabel:    "Deine Nachricht:",
		Closing:             "Beste Grüße,",
		TeamSignature:       "Das InboxOps Team",
	},
}

// LocaleFor returns the strings for lang, defaulting to English.
func LocaleFor(lang Language) Locale {
	if l, ok := Locales[lang]; ok {
		return l
	}
	return Locales[English]
}
