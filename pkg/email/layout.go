package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Layout parameterises the shared HTML shell of every outgoing email.
type Layout struct {
	Lang    string
	Title   string
	Heading string
	Footer  string
	Content template.HTML
}

// layoutTemplate is the dark card shell shared by lead and confirmation emails
const layoutTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta http-equiv="X-UA-Compatible" content="IE=edge">
  <title>{{.Title}}</title>
</head>
<body style="margin: 0; padding: 0; background-color: #0B1220; font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;">
  <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" style="background-color: #0B1220;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="600" style="max-width: 600px; background-color: #151B28; border-radius: 18px; overflow: hidden; border: 1px solid #1F2937;">
          <tr>
            <td style="padding: 30px 30px 20px; text-align: center; border-bottom: 1px solid #1F2937;">
              <h1 style="margin: 0; font-size: 28px; font-weight: 700; color: #E8E8E8; font-family: 'Space Grotesk', Arial, sans-serif; letter-spacing: -0.5px;">{{.Heading}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 30px;">
{{.Content}}
            </td>
          </tr>
          <tr>
            <td style="padding: 20px 30px; border-top: 1px solid #1F2937; text-align: center; background-color: #0B1220;">
              <p style="margin: 0; font-size: 12px; color: #8C8C8C; line-height: 1.5;">{{.Footer}}</p>
              <p style="margin: 8px 0 0; font-size: 12px; color: #8C8C8C;">
                <a href="https://inboxops.app" style="color: #2567E1; text-decoration: none;">inboxops.app</a>
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

var layout = template.Must(template.New("layout").Parse(layoutTemplate))

// RenderLayout wraps an already rendered content fragment in the shell.
func RenderLayout(l Layout) (string, error) {
	var body bytes.Buffer
	if err := layout.Execute(&body, l); err != nil {
		return "", fmt.Errorf("failed to execute layout template: %w", err)
	}
	return body.String(), nil
}

// MultilineHTML escapes s and turns its line breaks into <br> tags.
func MultilineHTML(s string) template.HTML {
	escaped := template.HTMLEscapeString(strings.ReplaceAll(s, "\r\n", "\n"))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
