package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const defaultFromName = "Tounesna"

// sendWithSendgrid sends an email through the Sendgrid v3 API, tagged with
// the template name so deliveries can be grouped per notification kind.
func (s *Service) sendWithSendgrid(data EmailData, htmlContent, textContent string) error {
	if data.From == "" {
		return fmt.Errorf("missing sender email address (From)")
	}
	fromName := data.FromName
	if fromName == "" {
		fromName = defaultFromName
	}

	message := mail.NewSingleEmail(mail.NewEmail(fromName, data.From), data.Subject, mail.NewEmail("", data.To), textContent, htmlContent)
	if data.TemplateName != "" {
		message.AddCategories(data.TemplateName)
	}

	response, err := s.sendgridClient.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via Sendgrid: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("unexpected Sendgrid status code: %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
