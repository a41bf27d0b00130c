package email

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendWithSendgrid delivers one rendered message through the Sendgrid v3
// API. Sendgrid acknowledges accepted mail with 202; any other status is
// treated as a delivery failure.
func (s *Service) sendWithSendgrid(data EmailData, htmlContent, textContent string) error {
	sender := mail.NewEmail(data.FromName, data.From)
	recipient := mail.NewEmail("", data.To)
	message := mail.NewSingleEmail(sender, data.Subject, recipient, textContent, htmlContent)

	response, err := s.sendgridClient.Send(message)
	if err != nil {
		return fmt.Errorf("sending via sendgrid: %w", err)
	}

	if response.StatusCode != http.StatusAccepted {
		return fmt.Errorf("sendgrid rejected message: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
