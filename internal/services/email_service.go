package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// EmailService mails the upload summary to the configured recipients after
// a batch finishes. Failures are logged by the caller and never fail the
// upload request.
type EmailService struct {
	dialer     *gomail.Dialer
	from       string
	recipients []string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string, recipients []string) *EmailService {
	return &EmailService{
		dialer:     gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:       fromEmail,
		recipients: recipients,
	}
}

func (s *EmailService) SendUploadSummary(fileName string, summary *UploadSummary) error {
	if len(s.recipients) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.recipients...)
	m.SetHeader("Subject", fmt.Sprintf("Lead upload processed: %s", fileName))

	body := fmt.Sprintf(`
		<h3>Upload %s processed (batch #%d)</h3>
		<ul>
			<li>Rows in file: %d</li>
			<li>Leads processed: %d</li>
			<li>Duplicates: %d</li>
			<li>Errors: %d</li>
			<li>Matched in customer profiles: %d</li>
		</ul>
	`, fileName, summary.BatchID, summary.TotalRows, summary.ProcessedLeads,
		summary.Duplicates, summary.Errors, summary.MatchedLeads)

	if len(summary.ErrorMessages) > 0 {
		body += "<p>Errors:</p><pre>" + strings.Join(summary.ErrorMessages, "\n") + "</pre>"
	}
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send upload summary: %w", err)
	}
	return nil
}
