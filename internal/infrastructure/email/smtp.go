package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/shared/config"
)

type SMTPEmailService struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendTicketResolvedEmail(to, recipientName, ticketSubject, reply string) error {
	subject := fmt.Sprintf("Your ticket has been resolved: %s", ticketSubject)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your ticket has been resolved</h2>
			<p>Hi %s,</p>
			<p>A support agent replied to your ticket <strong>%s</strong>:</p>
			<blockquote>%s</blockquote>
			<p>If this did not solve your problem, reply on the ticket and it will be reopened for review.</p>
		</body>
		</html>
	`, recipientName, ticketSubject, reply)

	plainBody := fmt.Sprintf(`
Hi %s,

A support agent replied to your ticket "%s":

%s

If this did not solve your problem, reply on the ticket and it will be reopened for review.
	`, recipientName, ticketSubject, reply)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
