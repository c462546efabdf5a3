package services

import (
	"fmt"
	"log"
	"strings"

	"debt_flow_app_go/config"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// BreachDigestEmailData carries the figures for an SLA breach digest
type BreachDigestEmailData struct {
	BreachCount int
	SweptAt     string
}

// BuildBreachDigestEmail builds the notification sent to operations
// after an SLA sweep marks new breaches
func BuildBreachDigestEmail(toEmail string, data BreachDigestEmailData) *Email {
	text := fmt.Sprintf(
		"SLA sweep at %s marked %d action(s) as breached.\n\nReview the actions page for details.",
		data.SweptAt, data.BreachCount,
	)
	html := fmt.Sprintf(
		"<p>SLA sweep at %s marked <strong>%d</strong> action(s) as breached.</p><p>Review the actions page for details.</p>",
		data.SweptAt, data.BreachCount,
	)

	return &Email{
		To:       []string{toEmail},
		Subject:  fmt.Sprintf("[FedRecovX] %d new SLA breach(es)", data.BreachCount),
		HTMLBody: html,
		TextBody: text,
	}
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	// Validate configuration
	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}
	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("%s\n", separator)
}
