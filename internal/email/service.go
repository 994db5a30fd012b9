package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"sync"
	"time"

	"salonbook/internal/config"

	"github.com/rs/zerolog/log"
)

// EmailSender defines the interface for sending emails
type EmailSender interface {
	SendAppointmentReminder(to, customerName, salonName string, startsAt time.Time, loc *time.Location) error
}

// Service implements the EmailSender interface
type Service struct {
	config config.EmailConfig
	client *smtp.Client
	mu     sync.Mutex
}

func NewService(cfg config.EmailConfig) *Service {
	return &Service{
		config: cfg,
		client: nil,
	}
}

// dialSMTP establishes an SMTP connection
func (s *Service) dialSMTP() (*smtp.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Reuse existing connection if it's still alive
	if s.client != nil {
		if err := s.client.Noop(); err == nil {
			return s.client, nil
		}
		// Connection is dead, close it
		s.client.Close()
		s.client = nil
	}

	// Create new connection
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	client, err := smtp.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SMTP server: %w", err)
	}

	if err := client.Auth(smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to authenticate with SMTP server: %w", err)
	}

	s.client = client
	return client, nil
}

// sendMail sends an email using a pooled SMTP connection
func (s *Service) sendMail(to []string, msg []byte) error {
	client, err := s.dialSMTP()
	if err != nil {
		return err
	}

	if err := client.Mail(s.config.SMTPUsername); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			return fmt.Errorf("failed to add recipient %s: %w", addr, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to create message writer: %w", err)
	}

	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close message writer: %w", err)
	}

	return nil
}

// Close closes the SMTP connection
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		err := s.client.Quit()
		s.client = nil
		return err
	}
	return nil
}

// SendAppointmentReminder emails the customer ahead of a confirmed
// appointment. The time is rendered in the salon's timezone.
func (s *Service) SendAppointmentReminder(to, customerName, salonName string, startsAt time.Time, loc *time.Location) error {
	// Validate configuration
	if s.config.SMTPHost == "" || s.config.SMTPPort == 0 || s.config.SMTPUsername == "" ||
		s.config.SMTPPassword == "" || s.config.FromAddress == "" {
		return fmt.Errorf("incomplete email configuration")
	}

	subject := fmt.Sprintf("Reminder: your appointment at %s", salonName)
	localTime := startsAt.In(loc).Format("Monday, January 2 at 3:04 PM")

	tmpl, err := template.New("reminder").Parse(`
		<h2>Hello {{.CustomerName}},</h2>
		<p>This is a reminder of your upcoming appointment at {{.SalonName}}:</p>
		<p><strong>{{.When}}</strong></p>
		<p>If you can no longer make it, please cancel or contact the salon.</p>
	`)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, map[string]string{
		"CustomerName": customerName,
		"SalonName":    salonName,
		"When":         localTime,
	}); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	msg := fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s", to, s.config.FromAddress, subject, body.String())

	log.Debug().Str("to", to).Time("starts_at", startsAt).Msg("sending appointment reminder")
	if err := s.sendMail([]string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	return nil
}
