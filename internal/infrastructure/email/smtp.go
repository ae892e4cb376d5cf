package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/folio-hq/folio/internal/shared/config"
)

// Mailer sends transactional messages to account holders.
type Mailer interface {
	SendWelcome(to WelcomeMessage) error
}

type WelcomeMessage struct {
	Email             string
	FullName          string
	SiteURL           string
	VerificationToken string
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string
}

func SMTPConfigFrom(cfg *config.EmailConfig, baseURL string) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		BaseURL:     baseURL,
	}
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	config SMTPConfig
	dialer sender
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (s *SMTPMailer) SendWelcome(msg WelcomeMessage) error {
	return s.send(s.welcomeMessage(msg))
}

func (s *SMTPMailer) welcomeMessage(msg WelcomeMessage) *gomail.Message {
	name := msg.FullName
	if name == "" {
		name = "there"
	}
	verifyURL := fmt.Sprintf("%s/api/auth/verify-email?token=%s", s.config.BaseURL, msg.VerificationToken)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to Folio, %s!</h2>
			<p>Your site is live at <a href="%s">%s</a>.</p>
			<p>Please confirm your email address:</p>
			<p><a href="%s">Verify Email Address</a></p>
			<p>If you didn't create an account, please ignore this email.</p>
		</body>
		</html>
	`, name, msg.SiteURL, msg.SiteURL, verifyURL)

	plainBody := fmt.Sprintf(`
Welcome to Folio, %s!

Your site is live at %s

Please confirm your email address by visiting:
%s

If you didn't create an account, please ignore this email.
	`, name, msg.SiteURL, verifyURL)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", msg.Email)
	m.SetHeader("Subject", "Welcome to Folio")
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}

func (s *SMTPMailer) send(m *gomail.Message) error {
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// NopMailer is used when email is disabled.
type NopMailer struct{}

func (NopMailer) SendWelcome(WelcomeMessage) error { return nil }
