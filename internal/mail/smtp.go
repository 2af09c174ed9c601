package mail

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPMailer delivers notification emails over plain SMTP. When the SMTP
// configuration is incomplete the mailer runs disabled and drops everything,
// so local setups work without a mail server.
type SMTPMailer struct {
	cfg     Config
	enabled bool
}

var _ domain.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg Config) *SMTPMailer {
	enabled := cfg.Host != "" && cfg.Port != "" && cfg.Username != "" && cfg.Password != "" && cfg.From != ""
	if !enabled {
		logrus.Warn("SMTP mailer disabled: missing SMTP environment variables")
	}
	return &SMTPMailer{
		cfg:     cfg,
		enabled: enabled,
	}
}

func (m *SMTPMailer) Send(subject, body string, recipients []string) error {
	if !m.enabled || len(recipients) == 0 {
		return nil
	}

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n\r\n%s",
		strings.Join(recipients, ","), m.cfg.From, subject, body))

	if err := smtp.SendMail(addr, auth, m.cfg.From, recipients, msg); err != nil {
		logrus.Errorf("failed to send email to %v: %v", recipients, err)
		return err
	}
	return nil
}
