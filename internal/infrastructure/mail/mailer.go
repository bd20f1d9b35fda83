package mail

import (
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"

	"github.com/careercharma/learnhub-api/internal/api/metrics"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

const verificationSubject = "OTP Verification Code"

//go:embed templates/*
var templateFS embed.FS

var (
	htmlTemplate = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/verification.html"))
	textTemplate = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/verification.txt"))
)

type Config struct {
	Host       string
	Port       int
	Secure     bool
	User       string
	Password   string
	From       string
	Simulation bool
	CodeTTL    time.Duration
}

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// SMTPMailer delivers verification codes over SMTP. In simulation mode, or
// without credentials, messages are logged instead of sent.
type SMTPMailer struct {
	from      string
	expiresIn string
	client    sender
	log       zerolog.Logger
}

type templateData struct {
	FullName  string
	Code      string
	ExpiresIn string
}

func NewSMTPMailer(cfg Config, log zerolog.Logger) (*SMTPMailer, error) {
	m := &SMTPMailer{from: cfg.From, expiresIn: humanize(cfg.CodeTTL), log: log}
	if cfg.Simulation || cfg.User == "" || cfg.Password == "" {
		log.Warn().Bool("simulation", cfg.Simulation).Msg("e-mail delivery is simulated")
		return m, nil
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.User),
		gomail.WithPassword(cfg.Password),
		gomail.WithTimeout(15 * time.Second),
	}
	if cfg.Secure {
		opts = append(opts, gomail.WithSSLPort(false))
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	m.client = client
	return m, nil
}

// Simulated reports whether messages are logged instead of delivered.
func (m *SMTPMailer) Simulated() bool { return m.client == nil }

func (m *SMTPMailer) SendVerificationCode(ctx context.Context, v ports.VerificationEmail) error {
	mode := "smtp"
	if m.Simulated() {
		mode = "simulated"
	}

	msg, err := m.buildMessage(v)
	if err != nil {
		metrics.EmailsTotal.WithLabelValues(mode, "error").Inc()
		return err
	}

	if m.Simulated() {
		m.log.Info().
			Str("to", v.To).
			Str("subject", verificationSubject).
			Str("code", v.Code).
			Msg("simulated verification e-mail")
		metrics.EmailsTotal.WithLabelValues(mode, "ok").Inc()
		return nil
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		metrics.EmailsTotal.WithLabelValues(mode, "error").Inc()
		m.log.Error().Err(err).Str("to", v.To).Msg("failed to send verification e-mail")
		return fmt.Errorf("send verification e-mail: %w", err)
	}
	metrics.EmailsTotal.WithLabelValues(mode, "ok").Inc()
	m.log.Info().Str("to", v.To).Msg("verification e-mail sent")
	return nil
}

func (m *SMTPMailer) buildMessage(v ports.VerificationEmail) (*gomail.Msg, error) {
	data := templateData{FullName: v.FullName, Code: v.Code, ExpiresIn: m.expiresIn}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(v.To); err != nil {
		return nil, fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(verificationSubject)
	if err := msg.SetBodyTextTemplate(textTemplate, data); err != nil {
		return nil, fmt.Errorf("mail text body: %w", err)
	}
	if err := msg.AddAlternativeHTMLTemplate(htmlTemplate, data); err != nil {
		return nil, fmt.Errorf("mail html body: %w", err)
	}
	return msg, nil
}

// humanize renders the code lifetime for the mail body ("10 minutes").
func humanize(d time.Duration) string {
	if d <= 0 {
		d = 10 * time.Minute
	}
	if mins := int(d.Minutes()); mins%60 != 0 || mins < 60 {
		if mins == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	hours := int(d.Hours())
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
