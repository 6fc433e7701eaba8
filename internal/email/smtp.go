package email

import (
	"context"
	"fmt"
	"html"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface using a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendLeadAlert emails the site owner about a new lead.
func (s *SMTPSender) SendLeadAlert(ctx context.Context, to string, alert LeadAlert) error {
	subject := fmt.Sprintf("New lead from your resume site: %s", alert.Name)
	body := renderLeadAlert(alert)
	return s.send(ctx, to, subject, body)
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func renderLeadAlert(alert LeadAlert) string {
	phone := alert.Phone
	if phone == "" {
		phone = "not provided"
	}
	return fmt.Sprintf(
		`<h2>Someone left their details on your resume site</h2>
<p><strong>Name:</strong> %s<br>
<strong>Email:</strong> %s<br>
<strong>Phone:</strong> %s<br>
<strong>Submitted:</strong> %s</p>`,
		html.EscapeString(alert.Name),
		html.EscapeString(alert.Email),
		html.EscapeString(phone),
		alert.CapturedAt.Format(time.RFC1123),
	)
}
