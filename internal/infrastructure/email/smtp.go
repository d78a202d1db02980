package email

import (
	"context"
	"errors"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/usecases"
	"github.com/ecobarangay/wasteops/internal/shared/biztime"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

// ErrEmailServiceNotConfigured is returned when no SMTP host is set.
var ErrEmailServiceNotConfigured = errors.New("email service not configured")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPEmailService sends assignment notices over SMTP.
type SMTPEmailService struct {
	config SMTPConfig
	sender sender
}

var _ usecases.AssignmentNotifier = (*SMTPEmailService)(nil)

func NewSMTPEmailService(config SMTPConfig) (*SMTPEmailService, error) {
	if config.Host == "" {
		return nil, ErrEmailServiceNotConfigured
	}
	return &SMTPEmailService{
		config: config,
		sender: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

func (s *SMTPEmailService) NotifyAssignment(ctx context.Context, n usecases.AssignmentNotice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	verb := "assigned to you"
	if n.Reassigned {
		verb = "reassigned to you"
	}
	subject := fmt.Sprintf("Maintenance ticket #%d %s", n.TicketID, verb)

	due := "not set"
	if !n.DueDate.IsZero() {
		due = biztime.FormatDate(n.DueDate)
	}
	priority := n.Priority
	if priority == "" {
		priority = "not set"
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hi %s,</p>
			<p>Maintenance ticket <strong>#%d %s</strong> has been %s.</p>
			<p>Priority: %s<br/>Due date: %s</p>
			<p>Mark it on-going once work has started.</p>
		</body>
		</html>
	`, html.EscapeString(n.AssigneeName), n.TicketID, html.EscapeString(n.TicketTitle), verb,
		html.EscapeString(priority), due)

	plainBody := fmt.Sprintf(`
Hi %s,

Maintenance ticket #%d %s has been %s.

Priority: %s
Due date: %s

Mark it on-going once work has started.
	`, n.AssigneeName, n.TicketID, n.TicketTitle, verb, priority, due)

	return s.sendEmail(n.AssigneeEmail, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// NoopNotifier drops notices. Used when email is disabled.
type NoopNotifier struct {
	logger logger.Interface
}

func NewNoopNotifier(log logger.Interface) *NoopNotifier {
	return &NoopNotifier{logger: log}
}

func (n *NoopNotifier) NotifyAssignment(_ context.Context, notice usecases.AssignmentNotice) error {
	n.logger.Debugw("email disabled, assignment notice dropped", "ticket_id", notice.TicketID)
	return nil
}
