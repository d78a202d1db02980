package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/usecases"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

type captureSender struct {
	messages []*gomail.Message
	err      error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	c.messages = append(c.messages, m...)
	return c.err
}

func newTestService(sender sender) *SMTPEmailService {
	return &SMTPEmailService{
		config: SMTPConfig{Host: "smtp.test", Port: 25, FromAddress: "ops@barangay.test", FromName: "Barangay Ops"},
		sender: sender,
	}
}

func TestNotifyAssignment(t *testing.T) {
	capture := &captureSender{}
	svc := newTestService(capture)

	err := svc.NotifyAssignment(context.Background(), usecases.AssignmentNotice{
		TicketID:      12,
		TicketTitle:   "Broken compactor",
		AssigneeName:  "Ana",
		AssigneeEmail: "ana@barangay.test",
		DueDate:       time.Date(2026, 3, 5, 16, 0, 0, 0, time.UTC),
		Reassigned:    true,
	})
	require.NoError(t, err)
	require.Len(t, capture.messages, 1)

	m := capture.messages[0]
	assert.Equal(t, []string{"ana@barangay.test"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Maintenance ticket #12 reassigned to you"}, m.GetHeader("Subject"))
}

func TestNotifyAssignment_SendFailure(t *testing.T) {
	svc := newTestService(&captureSender{err: errors.New("connection refused")})

	err := svc.NotifyAssignment(context.Background(), usecases.AssignmentNotice{TicketID: 1, AssigneeEmail: "a@b.test"})
	assert.ErrorContains(t, err, "failed to send email")
}

func TestNewSMTPEmailService_RequiresHost(t *testing.T) {
	_, err := NewSMTPEmailService(SMTPConfig{})
	assert.ErrorIs(t, err, ErrEmailServiceNotConfigured)
}

func TestNoopNotifier(t *testing.T) {
	n := NewNoopNotifier(logger.NewDiscardLogger())
	assert.NoError(t, n.NotifyAssignment(context.Background(), usecases.AssignmentNotice{TicketID: 1}))
}

type outcomeCounter map[string]int

func (c outcomeCounter) ObserveEmail(outcome string) { c[outcome]++ }

func TestObservedNotifier(t *testing.T) {
	counts := outcomeCounter{}
	notice := usecases.AssignmentNotice{TicketID: 3, AssigneeEmail: "a@b.test"}

	ok := NewObservedNotifier(newTestService(&captureSender{}), counts)
	require.NoError(t, ok.NotifyAssignment(context.Background(), notice))

	failing := NewObservedNotifier(newTestService(&captureSender{err: errors.New("timeout")}), counts)
	require.Error(t, failing.NotifyAssignment(context.Background(), notice))

	assert.Equal(t, outcomeCounter{"sent": 1, "failed": 1}, counts)
}
