package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/consultly/booking-service/internal/domain"
)

type capturingSender struct {
	messages []*gomail.Message
	err      error
}

func (s *capturingSender) DialAndSend(m ...*gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, m...)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:          7,
		Name:        "Ada",
		Email:       "ada@example.com",
		Date:        "2025-10-15",
		Time:        "10:00",
		MeetingAt:   time.Date(2025, 10, 15, 10, 0, 0, 0, time.Local),
		MeetingLink: "https://meet.jit.si/ConsultationRoom-abc123def456",
		Status:      domain.StatusConfirmed,
	}
}

func newTestNotifier(sender MailSender) *EmailNotifier {
	return &EmailNotifier{
		sender: sender,
		from:   "noreply@consultly.app",
		logger: nopLogger{},
	}
}

func TestNewEmailNotifier_WithoutCredentialsSkips(t *testing.T) {
	n := NewEmailNotifier(SMTPOptions{Host: "smtp.gmail.com", Port: 587}, nopLogger{}, nil)
	assert.False(t, n.Configured())

	result, err := n.SendConfirmation(context.Background(), testBooking())
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Empty(t, result.MessageID)
}

func TestNewEmailNotifier_WithCredentials(t *testing.T) {
	n := NewEmailNotifier(SMTPOptions{
		Host:     "smtp.gmail.com",
		Port:     587,
		User:     "bot@consultly.app",
		Password: "secret",
	}, nopLogger{}, nil)

	assert.True(t, n.Configured())
}

func TestSendConfirmation(t *testing.T) {
	sender := &capturingSender{}
	n := newTestNotifier(sender)

	result, err := n.SendConfirmation(context.Background(), testBooking())
	require.NoError(t, err)

	assert.False(t, result.Skipped)
	assert.NotEmpty(t, result.MessageID)

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, []string{"ada@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{confirmationSubject}, msg.GetHeader("Subject"))
}

func TestSendReminder_SubjectCarriesLead(t *testing.T) {
	sender := &capturingSender{}
	n := newTestNotifier(sender)

	_, err := n.SendReminder(context.Background(), testBooking())
	require.NoError(t, err)

	require.Len(t, sender.messages, 1)
	subject := sender.messages[0].GetHeader("Subject")
	require.Len(t, subject, 1)
	assert.Contains(t, subject[0], "10 minutes")
}

func TestSend_TransportFailure(t *testing.T) {
	sender := &capturingSender{err: errors.New("dial tcp: connection refused")}
	n := newTestNotifier(sender)

	_, err := n.SendConfirmation(context.Background(), testBooking())
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestSend_CancelledContext(t *testing.T) {
	sender := &capturingSender{}
	n := newTestNotifier(sender)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n.SendConfirmation(ctx, testBooking())
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Empty(t, sender.messages)
}

func TestRenderTemplates(t *testing.T) {
	b := testBooking()

	confirmation, err := renderTemplate(confirmationTmpl, b)
	require.NoError(t, err)
	assert.Contains(t, confirmation, "Hello Ada")
	assert.Contains(t, confirmation, b.MeetingLink)
	assert.Contains(t, confirmation, "2025-10-15")
	assert.Contains(t, confirmation, "60 minutes")

	reminder, err := renderTemplate(reminderTmpl, b)
	require.NoError(t, err)
	assert.Contains(t, reminder, "starts in 10 minutes")
	assert.Contains(t, reminder, b.MeetingLink)
}

func TestRenderTemplates_EscapesHTML(t *testing.T) {
	b := testBooking()
	b.Name = "<script>alert(1)</script>"

	body, err := renderTemplate(confirmationTmpl, b)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.True(t, strings.Contains(body, "&lt;script&gt;"))
}
