package notifier

import (
	"context"
	"fmt"
	"html/template"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/metrics"
)

// SMTPOptions настройки SMTP транспорта
type SMTPOptions struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// MailSender интерфейс отправки письма (для подмены транспорта в тестах)
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailNotifier отправляет письма подтверждения и напоминания через SMTP.
// Если учетные данные не заданы, все операции возвращают результат Skipped
// без ошибки - сервис продолжает работать без почты.
type EmailNotifier struct {
	sender  MailSender // nil, когда почта не сконфигурирована
	from    string
	logger  Logger
	metrics *metrics.Metrics // может быть nil, когда метрики выключены
}

// NewEmailNotifier создает почтовый нотификатор.
// При отсутствии учетных данных пишет предупреждение и работает в режиме no-op.
func NewEmailNotifier(opts SMTPOptions, logger Logger, m *metrics.Metrics) *EmailNotifier {
	if opts.User == "" || opts.Password == "" {
		logger.Warn("EmailNotifier: email configuration missing, email notifications will be disabled")
		return &EmailNotifier{logger: logger, metrics: m}
	}

	from := opts.From
	if from == "" {
		from = opts.User
	}

	return &EmailNotifier{
		sender:  gomail.NewDialer(opts.Host, opts.Port, opts.User, opts.Password),
		from:    from,
		logger:  logger,
		metrics: m,
	}
}

// Configured возвращает true, если транспорт настроен и письма реально отправляются
func (n *EmailNotifier) Configured() bool {
	return n.sender != nil
}

// SendConfirmation отправляет письмо подтверждения бронирования
func (n *EmailNotifier) SendConfirmation(ctx context.Context, booking *domain.Booking) (*Result, error) {
	return n.send(ctx, "confirmation", booking, confirmationSubject, confirmationTmpl)
}

// SendReminder отправляет напоминание о скором начале встречи
func (n *EmailNotifier) SendReminder(ctx context.Context, booking *domain.Booking) (*Result, error) {
	subject := fmt.Sprintf(reminderSubjectFormat, domain.DefaultReminderLeadMinutes)
	return n.send(ctx, "reminder", booking, subject, reminderTmpl)
}

func (n *EmailNotifier) send(ctx context.Context, kind string, booking *domain.Booking, subject string, tmpl *template.Template) (*Result, error) {
	if n.sender == nil {
		n.logger.Warn("EmailNotifier: transport not configured, skipping %s email for booking id=%d", kind, booking.ID)
		n.incMetric(kind, "skipped")
		return &Result{Skipped: true}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s for booking id=%d: %v", ErrSendFailed, kind, booking.ID, err)
	}

	body, err := renderTemplate(tmpl, booking)
	if err != nil {
		n.incMetric(kind, "error")
		return nil, err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", booking.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := n.sender.DialAndSend(msg); err != nil {
		n.incMetric(kind, "error")
		return nil, fmt.Errorf("%w: %s for booking id=%d: %v", ErrSendFailed, kind, booking.ID, err)
	}

	messageID := uuid.NewString()
	n.logger.Info("EmailNotifier: %s email sent to %s for booking id=%d, message_id=%s",
		kind, booking.Email, booking.ID, messageID)
	n.incMetric(kind, "sent")

	return &Result{MessageID: messageID}, nil
}

func (n *EmailNotifier) incMetric(kind, result string) {
	if n.metrics != nil {
		n.metrics.IncNotification(kind, result)
	}
}
