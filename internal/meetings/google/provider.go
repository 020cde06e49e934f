package google

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/internal/meetings"
	"github.com/consultly/booking-service/internal/meetings/simple"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Provider провайдер встреч на основе Google Calendar: для каждого бронирования
// создается событие в календаре с подключенной Google Meet конференцией.
// Lookup делегируется детерминированному генератору, чтобы ссылку на комнату
// можно было восстановить без обращения к Calendar API.
type Provider struct {
	service    *calendar.Service
	calendarID string
	fallback   *simple.Generator
	logger     Logger
}

// Options настройки подключения к Google Calendar
type Options struct {
	ClientID     string
	ClientSecret string
	TokenFile    string
	CalendarID   string
}

// NewProvider создает провайдер на основе Google Calendar.
// Токен должен быть получен заранее (OAuth flow выполняется отдельно),
// сервис только читает его из файла.
func NewProvider(ctx context.Context, opts Options, logger Logger) (*Provider, error) {
	if opts.ClientID == "" || opts.ClientSecret == "" {
		return nil, fmt.Errorf("google: client credentials are not configured")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     googleoauth.Endpoint,
	}

	token, err := tokenFromFile(opts.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("google: could not load token from %s: %w", opts.TokenFile, err)
	}

	service, err := calendar.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("google: failed to create calendar service: %w", err)
	}

	calendarID := opts.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	return &Provider{
		service:    service,
		calendarID: calendarID,
		fallback:   simple.NewGenerator(),
		logger:     logger,
	}, nil
}

// CreateMeeting создает событие в календаре с Google Meet конференцией
func (p *Provider) CreateMeeting(ctx context.Context, name, email string, meetingAt time.Time) (*meetings.Meeting, error) {
	event := &calendar.Event{
		Summary:     fmt.Sprintf("Consultation with %s", name),
		Description: "Free consultation booked through the booking widget.",
		Start: &calendar.EventDateTime{
			DateTime: meetingAt.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: meetingAt.Add(domain.MeetingDurationMinutes * time.Minute).Format(time.RFC3339),
		},
		Attendees: []*calendar.EventAttendee{
			{Email: email},
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := p.service.Events.Insert(p.calendarID, event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		p.logger.Error("CreateMeeting: calendar insert failed for %s: %v", email, err)
		return nil, fmt.Errorf("%w: calendar insert: %v", meetings.ErrCreateFailed, err)
	}

	link := created.HangoutLink
	if link == "" {
		p.logger.Error("CreateMeeting: event %s created without a meet link", created.Id)
		return nil, fmt.Errorf("%w: event has no conference link", meetings.ErrCreateFailed)
	}

	p.logger.Info("CreateMeeting: calendar event %s created for %s", created.Id, email)

	return &meetings.Meeting{
		ID:       created.Id,
		Link:     link,
		RoomName: event.Summary,
	}, nil
}

// Lookup восстанавливает описание встречи по идентификатору
func (p *Provider) Lookup(meetingID string) (*meetings.Meeting, error) {
	return p.fallback.Lookup(meetingID)
}

// tokenFromFile читает OAuth токен из локального файла
func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}
