package get_meeting

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/meetings"
)

const msgMeetingNotFound = "Meeting not found"

// MeetingResponse HTTP response model
type MeetingResponse struct {
	MeetingID        string            `json:"meeting_id"`
	MeetingLink      string            `json:"meeting_link"`
	RoomName         string            `json:"room_name"`
	AlternativeLinks map[string]string `json:"alternative_links,omitempty"`
	Status           string            `json:"status"`
}

// MeetingLookup интерфейс восстановления встречи по идентификатору
type MeetingLookup interface {
	Lookup(meetingID string) (*meetings.Meeting, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

type Handler struct {
	provider MeetingLookup
	logger   Logger
}

func NewHandler(provider MeetingLookup, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/meeting/{meetingId}
// Описание встречи восстанавливается провайдером без обращения к хранилищу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meetingID := mux.Vars(r)["meetingId"]

	meeting, err := h.provider.Lookup(meetingID)
	if err != nil {
		h.logger.Warn("GET /meeting/{id} - Not found: meeting_id=%q", meetingID)
		handlers.RespondNotFound(w, msgMeetingNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, MeetingResponse{
		MeetingID:        meeting.ID,
		MeetingLink:      meeting.Link,
		RoomName:         meeting.RoomName,
		AlternativeLinks: meeting.AlternativeLinks,
		Status:           "active",
	})
}
