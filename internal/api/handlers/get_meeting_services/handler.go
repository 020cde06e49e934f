package get_meeting_services

import (
	"net/http"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/meetings"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/meeting-services
// Статический каталог сторонних сервисов видеосвязи
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, meetings.AlternativeServices())
}
