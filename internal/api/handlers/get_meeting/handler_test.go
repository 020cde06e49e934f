package get_meeting

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/meetings"
	"github.com/consultly/booking-service/internal/meetings/simple"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/meeting/{meetingId}", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_KnownMeeting(t *testing.T) {
	h := NewHandler(simple.NewGenerator(), nopLogger{})
	router := newRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/meeting/abc123def456", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MeetingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc123def456", resp.MeetingID)
	assert.Equal(t, "https://meet.jit.si/ConsultationRoom-abc123def456", resp.MeetingLink)
	assert.Equal(t, "active", resp.Status)
	assert.NotEmpty(t, resp.AlternativeLinks)
}

func TestHandle_MalformedID(t *testing.T) {
	h := NewHandler(simple.NewGenerator(), nopLogger{})
	router := newRouter(h)

	for _, id := range []string{"short", "ABC123DEF456", "zzzzzzzzzzzz"} {
		req := httptest.NewRequest(http.MethodGet, "/api/meeting/"+id, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "id=%q", id)

		var resp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, msgMeetingNotFound, resp.Error)
	}
}

type failingLookup struct{}

func (failingLookup) Lookup(string) (*meetings.Meeting, error) {
	return nil, meetings.ErrMeetingNotFound
}

func TestHandle_LookupFailure(t *testing.T) {
	h := NewHandler(failingLookup{}, nopLogger{})
	router := newRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/meeting/abc123def456", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
