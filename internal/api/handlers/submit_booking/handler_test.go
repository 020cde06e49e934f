package submit_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultly/booking-service/internal/api/handlers"
	submitBooking "github.com/consultly/booking-service/internal/usecase/submit_booking"
)

type fakeUseCase struct {
	resp *submitBooking.Response
	err  error
	got  *submitBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &submitBooking.Response{
		ID:          42,
		Name:        "Ada",
		Email:       "ada@example.com",
		Date:        "2999-01-01",
		Time:        "10:00",
		MeetingID:   "abc123def456",
		MeetingLink: "https://meet.jit.si/ConsultationRoom-abc123def456",
		Status:      "confirmed",
		Message:     "Booking confirmed! Check your email for the meeting link.",
		CreatedAt:   time.Now(),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"name":"Ada","email":"ada@example.com","date":"2999-01-01","time":"10:00"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp SubmitBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, "confirmed", resp.Booking.Status)
	assert.NotEmpty(t, resp.Message)

	require.NotNil(t, uc.got)
	assert.Equal(t, "ada@example.com", uc.got.Email)
}

func TestHandle_InvalidJSON(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"name": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got, "use case must not run on malformed body")
}

func TestHandle_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		ucErr   error
		wantMsg string
	}{
		{"missing fields", submitBooking.ErrMissingFields, msgMissingFields},
		{"invalid email", submitBooking.ErrInvalidEmail, msgInvalidEmail},
		{"invalid datetime", submitBooking.ErrInvalidDatetime, msgInvalidDatetime},
		{"past datetime", submitBooking.ErrPastDatetime, msgPastDatetime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tc.ucErr}, nopLogger{})

			rec := doRequest(t, h, `{"name":"Ada","email":"x","date":"2999-01-01","time":"10:00"}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantMsg, resp.Error)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: submitBooking.ErrInternal}, nopLogger{})

	rec := doRequest(t, h, `{"name":"Ada","email":"ada@example.com","date":"2999-01-01","time":"10:00"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgCreateFailed, resp.Error)
	assert.NotEmpty(t, resp.Details)
}

func TestHandle_AllocationError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: submitBooking.ErrMeetingAllocation}, nopLogger{})

	rec := doRequest(t, h, `{"name":"Ada","email":"ada@example.com","date":"2999-01-01","time":"10:00"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
