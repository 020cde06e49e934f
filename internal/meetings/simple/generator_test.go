package simple

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/internal/meetings"
)

func TestCreateMeeting_Deterministic(t *testing.T) {
	g := NewGenerator()
	meetingAt := time.Date(2999, 1, 1, 10, 0, 0, 0, time.UTC)

	first, err := g.CreateMeeting(context.Background(), "Ada", "ada@example.com", meetingAt)
	require.NoError(t, err)

	second, err := g.CreateMeeting(context.Background(), "Ada", "ada@example.com", meetingAt)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Link, second.Link)
}

func TestCreateMeeting_IDFormat(t *testing.T) {
	g := NewGenerator()

	meeting, err := g.CreateMeeting(context.Background(), "Ada", "ada@example.com", time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Len(t, meeting.ID, domain.MeetingIDLength)
	assert.Regexp(t, "^[a-f0-9]+$", meeting.ID)
	assert.True(t, strings.HasPrefix(meeting.Link, "https://meet.jit.si/ConsultationRoom-"))
	assert.Contains(t, meeting.Link, meeting.ID)
}

func TestCreateMeeting_DifferentInputsDifferentIDs(t *testing.T) {
	g := NewGenerator()
	meetingAt := time.Date(2999, 1, 1, 10, 0, 0, 0, time.UTC)

	base, err := g.CreateMeeting(context.Background(), "Ada", "ada@example.com", meetingAt)
	require.NoError(t, err)

	otherName, err := g.CreateMeeting(context.Background(), "Bob", "ada@example.com", meetingAt)
	require.NoError(t, err)
	assert.NotEqual(t, base.ID, otherName.ID)

	otherEmail, err := g.CreateMeeting(context.Background(), "Ada", "bob@example.com", meetingAt)
	require.NoError(t, err)
	assert.NotEqual(t, base.ID, otherEmail.ID)

	otherTime, err := g.CreateMeeting(context.Background(), "Ada", "ada@example.com", meetingAt.Add(time.Hour))
	require.NoError(t, err)
	assert.NotEqual(t, base.ID, otherTime.ID)
}

func TestLookup_RoundTrip(t *testing.T) {
	g := NewGenerator()

	created, err := g.CreateMeeting(context.Background(), "Ada", "ada@example.com", time.Now().Add(time.Hour))
	require.NoError(t, err)

	found, err := g.Lookup(created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.Link, found.Link)
}

func TestLookup_MalformedID(t *testing.T) {
	g := NewGenerator()

	cases := []string{
		"",
		"short",
		"0123456789abcdef",   // слишком длинный
		"ABCDEF123456",       // верхний регистр
		"0123456789ag",       // не hex
		"../etc/passwd",      // мусор
	}

	for _, id := range cases {
		_, err := g.Lookup(id)
		assert.ErrorIs(t, err, meetings.ErrMeetingNotFound, "id=%q", id)
	}
}
