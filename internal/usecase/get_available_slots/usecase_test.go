package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func TestExecute_ReturnsHourlySlots(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-15"})
	require.NoError(t, err)

	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00",
	}, resp.AvailableSlots)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	for _, date := range []string{"", "   "} {
		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_InvalidDateFormat(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	for _, date := range []string{"15-10-2025", "2025/10/15", "tomorrow", "2025-13-40"} {
		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput, "date=%q", date)
	}
}

func TestExecute_SlotListIsACopy(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	first, err := uc.Execute(context.Background(), &Request{Date: "2025-10-15"})
	require.NoError(t, err)
	first.AvailableSlots[0] = "00:00"

	second, err := uc.Execute(context.Background(), &Request{Date: "2025-10-15"})
	require.NoError(t, err)
	assert.Equal(t, "09:00", second.AvailableSlots[0], "callers must not mutate the shared slot list")
}
