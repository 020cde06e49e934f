package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultly/booking-service/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		Name:        "Ada",
		Email:       "ada@example.com",
		Date:        "2025-06-01",
		Time:        "10:00",
		MeetingAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local),
		MeetingID:   "abc123def456",
		MeetingLink: "https://meet.jit.si/ConsultationRoom-abc123def456",
		Status:      domain.StatusConfirmed,
	}
}

func bookingRows(b *domain.Booking) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "meeting_date", "meeting_time", "meeting_at",
		"meeting_id", "meeting_link", "status", "reminder_sent", "created_at",
	}).AddRow(
		b.ID, b.Name, b.Email, b.Date, b.Time, b.MeetingAt,
		b.MeetingID, b.MeetingLink, string(b.Status), b.ReminderSent, b.CreatedAt,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := sampleBooking()
	createdAt := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(
			b.Name, b.Email, b.Date, b.Time, b.MeetingAt,
			b.MeetingID, b.MeetingLink, b.Status, false,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	created, err := repo.Create(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := sampleBooking()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), b)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := sampleBooking()
	b.ID = 7
	b.CreatedAt = time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, meeting_date, meeting_time, meeting_at, meeting_id, meeting_link, status, reminder_sent, created_at FROM bookings WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(bookingRows(b))

	got, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, b.Email, got.Email)
	assert.Equal(t, b.MeetingLink, got.MeetingLink)
	assert.Equal(t, b.CreatedAt, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "meeting_date", "meeting_time", "meeting_at",
			"meeting_id", "meeting_link", "status", "reminder_sent", "created_at",
		}))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_ListAll(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := sampleBooking()
	b.ID = 1

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings ORDER BY meeting_at DESC")).
		WillReturnRows(bookingRows(b))

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestRepository_ListAll_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "meeting_date", "meeting_time", "meeting_at",
			"meeting_id", "meeting_link", "status", "reminder_sent", "created_at",
		}))

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got, "empty list serializes as [], not null")
}

func TestRepository_ListDueForReminder(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2025, 6, 1, 9, 52, 0, 0, time.UTC)
	lead := 10 * time.Minute

	b := sampleBooking()
	b.ID = 3
	b.MeetingAt = now.Add(8 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE meeting_at > $1 AND meeting_at <= $2 AND reminder_sent = $3 AND status = $4")).
		WithArgs(now, now.Add(lead), false, domain.StatusConfirmed).
		WillReturnRows(bookingRows(b))

	got, err := repo.ListDueForReminder(context.Background(), now, lead)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
	assert.False(t, got[0].ReminderSent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkReminderSent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET reminder_sent = $1 WHERE id = $2 AND reminder_sent = $3")).
		WithArgs(true, int64(3), false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkReminderSent(context.Background(), 3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkReminderSent_AlreadyMarked(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Флаг уже выставлен: guard в WHERE не находит строку, ошибки нет
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(true, int64(3), false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkReminderSent(context.Background(), 3)
	assert.NoError(t, err)
}

func TestRepository_MarkReminderSent_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WillReturnError(errors.New("connection refused"))

	err := repo.MarkReminderSent(context.Background(), 3)
	assert.ErrorIs(t, err, ErrExecQuery)
}
