package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"name",
	"email",
	"meeting_date",
	"meeting_time",
	"meeting_at",
	"meeting_id",
	"meeting_link",
	"status",
	"reminder_sent",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование и возвращает его с присвоенным id.
// Ссылка на встречу к этому моменту уже должна быть назначена провайдером.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"name",
			"email",
			"meeting_date",
			"meeting_time",
			"meeting_at",
			"meeting_id",
			"meeting_link",
			"status",
			"reminder_sent",
		).
		Values(
			booking.Name,
			booking.Email,
			booking.Date,
			booking.Time,
			booking.MeetingAt,
			booking.MeetingID,
			booking.MeetingLink,
			booking.Status,
			booking.ReminderSent,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListAll получает все бронирования, новые встречи первыми
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("meeting_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListDueForReminder получает подтвержденные бронирования, попавшие в окно
// напоминания (now, now + lead], по которым напоминание еще не отправлялось.
// Порядок не гарантируется - планировщик обрабатывает записи независимо.
func (r *Repository) ListDueForReminder(ctx context.Context, now time.Time, lead time.Duration) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Gt{"meeting_at": now}).
		Where(squirrel.LtOrEq{"meeting_at": now.Add(lead)}).
		Where(squirrel.Eq{"reminder_sent": false}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDueForReminder - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDueForReminder - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// MarkReminderSent выставляет флаг reminder_sent.
// Guard в WHERE гарантирует переход false -> true не более одного раза даже
// при конкурирующих обновлениях. Отсутствие строки (или уже выставленный флаг)
// не считается ошибкой - операция идемпотентна по намерению.
func (r *Repository) MarkReminderSent(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("reminder_sent", true).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"reminder_sent": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkReminderSent - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в бронирование
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Email,
		&booking.Date,
		&booking.Time,
		&booking.MeetingAt,
		&booking.MeetingID,
		&booking.MeetingLink,
		&booking.Status,
		&booking.ReminderSent,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
