package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, service, booking_date, booking_time, customer_name,
		customer_phone, status, cancel_token, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var date time.Time
	if err := row.Scan(
		&b.ID, &b.Service, &date, &b.BookingTime, &b.CustomerName,
		&b.CustomerPhone, &b.Status, &b.CancelToken, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.BookingDate = date.Format(domain.DateLayout)
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	// Частичный уникальный индекс по (booking_date, booking_time) для
	// активных записей сериализует конкурентов на один слот.
	query := `INSERT INTO bookings
			(service, booking_date, booking_time, customer_name, customer_phone, status, cancel_token, created_at, updated_at)
			VALUES ($1, $2::date, $3, $4, $5, $6, $7, now(), now())
			RETURNING id, created_at, updated_at`

	err := r.db.Master.QueryRowContext(
		ctx, query,
		b.Service, b.BookingDate, b.BookingTime,
		b.CustomerName, b.CustomerPhone, b.Status, b.CancelToken,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  ORDER BY booking_date, booking_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// BookedTimes returns the slot labels already held by active bookings on
// the given date.
func (r *BookingRepository) BookedTimes(ctx context.Context, date string) ([]string, error) {
	query := `SELECT booking_time
			  FROM bookings
			  WHERE booking_date = $1::date AND status = $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, domain.BookingStatusActive)
	if err != nil {
		return nil, fmt.Errorf("booked times: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var t string
		if err = rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan booked time: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *BookingRepository) GetByToken(ctx context.Context, token string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE cancel_token = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return nil, fmt.Errorf("get booking by token: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// CancelByID moves an active booking to cancelled. The status guard in the
// UPDATE keeps the transition one-way; a booking that is already cancelled
// is returned alongside domain.ErrAlreadyCancelled.
func (r *BookingRepository) CancelByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.Master.QueryRowContext(
		ctx, query, id, domain.BookingStatusCancelled, domain.BookingStatusActive,
	))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("cancel booking by id: %w", err)
	}

	existing, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return existing, domain.ErrAlreadyCancelled
}

// CancelByToken is CancelByID for the public cancellation link.
func (r *BookingRepository) CancelByToken(ctx context.Context, token string) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE cancel_token = $1 AND status = $3
			  RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.Master.QueryRowContext(
		ctx, query, token, domain.BookingStatusCancelled, domain.BookingStatusActive,
	))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("cancel booking by token: %w", err)
	}

	existing, getErr := r.GetByToken(ctx, token)
	if getErr != nil {
		return nil, getErr
	}
	return existing, domain.ErrAlreadyCancelled
}
