package domain

import "time"

// DateLayout is the wire format for booking dates (ISO 8601, date only).
const DateLayout = "2006-01-02"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID            int64         `json:"id"`
	Service       string        `json:"service"`
	BookingDate   string        `json:"booking_date"`
	BookingTime   string        `json:"booking_time"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Status        BookingStatus `json:"status"`
	CancelToken   string        `json:"cancel_token"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	Service       string
	BookingDate   string
	BookingTime   string
	CustomerName  string
	CustomerPhone string
}

// CancelResult is the typed outcome of a cancellation. Cancelling a booking
// that is already cancelled is a terminal no-op, not a failure.
type CancelResult struct {
	Booking          *Booking
	AlreadyCancelled bool
}
