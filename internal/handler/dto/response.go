package dto

import (
	"time"

	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
)

type BookingResponse struct {
	ID            int64  `json:"id"`
	Service       string `json:"service"`
	BookingDate   string `json:"booking_date"`
	BookingTime   string `json:"booking_time"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Status        string `json:"status"`
	CancelToken   string `json:"cancel_token"`
	CreatedAt     string `json:"created_at"`
}

// SlotsResponse keeps "closed day" distinct from "no free slots left":
// a closed day reports Closed=true, a fully booked working day reports
// Closed=false with an empty Slots list.
type SlotsResponse struct {
	Date   string   `json:"date"`
	Closed bool     `json:"closed"`
	Slots  []string `json:"slots"`
}

type CancelResponse struct {
	Message          string          `json:"message"`
	AlreadyCancelled bool            `json:"already_cancelled"`
	Booking          BookingResponse `json:"booking"`
}

type ServiceResponse struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Icon        string                `json:"icon"`
	Prices      []domain.ServicePrice `json:"prices"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Service:       b.Service,
		BookingDate:   b.BookingDate,
		BookingTime:   b.BookingTime,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Status:        string(b.Status),
		CancelToken:   b.CancelToken,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToServiceResponse(s domain.Service) ServiceResponse {
	return ServiceResponse{
		Title:       s.Title,
		Description: s.Description,
		Icon:        s.Icon,
		Prices:      s.Prices,
	}
}
