package dto

type CreateBookingRequest struct {
	Service       string `json:"service" binding:"required"`
	BookingDate   string `json:"booking_date" binding:"required"`
	BookingTime   string `json:"booking_time" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
}
