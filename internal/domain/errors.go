package domain

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

var (
	ErrSlotTaken   = errors.New("time slot is already taken")
	ErrClosedDay   = errors.New("day off")
	ErrInvalidSlot = errors.New("time is not available on this date")
	ErrPastDate    = errors.New("booking date is in the past")
)

var (
	ErrValidation = errors.New("validation error")
)
