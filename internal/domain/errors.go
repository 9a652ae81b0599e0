package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrSeatAlreadyBooked   = errors.New("seat(s) are already booked for this showtime")
	ErrSeatNotBookable     = errors.New("seat(s) are inactive or do not belong to the showtime's hall")
	ErrDuplicateEmail      = errors.New("a customer with this email already exists")
	ErrDuplicateSeat       = errors.New("a seat with this row and number already exists in the hall")
	ErrShowtimeHasBookings = errors.New("showtime has bookings and cannot be deleted")
)
