package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type Booking struct {
	ID          int
	Reference   uuid.UUID
	CustomerID  int
	ShowtimeID  int
	BookingTime time.Time
	Status      BookingStatus
}

// BookingSeat freezes the price paid for one seat at booking time. The price
// never changes afterwards, even if the showtime's base price does.
type BookingSeat struct {
	ID                 int
	BookingID          int
	SeatID             int
	SeatPriceAtBooking decimal.Decimal
	RowLabel           string
	SeatNumber         int
	SeatType           string
}

type BookingSummary struct {
	BookingID     int
	Reference     uuid.UUID
	CustomerName  string
	MovieTitle    string
	ShowtimeStart time.Time
	Status        BookingStatus
	BookingTime   time.Time
}

type BookingDetail struct {
	BookingID     int
	Reference     uuid.UUID
	Status        BookingStatus
	BookingTime   time.Time
	CustomerName  string
	CustomerEmail string
	MovieTitle    string
	HallName      string
	ShowtimeStart time.Time
	BasePrice     decimal.Decimal
	Seats         []BookingSeat
	TotalPrice    decimal.Decimal
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking, seatIDs []int) error
	GetAvailableSeats(ctx context.Context, showtimeID int) ([]Seat, error)
	GetBookingWithDetails(ctx context.Context, bookingID int) (*BookingDetail, error)
	GetAll(ctx context.Context, pagination Pagination) ([]BookingSummary, *Metadata, error)
	Cancel(ctx context.Context, bookingID int) error
	Delete(ctx context.Context, bookingID int) error
}
