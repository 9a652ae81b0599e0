// Package api holds the JSON request and response types of the booking API.
package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type HealthCheckResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type ListParams struct {
	Page     *int `validate:"omitempty,gt=0"`
	PageSize *int `validate:"omitempty,gt=0,lte=100"`
}

type MovieRequest struct {
	Title           string     `json:"title" validate:"required,max=200"`
	Genre           string     `json:"genre" validate:"max=100"`
	DurationMinutes int        `json:"durationMinutes" validate:"required,gt=0"`
	Language        string     `json:"language" validate:"max=100"`
	Rating          string     `json:"rating" validate:"max=20"`
	ReleaseDate     *time.Time `json:"releaseDate,omitempty"`
	Status          string     `json:"status" validate:"max=50"`
}

type MovieResponse struct {
	Id              int        `json:"id"`
	Title           string     `json:"title"`
	Genre           string     `json:"genre"`
	DurationMinutes int        `json:"durationMinutes"`
	Language        string     `json:"language"`
	Rating          string     `json:"rating"`
	ReleaseDate     *time.Time `json:"releaseDate,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type MovieListResponse struct {
	Movies   []MovieResponse `json:"movies"`
	Metadata Metadata        `json:"metadata"`
}

type HallRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`
	Description string `json:"description" validate:"max=500"`
}

type HallResponse struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
}

type HallListResponse struct {
	Halls []HallResponse `json:"halls"`
}

type SeatRequest struct {
	HallId     int    `json:"hallId" validate:"required,gt=0"`
	RowLabel   string `json:"rowLabel" validate:"required,max=5"`
	SeatNumber int    `json:"seatNumber" validate:"required,gt=0"`
	SeatType   string `json:"seatType" validate:"max=50"`
	IsActive   *bool  `json:"isActive,omitempty"`
}

type SeatResponse struct {
	Id         int    `json:"id"`
	HallId     int    `json:"hallId"`
	RowLabel   string `json:"rowLabel"`
	SeatNumber int    `json:"seatNumber"`
	Label      string `json:"label"`
	SeatType   string `json:"seatType"`
	IsActive   bool   `json:"isActive"`
}

type SeatListResponse struct {
	Seats []SeatResponse `json:"seats"`
}

type CustomerRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=30"`
}

type CustomerResponse struct {
	Id        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Metadata  Metadata           `json:"metadata"`
}

type ShowtimeRequest struct {
	MovieId         int             `json:"movieId" validate:"required,gt=0"`
	HallId          int             `json:"hallId" validate:"required,gt=0"`
	StartTime       time.Time       `json:"startTime" validate:"required"`
	BaseTicketPrice decimal.Decimal `json:"baseTicketPrice" validate:"price"`
	Status          string          `json:"status" validate:"max=50"`
}

type ShowtimeResponse struct {
	Id              int             `json:"id"`
	MovieId         int             `json:"movieId"`
	HallId          int             `json:"hallId"`
	MovieTitle      string          `json:"movieTitle"`
	DurationMinutes int             `json:"durationMinutes"`
	HallName        string          `json:"hallName"`
	StartTime       time.Time       `json:"startTime"`
	BaseTicketPrice decimal.Decimal `json:"baseTicketPrice"`
	Status          string          `json:"status"`
}

type ShowtimeListResponse struct {
	Showtimes []ShowtimeResponse `json:"showtimes"`
	Metadata  Metadata           `json:"metadata"`
}

type AvailableSeatsResponse struct {
	ShowtimeId int            `json:"showtimeId"`
	Seats      []SeatResponse `json:"seats"`
}

type CreateBookingRequest struct {
	CustomerId int   `json:"customerId" validate:"required,gt=0"`
	ShowtimeId int   `json:"showtimeId" validate:"required,gt=0"`
	SeatIds    []int `json:"seatIds" validate:"required,min=1,unique,dive,gt=0"`
}

type BookingResponse struct {
	Id          int       `json:"id"`
	Reference   uuid.UUID `json:"reference"`
	CustomerId  int       `json:"customerId"`
	ShowtimeId  int       `json:"showtimeId"`
	Status      string    `json:"status"`
	BookingTime time.Time `json:"bookingTime"`
}

type BookingSeat struct {
	SeatId     int             `json:"seatId"`
	RowLabel   string          `json:"rowLabel"`
	SeatNumber int             `json:"seatNumber"`
	SeatType   string          `json:"seatType"`
	Price      decimal.Decimal `json:"price"`
}

type BookingDetailResponse struct {
	Id            int             `json:"id"`
	Reference     uuid.UUID       `json:"reference"`
	Status        string          `json:"status"`
	BookingTime   time.Time       `json:"bookingTime"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	MovieTitle    string          `json:"movieTitle"`
	HallName      string          `json:"hallName"`
	ShowtimeStart time.Time       `json:"showtimeStart"`
	Seats         []BookingSeat   `json:"seats"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

type BookingSummary struct {
	Id            int       `json:"id"`
	Reference     uuid.UUID `json:"reference"`
	CustomerName  string    `json:"customerName"`
	MovieTitle    string    `json:"movieTitle"`
	ShowtimeStart time.Time `json:"showtimeStart"`
	Status        string    `json:"status"`
	BookingTime   time.Time `json:"bookingTime"`
}

type BookingListResponse struct {
	Bookings []BookingSummary `json:"bookings"`
	Metadata Metadata         `json:"metadata"`
}
