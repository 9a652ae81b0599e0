package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Showtime is a flat snapshot: the movie and hall columns joined at query
// time rather than navigated as a live object graph.
type Showtime struct {
	ID              int
	MovieID         int
	HallID          int
	StartTime       time.Time
	BaseTicketPrice decimal.Decimal
	Status          string

	MovieTitle           string
	MovieDurationMinutes int
	HallName             string
}

type ShowtimeRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]Showtime, *Metadata, error)
	GetById(ctx context.Context, id int) (*Showtime, error)
	Create(ctx context.Context, showtime *Showtime) error
	Update(ctx context.Context, showtime *Showtime) error
	Delete(ctx context.Context, id int) error
}
