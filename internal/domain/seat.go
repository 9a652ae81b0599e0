package domain

import (
	"context"
	"fmt"
)

type Seat struct {
	ID         int
	HallID     int
	RowLabel   string
	SeatNumber int
	SeatType   string
	IsActive   bool
}

// Label returns the human-readable seat position, e.g. "A7".
func (s Seat) Label() string {
	return fmt.Sprintf("%s%d", s.RowLabel, s.SeatNumber)
}

type SeatRepository interface {
	GetByHall(ctx context.Context, hallID int) ([]Seat, error)
	GetById(ctx context.Context, id int) (*Seat, error)
	Create(ctx context.Context, seat *Seat) error
	Update(ctx context.Context, seat *Seat) error
	Delete(ctx context.Context, id int) error
}
