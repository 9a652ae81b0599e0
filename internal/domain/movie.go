package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID              int
	Title           string
	Genre           string
	DurationMinutes int
	Language        string
	Rating          string
	ReleaseDate     *time.Time
	Status          string
	CreatedAt       time.Time
}

type MovieRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
