package domain

import (
	"context"
	"time"
)

type Customer struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}

type CustomerRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]Customer, *Metadata, error)
	GetById(ctx context.Context, id int) (*Customer, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id int) error
}
