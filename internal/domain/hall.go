package domain

import "context"

type Hall struct {
	ID          int
	Name        string
	Capacity    int
	Description string
}

type HallRepository interface {
	GetAll(ctx context.Context) ([]Hall, error)
	GetById(ctx context.Context, id int) (*Hall, error)
	Create(ctx context.Context, hall *Hall) error
	Update(ctx context.Context, hall *Hall) error
	Delete(ctx context.Context, id int) error
}
