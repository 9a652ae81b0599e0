package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cinehall/theater-api/internal/domain"
)

type MockCustomerRepo struct {
	mock.Mock
	domain.CustomerRepository
}

func (m *MockCustomerRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.Customer, *domain.Metadata, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Customer), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockCustomerRepo) GetById(ctx context.Context, id int) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
