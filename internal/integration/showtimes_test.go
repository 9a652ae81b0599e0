package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/cinehall/theater-api/internal/domain"
)

type ShowtimesSuite struct {
	BaseSuite
}

func TestShowtimesSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(ShowtimesSuite))
}

func (s *ShowtimesSuite) TestGetByIdJoinsMovieAndHall() {
	showtime, err := s.showtimeRepo.GetById(context.Background(), 1)
	s.Require().NoError(err)

	s.Equal(1, showtime.MovieID)
	s.Equal(1, showtime.HallID)
	s.Equal("ADHM", showtime.MovieTitle)
	s.Equal(145, showtime.MovieDurationMinutes)
	s.Equal("shaann", showtime.HallName)
	s.True(showtime.BaseTicketPrice.Equal(decimal.RequireFromString("12.99")))
}

func (s *ShowtimesSuite) TestGetByIdUnknownShowtime() {
	_, err := s.showtimeRepo.GetById(context.Background(), 999)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *ShowtimesSuite) TestCreateRejectsUnknownMovie() {
	showtime := &domain.Showtime{
		MovieID:         999,
		HallID:          1,
		StartTime:       time.Date(2025, 12, 24, 20, 0, 0, 0, time.UTC),
		BaseTicketPrice: decimal.RequireFromString("10.00"),
		Status:          "Active",
	}

	err := s.showtimeRepo.Create(context.Background(), showtime)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *ShowtimesSuite) TestCustomerExists() {
	exists, err := s.customerRepo.Exists(context.Background(), 1)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.customerRepo.Exists(context.Background(), 999)
	s.Require().NoError(err)
	s.False(exists)
}
