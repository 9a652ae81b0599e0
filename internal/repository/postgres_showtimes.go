package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinehall/theater-api/internal/domain"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Showtime, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			s.id,
			s.movie_id,
			s.hall_id,
			s.start_time,
			s.base_ticket_price,
			s.status,
			m.title,
			m.duration_minutes,
			h.name
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		JOIN halls h ON s.hall_id = h.id
		ORDER BY s.start_time, s.id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	showtimes := make([]domain.Showtime, 0)
	totalRecords := 0

	for rows.Next() {
		var showtime domain.Showtime

		err = rows.Scan(
			&totalRecords,
			&showtime.ID,
			&showtime.MovieID,
			&showtime.HallID,
			&showtime.StartTime,
			&showtime.BaseTicketPrice,
			&showtime.Status,
			&showtime.MovieTitle,
			&showtime.MovieDurationMinutes,
			&showtime.HallName,
		)

		if err != nil {
			return nil, nil, err
		}

		showtimes = append(showtimes, showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return showtimes, metadata, nil
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	query := `
		SELECT
			s.id,
			s.movie_id,
			s.hall_id,
			s.start_time,
			s.base_ticket_price,
			s.status,
			m.title,
			m.duration_minutes,
			h.name
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		JOIN halls h ON s.hall_id = h.id
		WHERE s.id = $1
	`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.HallID,
		&showtime.StartTime,
		&showtime.BaseTicketPrice,
		&showtime.Status,
		&showtime.MovieTitle,
		&showtime.MovieDurationMinutes,
		&showtime.HallName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		INSERT INTO showtimes (movie_id, hall_id, start_time, base_ticket_price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := p.db.QueryRow(
		ctx,
		query,
		showtime.MovieID,
		showtime.HallID,
		showtime.StartTime,
		showtime.BaseTicketPrice,
		showtime.Status).Scan(&showtime.ID)

	return mapShowtimeError(err)
}

// Update allows changing hall_id even when bookings exist against seats of
// the old hall; availability is always computed against the current hall.
func (p *PostgresShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		UPDATE showtimes
		SET movie_id = $1, hall_id = $2, start_time = $3, base_ticket_price = $4, status = $5
		WHERE id = $6
	`

	tag, err := p.db.Exec(
		ctx,
		query,
		showtime.MovieID,
		showtime.HallID,
		showtime.StartTime,
		showtime.BaseTicketPrice,
		showtime.Status,
		showtime.ID)

	if err != nil {
		return mapShowtimeError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrShowtimeHasBookings
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func mapShowtimeError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return domain.ErrRecordNotFound
	}

	return err
}
