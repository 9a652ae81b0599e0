package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/cinehall/theater-api/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create inserts a booking and its seat rows in one transaction. The showtime
// row is locked first, so two concurrent bookings for the same showtime are
// serialized and the seat conflict check cannot race: the losing writer gets
// ErrSeatAlreadyBooked instead of a double booking.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking, seatIDs []int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var hallID int
		var basePrice decimal.Decimal

		query := `
			SELECT hall_id, base_ticket_price
			FROM showtimes
			WHERE id = $1
			FOR UPDATE
		`

		err := tx.QueryRow(ctx, query, booking.ShowtimeID).Scan(&hallID, &basePrice)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		query = `
			SELECT COUNT(*)
			FROM seats
			WHERE hall_id = $1 AND is_active AND id = ANY($2)
		`

		var bookable int
		err = tx.QueryRow(ctx, query, hallID, seatIDs).Scan(&bookable)
		if err != nil {
			return err
		}

		if bookable != len(seatIDs) {
			return domain.ErrSeatNotBookable
		}

		query = `
			SELECT COUNT(*)
			FROM booking_seats bs
			JOIN bookings b ON bs.booking_id = b.id
			WHERE bs.showtime_id = $1 AND b.status = 'Confirmed' AND bs.seat_id = ANY($2)
		`

		var taken int
		err = tx.QueryRow(ctx, query, booking.ShowtimeID, seatIDs).Scan(&taken)
		if err != nil {
			return err
		}

		if taken > 0 {
			return domain.ErrSeatAlreadyBooked
		}

		query = `
			INSERT INTO bookings (reference, customer_id, showtime_id, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, booking_time
		`

		err = tx.QueryRow(
			ctx,
			query,
			booking.Reference,
			booking.CustomerID,
			booking.ShowtimeID,
			booking.Status).Scan(&booking.ID, &booking.BookingTime)

		if err != nil {
			// The showtime row is held under the lock above, so an FK
			// violation here can only mean the customer vanished.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				if strings.Contains(pgErr.ConstraintName, "customer") {
					return domain.ErrCustomerNotFound
				}

				return domain.ErrRecordNotFound
			}

			return err
		}

		rows := make([][]any, 0, len(seatIDs))
		for _, seatID := range seatIDs {
			rows = append(rows, []any{
				booking.ID,
				booking.ShowtimeID,
				seatID,
				basePrice,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"booking_id", "showtime_id", "seat_id", "seat_price_at_booking"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
}

// GetAvailableSeats returns the active seats of the showtime's current hall
// that are not part of any Confirmed booking for that showtime. Availability
// is derived on every call; cancelled and deleted bookings free their seats
// without any explicit release step. An unknown showtime yields an empty
// slice, existence is the caller's concern.
func (p *PostgresBookingRepository) GetAvailableSeats(ctx context.Context, showtimeID int) ([]domain.Seat, error) {
	query := `
		SELECT s.id, s.hall_id, s.row_label, s.seat_number, s.seat_type, s.is_active
		FROM seats s
		WHERE s.hall_id = (SELECT hall_id FROM showtimes WHERE id = $1)
		  AND s.is_active
		  AND NOT EXISTS (
			SELECT 1
			FROM booking_seats bs
			JOIN bookings b ON bs.booking_id = b.id
			WHERE b.showtime_id = $1 AND b.status = 'Confirmed' AND bs.seat_id = s.id
		  )
		ORDER BY s.row_label, s.seat_number
	`

	rows, err := p.db.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(
			&seat.ID,
			&seat.HallID,
			&seat.RowLabel,
			&seat.SeatNumber,
			&seat.SeatType,
			&seat.IsActive,
		)

		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresBookingRepository) GetBookingWithDetails(ctx context.Context, bookingID int) (*domain.BookingDetail, error) {
	query := `
		SELECT
			b.id,
			b.reference,
			b.status,
			b.booking_time,
			c.first_name || ' ' || c.last_name,
			c.email,
			m.title,
			h.name,
			s.start_time,
			s.base_ticket_price
		FROM bookings b
		JOIN customers c ON b.customer_id = c.id
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN halls h ON s.hall_id = h.id
		WHERE b.id = $1
	`

	var detail domain.BookingDetail

	err := p.db.QueryRow(ctx, query, bookingID).Scan(
		&detail.BookingID,
		&detail.Reference,
		&detail.Status,
		&detail.BookingTime,
		&detail.CustomerName,
		&detail.CustomerEmail,
		&detail.MovieTitle,
		&detail.HallName,
		&detail.ShowtimeStart,
		&detail.BasePrice,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	seats, err := p.retrieveBookingSeats(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, seat := range seats {
		total = total.Add(seat.SeatPriceAtBooking)
	}

	detail.Seats = seats
	detail.TotalPrice = total

	return &detail, nil
}

func (p *PostgresBookingRepository) retrieveBookingSeats(ctx context.Context, bookingID int) ([]domain.BookingSeat, error) {
	query := `
		SELECT bs.id, bs.booking_id, bs.seat_id, bs.seat_price_at_booking,
			s.row_label, s.seat_number, s.seat_type
		FROM booking_seats bs
		JOIN seats s ON bs.seat_id = s.id
		WHERE bs.booking_id = $1
		ORDER BY s.row_label, s.seat_number
	`

	rows, err := p.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.BookingSeat, 0)

	for rows.Next() {
		var seat domain.BookingSeat

		err = rows.Scan(
			&seat.ID,
			&seat.BookingID,
			&seat.SeatID,
			&seat.SeatPriceAtBooking,
			&seat.RowLabel,
			&seat.SeatNumber,
			&seat.SeatType,
		)

		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresBookingRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			b.reference,
			c.first_name || ' ' || c.last_name,
			m.title,
			s.start_time,
			b.status,
			b.booking_time
		FROM bookings b
		JOIN customers c ON b.customer_id = c.id
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		ORDER BY b.booking_time DESC, b.id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary

		err = rows.Scan(
			&totalRecords,
			&booking.BookingID,
			&booking.Reference,
			&booking.CustomerName,
			&booking.MovieTitle,
			&booking.ShowtimeStart,
			&booking.Status,
			&booking.BookingTime,
		)

		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}

// Cancel flips the booking to Cancelled, which frees its seats for future
// bookings. Cancelling an already cancelled booking succeeds and re-applies
// the same status.
func (p *PostgresBookingRepository) Cancel(ctx context.Context, bookingID int) error {
	query := `UPDATE bookings SET status = 'Cancelled' WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, bookingID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// Delete removes the booking row; booking_seats go with it via ON DELETE CASCADE.
func (p *PostgresBookingRepository) Delete(ctx context.Context, bookingID int) error {
	query := `DELETE FROM bookings WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, bookingID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
