package integration_test

import (
	"context"
	"log"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"

	"github.com/cinehall/theater-api/internal/repository"
)

const (
	dbName      = "theater"
	dbUser      = "test_user"
	dbPassword  = "test_password"
	dbImageName = "postgres:17-alpine"
)

type BaseSuite struct {
	suite.Suite
	dbContainer *PostgresContainer
	pool        *pgxpool.Pool

	bookingRepo  *repository.PostgresBookingRepository
	showtimeRepo *repository.PostgresShowtimeRepository
	customerRepo *repository.PostgresCustomerRepository
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	dbContainer, err := getDbContainer(ctx)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	s.dbContainer = dbContainer

	pool, err := newTestPool(ctx, dbContainer.ConnectionString)
	if err != nil {
		log.Printf("failed to create pool: %s", err)
		return
	}

	s.pool = pool
	s.bookingRepo = repository.NewPostgresBookingRepository(pool)
	s.showtimeRepo = repository.NewPostgresShowtimeRepository(pool)
	s.customerRepo = repository.NewPostgresCustomerRepository(pool)
}

func (s *BaseSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.dbContainer != nil {
		if err := testcontainers.TerminateContainer(s.dbContainer.Container.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

func newTestPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	return pgxpool.NewWithConfig(ctx, config)
}

// mustExec runs arbitrary SQL against the test database, failing the test on
// error. Used for per-test fixtures and cleanup.
func (s *BaseSuite) mustExec(query string, args ...any) {
	_, err := s.pool.Exec(context.Background(), query, args...)
	s.Require().NoError(err)
}
