package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/cinehall/theater-api/api"
	"github.com/cinehall/theater-api/internal/domain"
	"github.com/cinehall/theater-api/internal/mocks"
)

func TestListMoviesHandler(t *testing.T) {
	createdAt := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		getAllFunc     func(context.Context, domain.Pagination) ([]*domain.Movie, *domain.Metadata, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.MovieListResponse
	}{
		{
			name:           "page is not an integer",
			url:            "/movies?page=abc",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "page must be an integer",
		},
		{
			name:           "page size too large",
			url:            "/movies?pageSize=500",
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be at most 100",
		},
		{
			name: "database error",
			url:  "/movies",
			getAllFunc: func(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, *domain.Metadata, error) {
				return nil, nil, fmt.Errorf("database error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "successful retrieval",
			url:  "/movies?page=1&pageSize=10",
			getAllFunc: func(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, *domain.Metadata, error) {
				movies := []*domain.Movie{
					{
						ID:              1,
						Title:           "Inception",
						Genre:           "Sci-Fi",
						DurationMinutes: 148,
						Language:        "English",
						Rating:          "PG-13",
						Status:          "NowShowing",
						CreatedAt:       createdAt,
					},
				}
				return movies, domain.NewMetadata(1, 1, 10), nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.MovieListResponse{
				Movies: []api.MovieResponse{
					{
						Id:              1,
						Title:           "Inception",
						Genre:           "Sci-Fi",
						DurationMinutes: 148,
						Language:        "English",
						Rating:          "PG-13",
						Status:          "NowShowing",
						CreatedAt:       createdAt,
					},
				},
				Metadata: api.Metadata{
					CurrentPage:  1,
					FirstPage:    1,
					LastPage:     1,
					PageSize:     10,
					TotalRecords: 1,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.movieRepo = &mocks.MockMovieRepo{GetAllFunc: tt.getAllFunc}
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)

			app.ListMoviesHandler(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var resp api.MovieListResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &resp); diff != "" {
					t.Errorf("Response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func TestGetMovieHandler(t *testing.T) {
	tests := []struct {
		name           string
		movieID        string
		getByIdFunc    func(context.Context, int) (*domain.Movie, error)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "invalid movie id",
			movieID:        "-1",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid movieId parameter",
		},
		{
			name:    "movie not found",
			movieID: "99",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:    "successful retrieval",
			movieID: "1",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
				return &domain.Movie{ID: 1, Title: "Inception", DurationMinutes: 148}, nil
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.movieRepo = &mocks.MockMovieRepo{GetByIdFunc: tt.getByIdFunc}
			})

			w, r := executeRequest(t, http.MethodGet, "/movies/"+tt.movieID, nil)
			r = withURLParam(r, "movieId", tt.movieID)

			app.GetMovieHandler(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func TestCreateMovieHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		createFunc     func(context.Context, *domain.Movie) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "missing title",
			body:           api.MovieRequest{DurationMinutes: 120},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name:           "missing duration",
			body:           api.MovieRequest{Title: "Inception"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "successful creation",
			body: api.MovieRequest{
				Title:           "Inception",
				Genre:           "Sci-Fi",
				DurationMinutes: 148,
				ReleaseDate:     ptr(time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC)),
			},
			createFunc: func(ctx context.Context, movie *domain.Movie) error {
				movie.ID = 1
				return nil
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.movieRepo = &mocks.MockMovieRepo{CreateFunc: tt.createFunc}
			})

			w, r := executeRequest(t, http.MethodPost, "/movies", tt.body)

			app.CreateMovieHandler(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}
