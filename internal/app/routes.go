package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware("theater-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)

	r.Get("/healthcheck", app.HealthcheckHandler)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.ListMoviesHandler)
		r.Post("/", app.CreateMovieHandler)
		r.Get("/{movieId}", app.GetMovieHandler)
		r.Put("/{movieId}", app.UpdateMovieHandler)
		r.Delete("/{movieId}", app.DeleteMovieHandler)
	})

	r.Route("/halls", func(r chi.Router) {
		r.Get("/", app.ListHallsHandler)
		r.Post("/", app.CreateHallHandler)
		r.Get("/{hallId}", app.GetHallHandler)
		r.Put("/{hallId}", app.UpdateHallHandler)
		r.Delete("/{hallId}", app.DeleteHallHandler)
		r.Get("/{hallId}/seats", app.ListHallSeatsHandler)
	})

	r.Route("/seats", func(r chi.Router) {
		r.Post("/", app.CreateSeatHandler)
		r.Get("/{seatId}", app.GetSeatHandler)
		r.Put("/{seatId}", app.UpdateSeatHandler)
		r.Delete("/{seatId}", app.DeleteSeatHandler)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", app.ListCustomersHandler)
		r.Post("/", app.CreateCustomerHandler)
		r.Get("/{customerId}", app.GetCustomerHandler)
		r.Put("/{customerId}", app.UpdateCustomerHandler)
		r.Delete("/{customerId}", app.DeleteCustomerHandler)
	})

	r.Route("/showtimes", func(r chi.Router) {
		r.Get("/", app.ListShowtimesHandler)
		r.Post("/", app.CreateShowtimeHandler)
		r.Get("/{showtimeId}", app.GetShowtimeHandler)
		r.Put("/{showtimeId}", app.UpdateShowtimeHandler)
		r.Delete("/{showtimeId}", app.DeleteShowtimeHandler)
		r.Get("/{showtimeId}/seats", app.GetAvailableSeatsHandler)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", app.ListBookingsHandler)
		r.Post("/", app.CreateBookingHandler)
		r.Get("/{bookingId}", app.GetBookingHandler)
		r.Post("/{bookingId}/cancel", app.CancelBookingHandler)
		r.Delete("/{bookingId}", app.DeleteBookingHandler)
	})

	return r
}
