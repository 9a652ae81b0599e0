package app

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/cinehall/theater-api/api"
	"github.com/cinehall/theater-api/internal/domain"
)

func (app *application) ListBookingsHandler(w http.ResponseWriter, r *http.Request) {
	params, err := app.readListParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	bookings, metadata, err := app.bookingRepo.GetAll(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	summaries := make([]api.BookingSummary, len(bookings))
	for i, booking := range bookings {
		summaries[i] = api.BookingSummary{
			Id:            booking.BookingID,
			Reference:     booking.Reference,
			CustomerName:  booking.CustomerName,
			MovieTitle:    booking.MovieTitle,
			ShowtimeStart: booking.ShowtimeStart,
			Status:        string(booking.Status),
			BookingTime:   booking.BookingTime,
		}
	}

	resp := api.BookingListResponse{
		Bookings: summaries,
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CreateBookingHandler books a set of seats for a showtime. The seat
// availability checks and the inserts run inside one serialized transaction,
// so two requests racing for the same seat cannot both succeed.
func (app *application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req api.CreateBookingRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	exists, err := app.customerRepo.Exists(r.Context(), req.CustomerId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !exists {
		app.notFoundResponseWithErr(w, r, errors.New("customer not found"))
		return
	}

	booking := &domain.Booking{
		Reference:  uuid.New(),
		CustomerID: req.CustomerId,
		ShowtimeID: req.ShowtimeId,
		Status:     domain.BookingStatusConfirmed,
	}

	err = app.bookingRepo.Create(r.Context(), booking, req.SeatIds)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, errors.New("showtime not found"))
		case errors.Is(err, domain.ErrCustomerNotFound):
			app.notFoundResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrSeatNotBookable):
			app.unprocessableResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatAlreadyBooked):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.BookingResponse{
		Id:          booking.ID,
		Reference:   booking.Reference,
		CustomerId:  booking.CustomerID,
		ShowtimeId:  booking.ShowtimeID,
		Status:      string(booking.Status),
		BookingTime: booking.BookingTime,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.bookingRepo.GetBookingWithDetails(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingDetailResponse(detail), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.bookingRepo.Cancel(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) DeleteBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.bookingRepo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toBookingDetailResponse(detail *domain.BookingDetail) api.BookingDetailResponse {
	seats := make([]api.BookingSeat, len(detail.Seats))
	for i, seat := range detail.Seats {
		seats[i] = api.BookingSeat{
			SeatId:     seat.SeatID,
			RowLabel:   seat.RowLabel,
			SeatNumber: seat.SeatNumber,
			SeatType:   seat.SeatType,
			Price:      seat.SeatPriceAtBooking,
		}
	}

	return api.BookingDetailResponse{
		Id:            detail.BookingID,
		Reference:     detail.Reference,
		Status:        string(detail.Status),
		BookingTime:   detail.BookingTime,
		CustomerName:  detail.CustomerName,
		CustomerEmail: detail.CustomerEmail,
		MovieTitle:    detail.MovieTitle,
		HallName:      detail.HallName,
		ShowtimeStart: detail.ShowtimeStart,
		Seats:         seats,
		TotalPrice:    detail.TotalPrice,
	}
}
