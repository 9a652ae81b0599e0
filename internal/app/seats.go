package app

import (
	"errors"
	"net/http"

	"github.com/cinehall/theater-api/api"
	"github.com/cinehall/theater-api/internal/domain"
)

func (app *application) GetSeatHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "seatId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seat, err := app.seatRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSeatResponse(*seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateSeatHandler(w http.ResponseWriter, r *http.Request) {
	var req api.SeatRequest

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

	seat := toSeat(req)

	err = app.seatRepo.Create(r.Context(), seat)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateSeat):
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, errors.New("hall not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toSeatResponse(*seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateSeatHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "seatId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req api.SeatRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seat := toSeat(req)
	seat.ID = id

	err = app.seatRepo.Update(r.Context(), seat)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateSeat):
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSeatResponse(*seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteSeatHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "seatId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.seatRepo.Delete(r.Context(), id)
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

func toSeat(req api.SeatRequest) *domain.Seat {
	seat := &domain.Seat{
		HallID:     req.HallId,
		RowLabel:   req.RowLabel,
		SeatNumber: req.SeatNumber,
		SeatType:   req.SeatType,
		IsActive:   true,
	}

	if req.IsActive != nil {
		seat.IsActive = *req.IsActive
	}

	return seat
}

func toSeatResponse(seat domain.Seat) api.SeatResponse {
	return api.SeatResponse{
		Id:         seat.ID,
		HallId:     seat.HallID,
		RowLabel:   seat.RowLabel,
		SeatNumber: seat.SeatNumber,
		Label:      seat.Label(),
		SeatType:   seat.SeatType,
		IsActive:   seat.IsActive,
	}
}

func toSeatResponses(seats []domain.Seat) []api.SeatResponse {
	seatResponses := make([]api.SeatResponse, len(seats))
	for i, seat := range seats {
		seatResponses[i] = toSeatResponse(seat)
	}

	return seatResponses
}
