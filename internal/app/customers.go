package app

import (
	"errors"
	"net/http"

	"github.com/cinehall/theater-api/api"
	"github.com/cinehall/theater-api/internal/domain"
)

func (app *application) ListCustomersHandler(w http.ResponseWriter, r *http.Request) {
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

	customers, metadata, err := app.customerRepo.GetAll(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	customerResponses := make([]api.CustomerResponse, len(customers))
	for i, customer := range customers {
		customerResponses[i] = toCustomerResponse(&customer)
	}

	resp := api.CustomerListResponse{
		Customers: customerResponses,
		Metadata:  toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "customerId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	customer, err := app.customerRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toCustomerResponse(customer), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req api.CustomerRequest

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

	customer := &domain.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	err = app.customerRepo.Create(r.Context(), customer)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			app.conflictResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toCustomerResponse(customer), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "customerId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req api.CustomerRequest

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

	customer := &domain.Customer{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	err = app.customerRepo.Update(r.Context(), customer)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toCustomerResponse(customer), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "customerId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.customerRepo.Delete(r.Context(), id)
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

func toCustomerResponse(customer *domain.Customer) api.CustomerResponse {
	return api.CustomerResponse{
		Id:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
	}
}
