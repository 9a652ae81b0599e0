package app

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cinehall/theater-api/api"
	"github.com/cinehall/theater-api/internal/domain"
	"github.com/cinehall/theater-api/internal/mocks"
)

type CustomersTestSuite struct {
	suite.Suite
	app          *application
	customerRepo *mocks.MockCustomerRepo
}

func (s *CustomersTestSuite) SetupTest() {
	s.customerRepo = new(mocks.MockCustomerRepo)
	s.app = newTestApplication(func(a *application) {
		a.customerRepo = s.customerRepo
	})
}

func TestCustomersSuite(t *testing.T) {
	suite.Run(t, new(CustomersTestSuite))
}

func (s *CustomersTestSuite) TestCreateCustomerHandler() {
	tests := []struct {
		name           string
		body           any
		setupMock      func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "invalid email",
			body:           api.CustomerRequest{FirstName: "John", LastName: "Smith", Email: "not-an-email"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be a valid email address",
		},
		{
			name:           "missing first name",
			body:           api.CustomerRequest{LastName: "Smith", Email: "john.smith@example.com"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "duplicate email",
			body: api.CustomerRequest{FirstName: "John", LastName: "Smith", Email: "john.smith@example.com"},
			setupMock: func() {
				s.customerRepo.On("Create", mock.Anything, mock.Anything).
					Return(domain.ErrDuplicateEmail)
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrDuplicateEmail.Error(),
		},
		{
			name: "successful creation",
			body: api.CustomerRequest{FirstName: "John", LastName: "Smith", Email: "john.smith@example.com", Phone: "555-0101"},
			setupMock: func() {
				s.customerRepo.On("Create", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						customer := args.Get(1).(*domain.Customer)
						customer.ID = 4
						customer.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
					}).
					Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.customerRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/customers", tt.body)

			s.app.CreateCustomerHandler(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp api.CustomerResponse
				err := json.NewDecoder(w.Body).Decode(&resp)
				s.Require().NoError(err)

				s.Equal(4, resp.Id)
				s.Equal("John", resp.FirstName)
				s.Equal("john.smith@example.com", resp.Email)
			}

			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *CustomersTestSuite) TestDeleteCustomerHandler() {
	tests := []struct {
		name           string
		customerID     string
		setupMock      func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "customer not found",
			customerID: "99",
			setupMock: func() {
				s.customerRepo.On("Delete", mock.Anything, 99).Return(domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:       "successful deletion",
			customerID: "4",
			setupMock: func() {
				s.customerRepo.On("Delete", mock.Anything, 4).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.customerRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodDelete, "/customers/"+tt.customerID, nil)
			r = withURLParam(r, "customerId", tt.customerID)

			s.app.DeleteCustomerHandler(w, r)

			s.Equal(tt.wantStatus, w.Code)

			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}
