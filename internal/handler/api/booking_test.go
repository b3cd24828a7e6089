//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"booking-intake/internal/domain/document"
	"booking-intake/internal/handler/api"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/usecase/commands"
	"booking-intake/internal/usecase/queries"
	"booking-intake/tests/common/builder"
	"booking-intake/tests/common/httptest"
	commandsmock "booking-intake/tests/mock/commands"
	queriesmock "booking-intake/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockDocumentQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDocumentQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/admin/bookings", s.handler.List)
	s.router.PATCH("/api/admin/bookings/:id/status", s.handler.UpdateStatus)
	s.router.DELETE("/api/admin/bookings/:id", s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("returns bookings, contacts and totals", func() {
		stored := builder.NewBookingBuilder().BuildStored()
		s.mockQueries.EXPECT().GetAdminOverview(gomock.Any()).Return(&queries.AdminOverview{
			Bookings:      []document.Record{stored},
			Contacts:      []document.Record{{"type": "contact", "name": "Bruno"}},
			TotalBookings: 1,
			TotalContacts: 1,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings", nil, "")

		var body struct {
			Success       bool             `json:"success"`
			Bookings      []map[string]any `json:"bookings"`
			Contacts      []map[string]any `json:"contacts"`
			TotalBookings int              `json:"total_bookings"`
			TotalContacts int              `json:"total_contacts"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Len(body.Bookings, 1)
		s.Equal("booking-1", body.Bookings[0]["id"])
		s.Len(body.Contacts, 1)
		s.Equal(1, body.TotalBookings)
		s.Equal(1, body.TotalContacts)
	})

	s.Run("empty collections render as arrays", func() {
		s.mockQueries.EXPECT().GetAdminOverview(gomock.Any()).Return(&queries.AdminOverview{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"success":true,"bookings":[],"contacts":[],"total_bookings":0,"total_contacts":0}`, rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	url := "/api/admin/bookings/booking-1/status"

	s.Run("success", func() {
		updated := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = "confirmed"
		}).BuildStored()
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), "booking-1", "confirmed").Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "confirmed"}, "")

		var body struct {
			Success bool           `json:"success"`
			Message string         `json:"message"`
			Booking map[string]any `json:"booking"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal("Booking status updated to confirmed", body.Message)
		s.Equal("confirmed", body.Booking["status"])
	})

	s.Run("error: missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Status is required")
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "invalid status",
			err:        errs.Mark(commands.ErrInvalidStatus, errs.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid status",
		},
		{
			name:       "unknown booking",
			err:        errs.Mark(commands.ErrBookingNotFound, errs.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Booking not found",
		},
		{
			name:       "slot held by another booking",
			err:        errs.Mark(commands.ErrSlotTaken, errs.ErrConflict),
			wantStatus: http.StatusConflict,
			wantMsg:    "already booked",
		},
		{
			name:       "storage failure",
			err:        errs.Mark(errs.New("disk full"), errs.ErrStorage),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Error saving data",
		},
	}

	for _, tt := range tests {
		s.Run("error: "+tt.name, func() {
			s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), "booking-1", "maybe").Return(nil, tt.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "maybe"}, "")
			httptest.AssertErrorResponse(s.T(), rec, tt.wantStatus, tt.wantMsg)
		})
	}
}

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "booking-1").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/bookings/booking-1", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Booking deleted successfully", body["message"])
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "missing").
			Return(errs.Mark(commands.ErrBookingNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/bookings/missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
