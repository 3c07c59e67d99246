//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/booking"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/api"
	resdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/response"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/builder"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/httptest"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/testutil"
	commandsmock "github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/mock/commands"
	queriesmock "github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	adminID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockQueries, s.mockCommands)
	s.adminID = uuid.New()

	// Public endpoint: session is optional.
	s.router.POST("/bookings", s.handler.CreateBooking)

	// Back-office endpoints run behind auth middleware; emulate it here.
	adminAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.adminID)
			c.Set("user_role", "admin")
		}
		c.Next()
	}
	admin := s.router.Group("/admin", adminAuth)
	admin.GET("/bookings", s.handler.ListBookings)
	admin.GET("/bookings/:id", s.handler.GetBooking)
	admin.PATCH("/bookings/:id/status", s.handler.UpdateStatus)
	admin.DELETE("/bookings/:id", s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	bookingBuilder := builder.NewBookingBuilder()
	reqBody := bookingBuilder.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created for an anonymous guest", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, nil).
			Return(&commands.CreateBookingResult{
				BookingID:  bookingID,
				Status:     "pending",
				TotalPrice: 40000,
			}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bookingID, response.ID)
		s.Equal("pending", response.Status)
		s.Equal(int64(40000), response.TotalPrice)
	})

	s.Run("error: 404 Not Found for unknown room", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, nil).
			Return(nil, commands.ErrRoomNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 409 Conflict when the dates are taken", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, nil).
			Return(nil, commands.ErrRoomUnavailable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room unavailable for requested dates")
	})

	s.Run("error: 422 Unprocessable Entity for a past check-in", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, nil).
			Return(nil, booking.ErrCheckInPast).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing room_id", mutate: testutil.Field("room_id", nil)},
			{name: "missing check_in", mutate: testutil.Field("check_in", nil)},
			{name: "missing guest_name", mutate: testutil.Field("guest_name", nil)},
			{name: "invalid guest_email", mutate: testutil.Field("guest_email", "not-an-email")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.ToMap(s.T(), reqBody)
				tc.mutate(body)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/admin/bookings"

	s.Run("success: returns bookings with next cursor", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.GuestName = "Bola Ade"
				b.GuestEmail = "bola.ade@example.com"
			}).BuildView(),
		}
		next := &queries.Cursor{After: "djE6cGFnZTI"}
		s.mockQueries.EXPECT().List(gomock.Any(), "", nil, 0).
			Return(views, next, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "admin-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 2)
		s.Require().NotNil(response.NextCursor)
		s.Equal("djE6cGFnZTI", *response.NextCursor)
	})

	s.Run("success: passes status filter and cursor through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "pending", &queries.Cursor{After: "djE6YWJj"}, 50).
			Return(nil, nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?status=pending&after=djE6YWJj&limit=50", nil, "admin-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?status=archived", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 Bad Request on malformed cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "", &queries.Cursor{After: "garbage"}, 0).
			Return(nil, nil, errors.New("invalid cursor encoding")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?after=garbage", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns a single booking", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/bookings/"+view.ID.String(), nil, "admin-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.GuestName, response.GuestName)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/bookings/not-a-uuid", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/status"

	s.Run("success: returns 200 with the transition outcome", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed", s.adminID).
			Return(&commands.UpdateStatusResult{Status: "confirmed", EmailSent: true}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "confirmed"}, "admin-token")
		s.Equal(http.StatusOK, rec.Code)

		var body resdto.BookingStatusResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("confirmed", body.Status)
		s.True(body.EmailSent)
	})

	s.Run("success: surfaces email_sent=false when the confirmation mail fails", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed", s.adminID).
			Return(&commands.UpdateStatusResult{Status: "confirmed", EmailSent: false}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "confirmed"}, "admin-token")
		s.Equal(http.StatusOK, rec.Code)

		var body resdto.BookingStatusResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("confirmed", body.Status)
		s.False(body.EmailSent)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed", s.adminID).
			Return(nil, commands.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "confirmed"}, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 422 Unprocessable Entity for an illegal transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "pending", s.adminID).
			Return(nil, commands.ErrInvalidTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "pending"}, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid status transition")
	})

	s.Run("error: 400 Bad Request on unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "archived"}, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID, s.adminID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID, s.adminID).
			Return(commands.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
