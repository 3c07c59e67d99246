//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/response"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/authtest"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/dbtest"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/httptest"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/api/bookings"
	adminBookingsURL = "/api/admin/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) bookingRequest(roomID uuid.UUID) request.CreateBookingRequest {
	checkIn := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 7)
	return request.CreateBookingRequest{
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 2),
		GuestName:  "Ada Obi",
		GuestEmail: "ada@example.com",
		GuestPhone: "+2348012345678",
	}
}

func (s *BookingSuite) submitBooking(roomID uuid.UUID) response.CreateBookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingRequest(roomID), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateBookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created
}

func (s *BookingSuite) TestSubmitBooking() {
	s.Run("guest submits a booking without an account", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Deluxe Room", "101", 20000)

		created := s.submitBooking(roomID)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, int64(40000), created.TotalPrice, "two nights at the room rate")

		// Admins see it in the list with a pending badge.
		token := authtest.LoginUser(t, s.Router, dbtest.SeededAdminEmail, "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingsURL+"?status=pending", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Bookings, 1)
		require.Equal(t, created.ID, list.Bookings[0].ID)
		require.Equal(t, "Ada Obi", list.Bookings[0].GuestName)
		require.False(t, list.Bookings[0].EmailSent)
	})

	s.Run("overlapping dates on the same room are refused", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Deluxe Room", "101", 20000)

		s.submitBooking(roomID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingRequest(roomID), "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Room unavailable")
	})
}

func (s *BookingSuite) TestConfirmBooking() {
	s.Run("confirm sends mail and reports email_sent", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Executive Suite", "201", 35000)
		created := s.submitBooking(roomID)

		token := authtest.LoginUser(t, s.Router, dbtest.SeededAdminEmail, "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			adminBookingsURL+"/"+created.ID.String()+"/status",
			request.UpdateBookingStatusRequest{Status: "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var outcome response.BookingStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &outcome)
		require.Equal(t, "confirmed", outcome.Status)
		require.True(t, outcome.EmailSent)

		sent := s.Mail.SentConfirmations()
		require.Len(t, sent, 1)
		require.Equal(t, "ada@example.com", sent[0].GuestEmail)
		require.Equal(t, "Executive Suite", sent[0].RoomName)

		var emailSent bool
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT email_sent FROM bookings WHERE id = $1", created.ID).Scan(&emailSent))
		require.True(t, emailSent)
	})

	s.Run("mail failure keeps the booking confirmed and surfaces email_sent=false", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Executive Suite", "201", 35000)
		created := s.submitBooking(roomID)

		s.Mail.FailBookingMail(true)

		token := authtest.LoginUser(t, s.Router, dbtest.SeededAdminEmail, "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			adminBookingsURL+"/"+created.ID.String()+"/status",
			request.UpdateBookingStatusRequest{Status: "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var outcome response.BookingStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &outcome)
		require.Equal(t, "confirmed", outcome.Status)
		require.False(t, outcome.EmailSent)

		var status string
		var emailSent bool
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT status, email_sent FROM bookings WHERE id = $1", created.ID).Scan(&status, &emailSent))
		require.Equal(t, "confirmed", status)
		require.False(t, emailSent, "failed mail must not be marked as sent")
	})

	s.Run("illegal transition is rejected", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Executive Suite", "201", 35000)
		created := s.submitBooking(roomID)

		token := authtest.LoginUser(t, s.Router, dbtest.SeededAdminEmail, "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			adminBookingsURL+"/"+created.ID.String()+"/status",
			request.UpdateBookingStatusRequest{Status: "checked_out"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid status transition")
	})
}

func (s *BookingSuite) TestDeleteBooking() {
	s.Run("deleting a booking removes it permanently", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Deluxe Room", "101", 20000)
		created := s.submitBooking(roomID)

		token := authtest.LoginUser(t, s.Router, dbtest.SeededAdminEmail, "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			adminBookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// Gone from the API and from the table: no soft-delete column, no tombstone.
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			adminBookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNotFound, gw.Code, gw.Body.String())

		var count int
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM bookings WHERE id = $1", created.ID).Scan(&count))
		require.Zero(t, count)

		// The room is bookable again for the same dates.
		recreated := s.submitBooking(roomID)
		require.Equal(t, "pending", recreated.Status)
	})

	s.Run("deleting an unknown booking returns 404", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, dbtest.SeededAdminEmail, "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			adminBookingsURL+"/"+uuid.NewString(), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}
