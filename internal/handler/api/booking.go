package api

import (
	"errors"
	"net/http"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/booking"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	resdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/response"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/middleware"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingQueries  queries.BookingQueries
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingQueries queries.BookingQueries, bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingQueries:  bookingQueries,
		bookingCommands: bookingCommands,
	}
}

// @Summary Create booking
// @Description Submit a stay request for a room. Works with or without a session.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	// Anonymous guests may book; a logged-in session attaches the user.
	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room unavailable for requested dates",
			})
		case errors.Is(err, booking.ErrInvalidStayRange),
			errors.Is(err, booking.ErrCheckInPast),
			errors.Is(err, booking.ErrEmptyGuestName),
			errors.Is(err, booking.ErrInvalidGuestMail):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		ID:         result.BookingID,
		Status:     result.Status,
		TotalPrice: result.TotalPrice,
	})
}

// @Summary List bookings
// @Description Keyset-paginated booking list with optional status filter
// @Tags admin/bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Router /admin/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var q reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	var after *queries.Cursor
	if q.After != "" {
		after = &queries.Cursor{After: q.After}
	}

	views, next, err := h.bookingQueries.List(c.Request.Context(), q.Status, after, q.Limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views, next))
}

// @Summary Get booking
// @Tags admin/bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Walk a booking through its lifecycle
// @Tags admin/bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Next status"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.UpdateStatus(c.Request.Context(), id, req.Status, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// email_sent=false tells the back office the confirmation mail was not
	// enqueued and needs a resend.
	c.JSON(http.StatusOK, resdto.FromUpdateStatusResult(result))
}

// @Summary Delete booking
// @Tags admin/bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	if err := h.bookingCommands.DeleteBooking(c.Request.Context(), id, actorID); err != nil {
		if errors.Is(err, commands.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
