package api

import (
	"errors"
	"net/http"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/room"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	resdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/response"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/middleware"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomQueries  queries.RoomQueries
	roomCommands commands.RoomCommands
}

func NewRoomHandler(roomQueries queries.RoomQueries, roomCommands commands.RoomCommands) *RoomHandler {
	return &RoomHandler{
		roomQueries:  roomQueries,
		roomCommands: roomCommands,
	}
}

// @Summary List rooms and suites
// @Description List rooms with optional availability, type and capacity filters
// @Tags rooms
// @Produce json
// @Param available query bool false "Only available rooms"
// @Param room_type query string false "room or suite"
// @Param min_capacity query int false "Minimum capacity"
// @Success 200 {object} resdto.RoomListResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var q reqdto.RoomListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.roomQueries.List(c.Request.Context(), queries.RoomFilter{
		OnlyAvailable: q.OnlyAvailable,
		RoomType:      q.RoomType,
		MinCapacity:   q.MinCapacity,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Check room availability
// @Description Check whether a room is free for a date range
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	available, err := h.roomQueries.CheckAvailability(c.Request.Context(), id, q.CheckIn, q.CheckOut)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{RoomID: id, Available: available})
}

// @Summary Create room
// @Tags admin/rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.roomCommands.CreateRoom(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, commands.ErrDuplicateRoomNumber) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room number already in use",
			})
			return
		}
		if isDomainRoomError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": result.RoomID.String()})
}

// @Summary Update room
// @Tags admin/rooms
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.roomCommands.UpdateRoom(c.Request.Context(), id, req, actorID); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrDuplicateRoomNumber):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room number already in use",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Set room status
// @Description Manually mark a room available or taken
// @Tags admin/rooms
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.SetRoomStatusRequest true "Status"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/rooms/{id}/status [patch]
func (h *RoomHandler) SetRoomStatus(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	var req reqdto.SetRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.roomCommands.SetRoomStatus(c.Request.Context(), id, req, actorID); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, room.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Taken-until must not precede taken-from",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete room
// @Tags admin/rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	if err := h.roomCommands.DeleteRoom(c.Request.Context(), id, actorID); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrRoomHasBookings):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room still referenced by bookings",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func isDomainRoomError(err error) bool {
	return errors.Is(err, room.ErrEmptyName) ||
		errors.Is(err, room.ErrEmptyRoomNumber) ||
		errors.Is(err, room.ErrNonPositivePrice) ||
		errors.Is(err, room.ErrInvalidCapacity) ||
		errors.Is(err, room.ErrInvalidRoomType)
}
