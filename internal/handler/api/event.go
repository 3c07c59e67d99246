package api

import (
	"errors"
	"net/http"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/event"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	resdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/response"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/middleware"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventQueries  queries.EventQueries
	eventCommands commands.EventCommands
}

func NewEventHandler(eventQueries queries.EventQueries, eventCommands commands.EventCommands) *EventHandler {
	return &EventHandler{
		eventQueries:  eventQueries,
		eventCommands: eventCommands,
	}
}

// @Summary List gallery events
// @Tags gallery
// @Produce json
// @Success 200 {object} resdto.EventListResponse
// @Router /gallery [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	views, err := h.eventQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}

// @Summary Get gallery event
// @Tags gallery
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} map[string]string
// @Router /gallery/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID",
		})
		return
	}

	view, err := h.eventQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Create gallery event
// @Description Create an event; image may arrive as base64 data or a URL
// @Tags admin/gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /admin/gallery [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.eventCommands.CreateEvent(c.Request.Context(), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrImageUpload):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Image upload failed",
			})
		case errors.Is(err, event.ErrEmptyTitle), errors.Is(err, event.ErrEmptyImageURL):
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

	c.JSON(http.StatusCreated, gin.H{"id": result.EventID.String()})
}

// @Summary Update gallery event
// @Tags admin/gallery
// @Accept json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.UpdateEventRequest true "Event"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/gallery/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID",
		})
		return
	}

	var req reqdto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.eventCommands.UpdateEvent(c.Request.Context(), id, req, actorID); err != nil {
		switch {
		case errors.Is(err, commands.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		case errors.Is(err, commands.ErrImageUpload):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Image upload failed",
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

// @Summary Delete gallery event
// @Tags admin/gallery
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/gallery/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID",
		})
		return
	}

	if err := h.eventCommands.DeleteEvent(c.Request.Context(), id, actorID); err != nil {
		if errors.Is(err, commands.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
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
