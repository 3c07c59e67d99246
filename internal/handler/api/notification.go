package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	resdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/response"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/middleware"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/notify"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationQueries  queries.NotificationQueries
	notificationCommands commands.NotificationCommands
	notifier             *notify.Notifier
}

func NewNotificationHandler(
	notificationQueries queries.NotificationQueries,
	notificationCommands commands.NotificationCommands,
	notifier *notify.Notifier,
) *NotificationHandler {
	return &NotificationHandler{
		notificationQueries:  notificationQueries,
		notificationCommands: notificationCommands,
		notifier:             notifier,
	}
}

// @Summary List notifications
// @Tags admin/notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.NotificationListResponse
// @Router /admin/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	views, err := h.notificationQueries.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}

// @Summary Unseen notification counts
// @Description Per-kind badge counts relative to the caller's last-seen marks
// @Tags admin/notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UnseenCountsResponse
// @Router /admin/notifications/unseen [get]
func (h *NotificationHandler) UnseenCounts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	counts, err := h.notificationQueries.UnseenCounts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUnseenCounts(counts))
}

// @Summary Mark notifications seen
// @Description Reset the badge for one notification kind
// @Tags admin/notifications
// @Security BearerAuth
// @Param kind path string true "booking, review or contact"
// @Success 204 "No Content"
// @Failure 422 {object} map[string]string
// @Router /admin/notifications/{kind}/seen [post]
func (h *NotificationHandler) MarkSeen(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	kind := c.Param("kind")
	if err := h.notificationCommands.MarkSeen(c.Request.Context(), userID, kind); err != nil {
		if errors.Is(err, commands.ErrUnknownNotificationKind) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unknown notification kind",
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

// @Summary Stream notifications
// @Description Server-sent events feed of live admin notifications
// @Tags admin/notifications
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /admin/notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	sub, err := h.notifier.Subscribe(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Notification stream unavailable",
		})
		return
	}
	defer func() { _ = sub.Close() }()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case evt, open := <-sub.Events():
			if !open {
				return false
			}
			c.SSEvent("notification", evt)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
