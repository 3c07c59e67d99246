package api

import (
	"net/http"
	"strconv"

	resdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/response"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ActivityLogHandler struct {
	activityLogQueries queries.ActivityLogQueries
}

func NewActivityLogHandler(activityLogQueries queries.ActivityLogQueries) *ActivityLogHandler {
	return &ActivityLogHandler{activityLogQueries: activityLogQueries}
}

// @Summary List activity logs
// @Description Keyset-paginated audit trail, newest first
// @Tags admin/logs
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.ActivityLogListResponse
// @Router /admin/logs [get]
func (h *ActivityLogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	var after *queries.Cursor
	if afterParam := c.Query("after"); afterParam != "" {
		after = &queries.Cursor{After: afterParam}
	}

	views, next, err := h.activityLogQueries.List(c.Request.Context(), after, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromActivityLogViews(views, next))
}
