package api

import (
	"log/slog"
	"net/http"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/user"
	resdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/response"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/middleware"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
	reads            shared.CommandReads
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries, reads shared.CommandReads) *DashboardHandler {
	return &DashboardHandler{
		dashboardQueries: dashboardQueries,
		reads:            reads,
	}
}

// @Summary Dashboard snapshot
// @Description Back-office landing metrics. Revenue appears only for callers holding view_revenue.
// @Tags admin/dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	includeRevenue := role == user.RoleAdmin
	if role == user.RoleStaff {
		grants, err := h.reads.PermissionsByUser(c.Request.Context(), userID)
		if err != nil {
			// Revenue hides on lookup failure; the rest of the dashboard still loads.
			slog.Warn("failed to load permissions for dashboard", "user_id", userID, "error", err.Error())
		} else {
			includeRevenue = user.Allows(role, grants, user.PermissionViewRevenue)
		}
	}

	view, err := h.dashboardQueries.Snapshot(c.Request.Context(), includeRevenue)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}
