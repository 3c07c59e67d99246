package api

import (
	"errors"
	"net/http"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/user"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	resdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/response"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/middleware"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamHandler struct {
	userQueries  queries.UserQueries
	teamCommands commands.TeamCommands
}

func NewTeamHandler(userQueries queries.UserQueries, teamCommands commands.TeamCommands) *TeamHandler {
	return &TeamHandler{
		userQueries:  userQueries,
		teamCommands: teamCommands,
	}
}

// @Summary List team members
// @Description Staff and admin accounts with their grants
// @Tags admin/team
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TeamListResponse
// @Router /admin/team [get]
func (h *TeamHandler) ListTeam(c *gin.Context) {
	members, err := h.userQueries.ListTeamMembers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTeamMemberViews(members))
}

// @Summary Change member role
// @Tags admin/team
// @Accept json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateRoleRequest true "Role"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/team/{id}/role [patch]
func (h *TeamHandler) UpdateRole(c *gin.Context) {
	actorID, memberID, ok := h.bindMemberAction(c)
	if !ok {
		return
	}

	var body reqdto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.teamCommands.UpdateRole(c.Request.Context(), memberID, body.Role, actorID); err != nil {
		h.respondTeamError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deactivate member
// @Description Soft-delete: the account stays for audit history but can no longer sign in
// @Tags admin/team
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/team/{id} [delete]
func (h *TeamHandler) Deactivate(c *gin.Context) {
	actorID, memberID, ok := h.bindMemberAction(c)
	if !ok {
		return
	}

	if err := h.teamCommands.Deactivate(c.Request.Context(), memberID, actorID); err != nil {
		h.respondTeamError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Grant permission
// @Tags admin/team
// @Accept json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.PermissionRequest true "Permission"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/team/{id}/permissions [post]
func (h *TeamHandler) GrantPermission(c *gin.Context) {
	actorID, memberID, ok := h.bindMemberAction(c)
	if !ok {
		return
	}

	var body reqdto.PermissionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.teamCommands.GrantPermission(c.Request.Context(), memberID, body.Permission, actorID); err != nil {
		h.respondTeamError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Revoke permission
// @Tags admin/team
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param permission path string true "Permission name"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/team/{id}/permissions/{permission} [delete]
func (h *TeamHandler) RevokePermission(c *gin.Context) {
	actorID, memberID, ok := h.bindMemberAction(c)
	if !ok {
		return
	}

	permission := c.Param("permission")
	if err := h.teamCommands.RevokePermission(c.Request.Context(), memberID, permission, actorID); err != nil {
		h.respondTeamError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) bindMemberAction(c *gin.Context) (actorID, memberID uuid.UUID, ok bool) {
	actorID, found := middleware.GetUserID(c)
	if !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return actorID, memberID, false
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return actorID, memberID, false
	}

	return actorID, memberID, true
}

func (h *TeamHandler) respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTeamMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Team member not found",
		})
	case errors.Is(err, commands.ErrSelfDemotion), errors.Is(err, commands.ErrSelfDeactivation):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, user.ErrInvalidRole), errors.Is(err, user.ErrInvalidPermission):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
