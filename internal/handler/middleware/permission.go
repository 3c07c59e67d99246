package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/user"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type PermissionMiddleware struct {
	reads shared.CommandReads
}

func NewPermissionMiddleware(reads shared.CommandReads) *PermissionMiddleware {
	return &PermissionMiddleware{reads: reads}
}

// Require checks a single back-office capability. Admins always pass; staff
// need an explicit grant looked up per request so a revocation takes effect
// immediately, not at next login.
func (m *PermissionMiddleware) Require(p user.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		role, ok := GetUserRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		grants := user.NewPermissionSet()
		if role == user.RoleStaff {
			loaded, err := m.reads.PermissionsByUser(c.Request.Context(), userID)
			if err != nil {
				slog.Warn("failed to load permissions", "user_id", userID, "error", err.Error())
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
				return
			}
			grants = loaded
		}

		if !user.Allows(role, grants, p) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
