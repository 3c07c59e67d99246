package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/user"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/api"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/middleware"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Room         *api.RoomHandler
	Booking      *api.BookingHandler
	Review       *api.ReviewHandler
	Event        *api.EventHandler
	Contact      *api.ContactHandler
	Team         *api.TeamHandler
	Dashboard    *api.DashboardHandler
	Notification *api.NotificationHandler
	ActivityLog  *api.ActivityLogHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	permMiddleware *middleware.PermissionMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware, permMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	permMiddleware *middleware.PermissionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.GetRoom},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Room.CheckAvailability},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Review.List},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Review.Stats},
			})
			withSession := reviews.Group("")
			withSession.Use(authMiddleware.OptionalAuth())
			addRoutes(withSession, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
			})
		}

		gallery := apiGroup.Group("/gallery")
		{
			addRoutes(gallery, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Event.ListEvents},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Event.GetEvent},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.SendMessage},
		})

		// The back office is fenced twice: a session check, then a role
		// check. Individual write routes add a capability check so a
		// grant revocation bites immediately.
		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireBackOffice())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Snapshot},
				{Method: http.MethodGet, Path: "/logs", Handler: h.ActivityLog.List},
			})

			adminBookings := admin.Group("/bookings")
			{
				manageBookings := permMiddleware.Require(user.PermissionManageBookings)
				addRoutes(adminBookings, []route{
					{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
					{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
					{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.UpdateStatus, Mw: []gin.HandlerFunc{manageBookings}},
					{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.DeleteBooking, Mw: []gin.HandlerFunc{manageBookings}},
				})
			}

			adminRooms := admin.Group("/rooms")
			adminRooms.Use(permMiddleware.Require(user.PermissionManageRooms))
			{
				addRoutes(adminRooms, []route{
					{Method: http.MethodPost, Path: "", Handler: h.Room.CreateRoom},
					{Method: http.MethodPut, Path: "/:id", Handler: h.Room.UpdateRoom},
					{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Room.SetRoomStatus},
					{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.DeleteRoom},
				})
			}

			adminReviews := admin.Group("/reviews")
			adminReviews.Use(permMiddleware.Require(user.PermissionManageReviews))
			{
				addRoutes(adminReviews, []route{
					{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete},
				})
			}

			adminGallery := admin.Group("/gallery")
			adminGallery.Use(permMiddleware.Require(user.PermissionManageGallery))
			{
				addRoutes(adminGallery, []route{
					{Method: http.MethodPost, Path: "", Handler: h.Event.CreateEvent},
					{Method: http.MethodPut, Path: "/:id", Handler: h.Event.UpdateEvent},
					{Method: http.MethodDelete, Path: "/:id", Handler: h.Event.DeleteEvent},
				})
			}

			adminTeam := admin.Group("/team")
			adminTeam.Use(permMiddleware.Require(user.PermissionManageTeam))
			{
				addRoutes(adminTeam, []route{
					{Method: http.MethodGet, Path: "", Handler: h.Team.ListTeam},
					{Method: http.MethodPatch, Path: "/:id/role", Handler: h.Team.UpdateRole},
					{Method: http.MethodDelete, Path: "/:id", Handler: h.Team.Deactivate},
					{Method: http.MethodPost, Path: "/:id/permissions", Handler: h.Team.GrantPermission},
					{Method: http.MethodDelete, Path: "/:id/permissions/:permission", Handler: h.Team.RevokePermission},
				})
			}

			adminNotifications := admin.Group("/notifications")
			{
				addRoutes(adminNotifications, []route{
					{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
					{Method: http.MethodGet, Path: "/unseen", Handler: h.Notification.UnseenCounts},
					{Method: http.MethodPost, Path: "/:kind/seen", Handler: h.Notification.MarkSeen},
					{Method: http.MethodGet, Path: "/stream", Handler: h.Notification.Stream},
				})
			}
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
