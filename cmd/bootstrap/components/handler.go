package components

import (
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/api"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/middleware"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		middleware.NewAuthMiddleware,
		middleware.NewPermissionMiddleware,
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewEventHandler,
		api.NewContactHandler,
		api.NewTeamHandler,
		api.NewDashboardHandler,
		api.NewNotificationHandler,
		api.NewActivityLogHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	booking *api.BookingHandler,
	review *api.ReviewHandler,
	event *api.EventHandler,
	contact *api.ContactHandler,
	team *api.TeamHandler,
	dashboard *api.DashboardHandler,
	notification *api.NotificationHandler,
	activityLog *api.ActivityLogHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Room:         room,
		Booking:      booking,
		Review:       review,
		Event:        event,
		Contact:      contact,
		Team:         team,
		Dashboard:    dashboard,
		Notification: notification,
		ActivityLog:  activityLog,
	}
}
