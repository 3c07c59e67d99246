package components

import (
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/storage"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/clock"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/config"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	queryModule,
	commandModule,
)

var queryModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewEventQueries,
		queries.NewUserQueries,
		queries.NewActivityLogQueries,
		queries.NewNotificationQueries,
		queries.NewDashboardQueries,
	),
)

var commandModule = fx.Module("usecase/commands",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		NewCloudinaryUploader,
		func(u *storage.CloudinaryUploader) commands.ImageUploader { return u },
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewRoomCommands,
		commands.NewReviewCommands,
		commands.NewEventCommands,
		commands.NewTeamCommands,
		commands.NewContactCommands,
		commands.NewNotificationCommands,
	),
)

func NewCloudinaryUploader(cfg config.Config) *storage.CloudinaryUploader {
	return storage.NewCloudinaryUploader(cfg.Storage)
}
