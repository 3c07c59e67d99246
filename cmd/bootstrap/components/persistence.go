package components

import (
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/readstore"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/uow"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	uow.NewPostgresUoW,
	func(u shared.UnitOfWork) shared.CommandReads {
		return u.CommandReads()
	},
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewViewRepo)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewActivityLogReadStore,
			fx.As(new(queries.ActivityLogViewRepo)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationViewRepo)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardViewRepo)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
