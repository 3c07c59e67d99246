package bootstrap

import (
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	RedisModule,
	AMQPModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
