package bootstrap

import (
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
