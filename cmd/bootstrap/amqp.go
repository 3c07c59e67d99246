package bootstrap

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/mail"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/config"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"

	"go.uber.org/fx"
)

// AMQPModule binds the mail broker. Tests swap this module out for an
// in-memory Mailer, so the commands.Mailer binding lives here rather than
// in the usecase module.
var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewMailPublisher,
		func(p *mail.Publisher) commands.Mailer { return p },
	),
)

func NewMailPublisher(lc fx.Lifecycle, cfg config.Config) (*mail.Publisher, error) {
	publisher, cleanup, err := mail.NewPublisher(cfg.AMQP, cfg.Mail)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
