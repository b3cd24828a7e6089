package bootstrap

import (
	"context"
	"log/slog"

	"booking-intake/internal/infra/mailer"
	"booking-intake/internal/pkg/clock"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/usecase/commands"
	"booking-intake/internal/usecase/notify"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(notify.Sender)),
			fx.As(new(commands.Mailer)),
		),
		fx.Annotate(
			NewDispatcher,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewMailer(cfg config.Config, clk clock.Clock, logger *slog.Logger) *mailer.SMTPMailer {
	if !cfg.SMTP.Enabled() {
		logger.Warn("SMTP_HOST not set, outgoing email is disabled")
	}
	return mailer.NewSMTPMailer(cfg.SMTP, clk, logger)
}

func NewDispatcher(lc fx.Lifecycle, cfg config.Config, sender notify.Sender, logger *slog.Logger) *notify.Dispatcher {
	d := notify.NewDispatcher(sender, cfg.Mail.QueueSize, cfg.Mail.SendTimeout, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})

	return d
}
