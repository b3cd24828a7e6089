package bootstrap

import (
	"booking-intake/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	MailerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	SweeperModule,
)
