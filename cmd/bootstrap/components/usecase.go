package components

import (
	"log/slog"

	"booking-intake/internal/pkg/clock"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/pkg/password"
	"booking-intake/internal/usecase"
	"booking-intake/internal/usecase/commands"
	"booking-intake/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewIDGenerator,
	NewAdminPasswordHash,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewSubmissionCommands,
		commands.NewBookingCommands,
		NewContactCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewDocumentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewSessionValidator,
	),
)

func NewIDGenerator() commands.IDGenerator {
	return uuid.NewString
}

// NewAdminPasswordHash hashes ADMIN_PASSWORD once unless a precomputed hash is configured.
func NewAdminPasswordHash(cfg config.Config) (commands.AdminPasswordHash, error) {
	hash, err := password.ResolveAdminHash(cfg.Admin.Password, cfg.Admin.PasswordHash)
	if err != nil {
		return "", err
	}
	return commands.AdminPasswordHash(hash), nil
}

func NewContactCommands(store commands.DocumentStore, mailer commands.Mailer, cfg config.Config, logger *slog.Logger) commands.ContactCommands {
	return commands.NewContactCommands(store, mailer, cfg.Mail.SendTimeout, logger)
}

func NewDocumentQueries(reader queries.DocumentReader, cfg config.Config) queries.DocumentQueries {
	return queries.NewDocumentQueries(reader, cfg.Data.PublicFull)
}
