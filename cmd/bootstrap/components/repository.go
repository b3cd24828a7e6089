package components

import (
	"log/slog"

	"booking-intake/internal/infra/filestore"
	"booking-intake/internal/infra/session"
	"booking-intake/internal/pkg/clock"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/usecase/commands"
	"booking-intake/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewDocumentStore,
			fx.As(new(commands.DocumentStore)),
			fx.As(new(queries.DocumentReader)),
		),
		fx.Annotate(
			NewSessionStore,
			fx.As(fx.Self()),
			fx.As(new(commands.SessionStore)),
		),
	),
)

func NewDocumentStore(cfg config.Config, logger *slog.Logger) *filestore.Store {
	store := filestore.NewStore(cfg.Data.Path(), logger)
	logger.Info("document store ready", "path", store.Path())
	return store
}

func NewSessionStore(clk clock.Clock, cfg config.Config) *session.MemoryStore {
	return session.NewMemoryStore(clk, cfg.Session.TTL)
}
