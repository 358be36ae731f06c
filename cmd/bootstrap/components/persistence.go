package components

import (
	"wedding-console/internal/infra/idempotency"
	"wedding-console/internal/infra/repository"
	"wedding-console/internal/infra/sessionstore"
	"wedding-console/internal/infra/sqlc"
	"wedding-console/internal/infra/uow"
	"wedding-console/internal/usecase/commands"
	"wedding-console/internal/usecase/queries"
	"wedding-console/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	storeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Draft
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.DraftQueries)),
		),
		fx.Annotate(
			repository.NewDraftRepository,
			fx.As(new(queries.DraftReadStore)),
			fx.As(new(commands.ExpiredDraftPurger)),
		),
	),
)

// Redis-backed stores
var storeModule = fx.Module("persistence/store",
	fx.Provide(
		fx.Annotate(
			sessionstore.NewStore,
			fx.As(new(shared.SessionStore)),
		),
		fx.Annotate(
			idempotency.NewStore,
			fx.As(new(shared.IdempotencyStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
