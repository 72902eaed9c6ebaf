package components

import (
	"context"

	"storefront/internal/infra/cep"
	"storefront/internal/infra/db"
	"storefront/internal/infra/readstore"
	"storefront/internal/infra/session"
	"storefront/internal/infra/uow"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	sessionModule,
	gatewayModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		readstore.NewCatalogReadStore,
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReader,
			fx.As(new(commands.CatalogReader)),
			fx.As(new(commands.StockReader)),
		),
		// Coupon
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(commands.CouponReader)),
			fx.As(new(queries.CouponReadStore)),
		),
		// Admin
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(commands.AdminReader)),
		),
		// Order
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var sessionModule = fx.Module("persistence/session",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionStore)),
		),
	),
)

var gatewayModule = fx.Module("persistence/gateway",
	fx.Provide(
		fx.Annotate(
			NewCepClient,
			fx.As(new(commands.AddressLookup)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) *session.MemoryStore {
	store := session.NewMemoryStore(cfg.Session.TTL, clk)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			store.Close()
			return nil
		},
	})
	return store
}

func NewCepClient(cfg config.Config) *cep.Client {
	return cep.NewClient(cfg.Cep)
}
