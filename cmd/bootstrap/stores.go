package bootstrap

import (
	"context"
	"log/slog"

	"stayhub/internal/infra/store"
	"stayhub/internal/infra/store/memory"
	"stayhub/internal/infra/store/postgres"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"

	"go.uber.org/fx"
)

// StoreModule picks the persistence backend exactly once, from
// STORE_DRIVER. Everything downstream depends on the store interfaces and
// never learns which backend was chosen.
var StoreModule = fx.Module("store",
	fx.Provide(
		NewStores,
		func(s Stores) store.BookingStore { return s.Bookings },
		func(s Stores) store.PropertyStore { return s.Properties },
		func(s Stores) store.UserStore { return s.Users },
		func(s Stores) store.NotificationStore { return s.Notifications },
		func(s Stores) store.FavoriteStore { return s.Favorites },
	),
)

type Stores struct {
	Bookings      store.BookingStore
	Properties    store.PropertyStore
	Users         store.UserStore
	Notifications store.NotificationStore
	Favorites     store.FavoriteStore
}

func NewStores(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (Stores, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, cleanup, err := postgres.Connect(context.Background(), cfg.DB)
		if err != nil {
			return Stores{}, errs.Wrap(err, "failed to connect to postgres")
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("store backend selected", "driver", config.DriverPostgres)
		return Stores{
			Bookings:      postgres.NewBookingStore(pool, clk),
			Properties:    postgres.NewPropertyStore(pool, clk),
			Users:         postgres.NewUserStore(pool, clk),
			Notifications: postgres.NewNotificationStore(pool, clk),
			Favorites:     postgres.NewFavoriteStore(pool, clk),
		}, nil

	case config.DriverMemory:
		logger.Info("store backend selected", "driver", config.DriverMemory)
		return Stores{
			Bookings:      memory.NewBookingStore(clk),
			Properties:    memory.NewPropertyStore(clk),
			Users:         memory.NewUserStore(clk),
			Notifications: memory.NewNotificationStore(clk),
			Favorites:     memory.NewFavoriteStore(clk),
		}, nil

	default:
		return Stores{}, errs.Newf("unknown store driver %q", cfg.Store.Driver)
	}
}
