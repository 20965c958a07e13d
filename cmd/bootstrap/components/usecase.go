package components

import (
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewPropertyUseCase,
		usecase.NewNotificationUseCase,
		usecase.NewFavoriteUseCase,
		fx.Annotate(
			usecase.NewStoreNotifier,
			fx.As(new(usecase.HostNotifier)),
		),
		usecase.NewBookingUseCase,
	),
)
