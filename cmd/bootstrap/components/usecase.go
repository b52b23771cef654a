package components

import (
	"curtaincall/internal/infra/cache"
	"curtaincall/internal/pkg/clock"
	"curtaincall/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			func(c *cache.SearchCache) *cache.SearchCache { return c },
			fx.As(new(usecase.ResultCache)),
		),
		usecase.NewCouponUseCase,
		usecase.NewMemberUseCase,
		usecase.NewAuthUseCase,
		usecase.NewAdminUseCase,
		usecase.NewOrderUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewReviewUseCase,
		usecase.NewSearchUseCase,
		usecase.NewChatUseCase,
		NewTokenValidator,
		NewAdminTokenValidator,
	),
)

func NewTokenValidator(authUseCase usecase.AuthUseCase) usecase.TokenValidator {
	return authUseCase
}

func NewAdminTokenValidator(adminUseCase usecase.AdminUseCase) usecase.AdminTokenValidator {
	return adminUseCase
}
