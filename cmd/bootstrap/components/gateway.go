package components

import (
	"curtaincall/internal/infra/gateway"
	"curtaincall/internal/pkg/clock"
	"curtaincall/internal/pkg/config"
	"curtaincall/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewKakaoPayGateway,
			fx.As(new(usecase.WalletGateway)),
		),
		fx.Annotate(
			NewKopisGateway,
			fx.As(new(usecase.PerformanceSearchGateway)),
		),
		fx.Annotate(
			NewTourGateway,
			fx.As(new(usecase.AccommodationSearchGateway)),
		),
		fx.Annotate(
			NewOAuthGateway,
			fx.As(new(usecase.OAuthClient)),
		),
		fx.Annotate(
			NewCaptchaVerifier,
			fx.As(new(usecase.CaptchaVerifier)),
		),
		fx.Annotate(
			NewOpenAIGateway,
			fx.As(new(usecase.Completer)),
		),
	),
)

func NewKakaoPayGateway(cfg config.Config) *gateway.KakaoPayGateway {
	return gateway.NewKakaoPayGateway(cfg.Kakao)
}

func NewKopisGateway(cfg config.Config, clk clock.Clock) *gateway.KopisGateway {
	return gateway.NewKopisGateway(cfg.Kopis, clk)
}

func NewTourGateway(cfg config.Config) *gateway.TourGateway {
	return gateway.NewTourGateway(cfg.Tour)
}

func NewOAuthGateway(cfg config.Config) *gateway.OAuthGateway {
	return gateway.NewOAuthGateway(cfg.OAuth)
}

func NewCaptchaVerifier(cfg config.Config) *gateway.CaptchaVerifier {
	return gateway.NewCaptchaVerifier(cfg.Captcha)
}

func NewOpenAIGateway(cfg config.Config) *gateway.OpenAIGateway {
	return gateway.NewOpenAIGateway(cfg.OpenAI)
}
