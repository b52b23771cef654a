package bootstrap

import (
	"time"

	"curtaincall/internal/pkg/config"
	"curtaincall/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewAdminJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration)
}

func NewAdminJWTService(cfg config.Config) *jwt.AdminService {
	tokenDuration, err := time.ParseDuration(cfg.JWT.AdminDuration)
	if err != nil {
		panic("invalid ADMIN_JWT_DURATION: " + err.Error())
	}

	return jwt.NewAdminService(cfg.JWT.AdminSecret, tokenDuration)
}
