package components

import (
	"curtaincall/internal/infra/db"
	repo_impl "curtaincall/internal/infra/repository"
	"curtaincall/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewMemberRepository,
			fx.As(new(usecase.MemberRepository)),
		),
		fx.Annotate(
			repo_impl.NewAdminRepository,
			fx.As(new(usecase.AdminRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderIDAllocator,
			fx.As(new(usecase.OrderIDAllocator)),
		),
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(usecase.CouponRepository)),
		),
		fx.Annotate(
			repo_impl.NewReviewRepository,
			fx.As(new(usecase.ReviewRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
