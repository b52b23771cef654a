package components

import (
	"curtaincall/internal/handler"
	"curtaincall/internal/handler/api"
	"curtaincall/internal/handler/middleware"
	"curtaincall/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAdminHandler,
		api.NewOrderHandler,
		api.NewPaymentHandler,
		api.NewCouponHandler,
		api.NewReviewHandler,
		api.NewSearchHandler,
		api.NewChatHandler,
		NewUploadHandler,
		middleware.NewAuthMiddleware,
		middleware.NewAdminAuthMiddleware,
	),
	fx.Invoke(
		RegisterRoutes,
	),
)

func NewUploadHandler(cfg config.Config) *api.UploadHandler {
	return api.NewUploadHandler(cfg.Upload)
}

func RegisterRoutes(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	orderHandler *api.OrderHandler,
	paymentHandler *api.PaymentHandler,
	couponHandler *api.CouponHandler,
	reviewHandler *api.ReviewHandler,
	searchHandler *api.SearchHandler,
	chatHandler *api.ChatHandler,
	uploadHandler *api.UploadHandler,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminAuthMiddleware,
) {
	handler.NewRouter(engine, cfg, handler.Handlers{
		Auth:    authHandler,
		Admin:   adminHandler,
		Order:   orderHandler,
		Payment: paymentHandler,
		Coupon:  couponHandler,
		Review:  reviewHandler,
		Search:  searchHandler,
		Chat:    chatHandler,
		Upload:  uploadHandler,
	}, authMiddleware, adminMiddleware)
}
