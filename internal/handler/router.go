package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"curtaincall/internal/handler/api"
	"curtaincall/internal/handler/middleware"
	"curtaincall/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Admin   *api.AdminHandler
	Order   *api.OrderHandler
	Payment *api.PaymentHandler
	Coupon  *api.CouponHandler
	Review  *api.ReviewHandler
	Search  *api.SearchHandler
	Chat    *api.ChatHandler
	Upload  *api.UploadHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminAuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware, adminMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminAuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.Static("/"+cfg.Upload.Dir, cfg.Upload.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/id-check", Handler: h.Auth.CheckID},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/naver/token", Handler: h.Auth.NaverToken},
				{Method: http.MethodPost, Path: "/naver/me", Handler: h.Auth.NaverSignIn},
				{Method: http.MethodPost, Path: "/kakao/token", Handler: h.Auth.KakaoToken},
				{Method: http.MethodPost, Path: "/kakao/me", Handler: h.Auth.KakaoSignIn},
				{Method: http.MethodPost, Path: "/google/token", Handler: h.Auth.GoogleToken},
				{Method: http.MethodPost, Path: "/google/me", Handler: h.Auth.GoogleSignIn},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Admin.Login},
			})

			adminRequired := admin.Group("")
			adminRequired.Use(adminMiddleware.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodGet, Path: "/active", Handler: h.Admin.Active},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/performances", Handler: h.Search.SearchPerformances},
			{Method: http.MethodGet, Path: "/performances/:id", Handler: h.Search.PerformanceDetail},
			{Method: http.MethodGet, Path: "/venues/:id", Handler: h.Search.VenueDetail},
			{Method: http.MethodGet, Path: "/accommodations", Handler: h.Search.SearchAccommodations},
			{Method: http.MethodGet, Path: "/accommodations/search", Handler: h.Search.SearchAccommodationsByKeyword},
		})

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "/performance", Handler: h.Order.ListPerformance},
				{Method: http.MethodGet, Path: "/accommodation", Handler: h.Order.ListAccommodation},
				{Method: http.MethodGet, Path: "/reserved-seats", Handler: h.Order.ReservedSeats},
			})

			ordersAuth := orders.Group("")
			ordersAuth.Use(authMiddleware.RequireAuth())
			addRoutes(ordersAuth, []route{
				{Method: http.MethodGet, Path: "/my/latest", Handler: h.Order.Latest},
				{Method: http.MethodGet, Path: "/my/:kind", Handler: h.Order.ListMine},
				{Method: http.MethodGet, Path: "/:kind/:id", Handler: h.Order.Get},
				{Method: http.MethodDelete, Path: "/:kind/:id", Handler: h.Order.Cancel},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/card", Handler: h.Payment.SubmitCard},
				{Method: http.MethodPost, Path: "/kakao/ready", Handler: h.Payment.WalletReady},
				{Method: http.MethodPost, Path: "/kakao/approve", Handler: h.Payment.WalletApprove},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Coupon.ListAll},
				{Method: http.MethodPost, Path: "", Handler: h.Coupon.Issue},
				{Method: http.MethodGet, Path: "/my", Handler: h.Coupon.ListMine},
				{Method: http.MethodDelete, Path: "/my", Handler: h.Coupon.DeleteMine},
				{Method: http.MethodGet, Path: "/:docId", Handler: h.Coupon.Get},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/:type", Handler: h.Review.List},
			})

			reviewsAuth := reviews.Group("")
			reviewsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(reviewsAuth, []route{
				{Method: http.MethodPost, Path: "/:type", Handler: h.Review.Create},
				{Method: http.MethodGet, Path: "/:type/my", Handler: h.Review.ListMine},
				{Method: http.MethodDelete, Path: "/:type/:id", Handler: h.Review.Delete},
			})
		}

		chat := apiGroup.Group("/chat")
		chat.Use(authMiddleware.RequireAuth())
		{
			addRoutes(chat, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Chat.Handle},
			})
		}

		uploads := apiGroup.Group("/uploads")
		uploads.Use(authMiddleware.RequireAuth())
		{
			addRoutes(uploads, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Upload.Upload},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
