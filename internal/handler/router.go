package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Catalog  *api.CatalogHandler
	Cart     *api.CartHandler
	Coupon   *api.CouponHandler
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Auth     *api.AuthHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Storefront surface: every route here runs under the session
		// middleware so carts survive across requests.
		storefront := apiGroup.Group("")
		storefront.Use(middleware.SessionMiddleware(cfg.Session))
		{
			addRoutes(storefront, []route{
				{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.ListProducts},
				{Method: http.MethodGet, Path: "/products/:id", Handler: h.Catalog.GetProduct},

				{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.GetCart},
				{Method: http.MethodPost, Path: "/cart/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/cart/items/:lineId", Handler: h.Cart.UpdateItem},
				{Method: http.MethodDelete, Path: "/cart/items/:lineId", Handler: h.Cart.RemoveItem},

				{Method: http.MethodPost, Path: "/cart/coupon", Handler: h.Coupon.Apply},
				{Method: http.MethodDelete, Path: "/cart/coupon", Handler: h.Coupon.Remove},

				{Method: http.MethodPost, Path: "/address/lookup", Handler: h.Checkout.LookupAddress},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Finalize},

				{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.GetOrder},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/coupons", Handler: h.Admin.CreateCoupon},
				{Method: http.MethodGet, Path: "/coupons", Handler: h.Admin.ListCoupons},
				{Method: http.MethodPut, Path: "/coupons/:id", Handler: h.Admin.SetCouponActive},
				{Method: http.MethodPost, Path: "/products", Handler: h.Admin.CreateProduct},
				{Method: http.MethodPut, Path: "/stock", Handler: h.Admin.SetStock},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Order.ListOrders},
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
