package components

import (
	"storefront/internal/handler"
	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCouponHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewAuthHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	catalog *api.CatalogHandler,
	cart *api.CartHandler,
	coupon *api.CouponHandler,
	checkout *api.CheckoutHandler,
	order *api.OrderHandler,
	auth *api.AuthHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Catalog:  catalog,
		Cart:     cart,
		Coupon:   coupon,
		Checkout: checkout,
		Order:    order,
		Auth:     auth,
		Admin:    admin,
	}
}
