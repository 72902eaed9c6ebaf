//go:build e2e

package storefront_test

import (
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	resdto "storefront/internal/handler/dto/response"
	"storefront/tests/common/dbtest"
	"storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	productsURL      = "/api/products"
	cartURL          = "/api/cart"
	cartItemsURL     = "/api/cart/items"
	cartCouponURL    = "/api/cart/coupon"
	addressLookupURL = "/api/address/lookup"
	checkoutURL      = "/api/checkout"
	ordersURL        = "/api/orders/"
)

type StorefrontSuite struct {
	e2e.SharedSuite
}

func TestStorefrontSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StorefrontSuite))
}

// browser carries the session cookie across requests, the way a real
// storefront client would.
type browser struct {
	s       *StorefrontSuite
	cookies []*http.Cookie
}

func (s *StorefrontSuite) newBrowser() *browser {
	return &browser{s: s}
}

func (b *browser) do(method, path string, body any) *nethttptest.ResponseRecorder {
	t := b.s.T()
	rec := httptest.PerformRequestWithCookies(t, b.s.Router, method, path, body, b.cookies, "")
	if cookie := httptest.ExtractCookie(rec, b.s.Config.Session.CookieName); cookie != nil {
		b.cookies = []*http.Cookie{cookie}
	}
	return rec
}

func (s *StorefrontSuite) TestCheckoutJourney() {
	s.Run("Normal case: cart, coupon, address and checkout end to end", func() {
		t := s.T()
		ctx := context.Background()
		br := s.newBrowser()

		productID := dbtest.CreateTestProduct(t, s.DB, "Ceramic Mug", "90.00")
		dbtest.SetTestStock(t, s.DB, productID, nil, 10)
		dbtest.CreateTestCoupon(t, s.DB, "PROMO10", "percentage", "10", "0", nil)

		// Catalog lists the seeded product
		rec := br.do(http.MethodGet, productsURL, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		// Two units at 90.00 put the cart in the standard shipping bracket
		rec = br.do(http.MethodPost, cartItemsURL, map[string]any{
			"product_id": productID.String(),
			"quantity":   2,
		})
		var cart resdto.CartResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &cart)
		require.True(t, cart.Subtotal.Equal(decimal.RequireFromString("180.00")))
		require.True(t, cart.Shipping.Equal(decimal.RequireFromString("20.00")))
		require.True(t, cart.Total.Equal(decimal.RequireFromString("200.00")))
		require.NotEmpty(t, br.cookies, "session cookie should be minted on first contact")

		// Ten percent off leaves shipping untouched: 180 - 18 + 20
		rec = br.do(http.MethodPost, cartCouponURL, map[string]any{"code": "promo10"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = br.do(http.MethodGet, cartURL, nil)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &cart)
		require.NotNil(t, cart.CouponCode)
		require.Equal(t, "PROMO10", *cart.CouponCode)
		require.True(t, cart.Discount.Equal(decimal.RequireFromString("18.00")))
		require.True(t, cart.Total.Equal(decimal.RequireFromString("182.00")))

		// Postal code resolves through the stubbed lookup service
		rec = br.do(http.MethodPost, addressLookupURL, map[string]any{"postal_code": e2e.StubPostalCode})
		var address resdto.AddressResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &address)

		expectedAddress := &resdto.AddressResponse{
			PostalCode: "01001-000",
			Street:     e2e.StubStreet,
			District:   "Sé",
			City:       "São Paulo",
			State:      "SP",
		}
		if diff := cmp.Diff(expectedAddress, &address); diff != "" {
			t.Errorf("Address mismatch (-want +got):\n%s", diff)
		}

		rec = br.do(http.MethodPost, checkoutURL, map[string]any{
			"customer_name":  "Ana Souza",
			"customer_email": "ana@example.com",
			"number":         "100",
		})
		var checkout resdto.CheckoutResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &checkout)
		require.NotEqual(t, uuid.Nil, checkout.OrderID)

		// The persisted order carries the server-side amounts
		rec = br.do(http.MethodGet, ordersURL+checkout.OrderID.String(), nil)
		var order resdto.OrderResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &order)
		require.True(t, order.Total.Equal(decimal.RequireFromString("182.00")))
		require.Equal(t, "pending", order.Status)
		require.Len(t, order.Items, 1)

		// Stock and coupon usage moved in the same transaction
		var quantity int
		err := s.DB.QueryRow(ctx,
			"SELECT quantity FROM stock WHERE product_id = $1 AND variation_id IS NULL", productID).Scan(&quantity)
		require.NoError(t, err)
		require.Equal(t, 8, quantity)

		var currentUses int
		err = s.DB.QueryRow(ctx,
			"SELECT current_uses FROM coupons WHERE code = 'PROMO10'").Scan(&currentUses)
		require.NoError(t, err)
		require.Equal(t, 1, currentUses)

		// Session state is reset after a successful checkout
		rec = br.do(http.MethodGet, cartURL, nil)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &cart)
		require.Empty(t, cart.Lines)
		require.Nil(t, cart.CouponCode)
	})

	s.Run("Normal case: orders above the free shipping threshold ship free", func() {
		t := s.T()
		br := s.newBrowser()

		productID := dbtest.CreateTestProduct(t, s.DB, "Espresso Machine", "125.00")
		dbtest.SetTestStock(t, s.DB, productID, nil, 5)

		rec := br.do(http.MethodPost, cartItemsURL, map[string]any{
			"product_id": productID.String(),
			"quantity":   2,
		})
		var cart resdto.CartResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &cart)
		require.True(t, cart.Shipping.IsZero())
		require.True(t, cart.Total.Equal(decimal.RequireFromString("250.00")))
	})

	s.Run("Edge case: quantities beyond stock are clamped, not rejected", func() {
		t := s.T()
		br := s.newBrowser()

		productID := dbtest.CreateTestProduct(t, s.DB, "Notebook", "12.50")
		dbtest.SetTestStock(t, s.DB, productID, nil, 3)

		rec := br.do(http.MethodPost, cartItemsURL, map[string]any{
			"product_id": productID.String(),
			"quantity":   5,
		})
		var cart resdto.CartResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &cart)
		require.True(t, cart.Adjusted)
		require.Len(t, cart.Lines, 1)
		require.Equal(t, 3, cart.Lines[0].Quantity)
	})

	s.Run("Error case: checkout with an empty cart is rejected", func() {
		t := s.T()
		br := s.newBrowser()

		rec := br.do(http.MethodPost, checkoutURL, map[string]any{
			"customer_name":  "Ana Souza",
			"customer_email": "ana@example.com",
			"number":         "100",
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("Error case: competing sessions cannot oversell the last units", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Limited Print", "60.00")
		dbtest.SetTestStock(t, s.DB, productID, nil, 2)

		buyAll := func(br *browser) int {
			rec := br.do(http.MethodPost, cartItemsURL, map[string]any{
				"product_id": productID.String(),
				"quantity":   2,
			})
			require.Equal(t, http.StatusOK, rec.Code)

			rec = br.do(http.MethodPost, addressLookupURL, map[string]any{"postal_code": e2e.StubPostalCode})
			require.Equal(t, http.StatusOK, rec.Code)

			rec = br.do(http.MethodPost, checkoutURL, map[string]any{
				"customer_name":  "Ana Souza",
				"customer_email": "ana@example.com",
				"number":         "100",
			})
			return rec.Code
		}

		first := s.newBrowser()
		second := s.newBrowser()

		// Both carts hold the full stock; only one checkout can win it
		require.Equal(t, http.StatusCreated, buyAll(first))
		require.Equal(t, http.StatusConflict, buyAll(second))
	})
}
