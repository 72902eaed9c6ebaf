//go:build e2e

package admin_test

import (
	"context"
	"net/http"
	"testing"

	resdto "storefront/internal/handler/dto/response"
	"storefront/tests/common/dbtest"
	"storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL         = "/api/admin/login"
	adminCouponsURL  = "/api/admin/coupons"
	adminProductsURL = "/api/admin/products"
	adminStockURL    = "/api/admin/stock"
	adminOrdersURL   = "/api/admin/orders"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) login(t *testing.T) string {
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, map[string]any{
		"email":    dbtest.AdminEmail,
		"password": dbtest.AdminPassword,
	}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
	require.NotEmpty(t, response.Token)
	return response.Token
}

func (s *AdminSuite) TestLogin() {
	s.Run("Normal case: seeded admin can log in", func() {
		token := s.login(s.T())
		require.NotEmpty(s.T(), token)
	})

	s.Run("Error case: wrong password is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, map[string]any{
			"email":    dbtest.AdminEmail,
			"password": "wrong-password",
		}, "")
		require.Equal(s.T(), http.StatusUnauthorized, rec.Code)
	})

	s.Run("Error case: admin routes require a token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminCouponsURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, rec.Code)
	})
}

func (s *AdminSuite) TestCouponManagement() {
	s.Run("Normal case: create, list and deactivate a coupon", func() {
		t := s.T()
		token := s.login(t)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, adminCouponsURL, map[string]any{
			"code":         "welcome15",
			"kind":         "fixed",
			"value":        "15.00",
			"min_subtotal": "50.00",
		}, token)
		var created map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		couponID := created["id"]
		require.NotEmpty(t, couponID)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, adminCouponsURL, nil, token)
		var coupons []resdto.CouponResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &coupons)
		require.Len(t, coupons, 1)
		require.Equal(t, "WELCOME15", coupons[0].Code, "codes are stored normalized")
		require.True(t, coupons[0].Active)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, adminCouponsURL+"/"+couponID,
			map[string]any{"active": false}, token)
		require.Equal(t, http.StatusNoContent, rec.Code)

		var active bool
		err := s.DB.QueryRow(context.Background(),
			"SELECT active FROM coupons WHERE id = $1::uuid", couponID).Scan(&active)
		require.NoError(t, err)
		require.False(t, active)
	})

	s.Run("Error case: duplicate coupon codes conflict", func() {
		t := s.T()
		token := s.login(t)
		dbtest.CreateTestCoupon(t, s.DB, "PROMO10", "percentage", "10", "0", nil)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, adminCouponsURL, map[string]any{
			"code":  "promo10",
			"kind":  "percentage",
			"value": "10",
		}, token)
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	s.Run("Error case: percentage over 100 is rejected", func() {
		t := s.T()
		token := s.login(t)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, adminCouponsURL, map[string]any{
			"code":  "toomuch",
			"kind":  "percentage",
			"value": "120",
		}, token)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func (s *AdminSuite) TestProductAndStock() {
	s.Run("Normal case: create a product and restock it", func() {
		t := s.T()
		ctx := context.Background()
		token := s.login(t)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, adminProductsURL, map[string]any{
			"name":       "Ceramic Mug",
			"base_price": "25.00",
			"stock":      4,
		}, token)
		var created map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		productID := created["id"]
		require.NotEmpty(t, productID)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, adminStockURL, map[string]any{
			"product_id": productID,
			"quantity":   9,
		}, token)
		require.Equal(t, http.StatusNoContent, rec.Code)

		var quantity int
		err := s.DB.QueryRow(ctx,
			"SELECT quantity FROM stock WHERE product_id = $1::uuid AND variation_id IS NULL", productID).Scan(&quantity)
		require.NoError(t, err)
		require.Equal(t, 9, quantity)
	})

	s.Run("Error case: invalid product definitions are rejected", func() {
		t := s.T()
		token := s.login(t)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, adminProductsURL, map[string]any{
			"name":       "   ",
			"base_price": "25.00",
		}, token)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, adminProductsURL, map[string]any{
			"name":       "Ceramic Mug",
			"base_price": "25.00",
			"variations": []map[string]any{
				{"name": "Blue", "additional_price": "-1.00", "stock": 5},
			},
		}, token)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM products WHERE name = 'Ceramic Mug'").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count, "rejected product must not reach the catalog")
	})

	s.Run("Error case: negative stock is rejected", func() {
		t := s.T()
		token := s.login(t)
		productID := dbtest.CreateTestProduct(t, s.DB, "Notebook", "12.50")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPut, adminStockURL, map[string]any{
			"product_id": productID.String(),
			"quantity":   -1,
		}, token)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func (s *AdminSuite) TestOrderListing() {
	s.Run("Normal case: lists persisted orders newest first", func() {
		t := s.T()
		ctx := context.Background()
		token := s.login(t)

		_, err := s.DB.Exec(ctx, `
			INSERT INTO orders (id, customer_name, customer_email, postal_code, street, number,
			                    district, city, state, subtotal, shipping_fee, discount, total, status)
			VALUES (gen_random_uuid(), 'Ana Souza', 'ana@example.com', '01001000', 'Praça da Sé', '100',
			        'Sé', 'São Paulo', 'SP', 50.00, 20.00, 0, 70.00, 'pending')`)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, adminOrdersURL, nil, token)
		var orders []resdto.OrderListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &orders)
		require.Len(t, orders, 1)
		require.Equal(t, "Ana Souza", orders[0].CustomerName)
	})
}
