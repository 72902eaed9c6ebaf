//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront/internal/domain/coupon"
	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/pkg/errs"
	"storefront/tests/common/httptest"
	commandsmock "storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	handler      *api.CouponHandler
	sessionID    uuid.UUID
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands)
	s.sessionID = uuid.New()

	// Stand-in for the session middleware
	sessionMiddleware := func(c *gin.Context) {
		c.Set("session_id", s.sessionID)
		c.Next()
	}

	s.router.POST("/cart/coupon", sessionMiddleware, s.handler.Apply)
	s.router.DELETE("/cart/coupon", sessionMiddleware, s.handler.Remove)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestApply() {
	s.Run("Normal case: applied coupon is echoed with its discount", func() {
		applied := &coupon.Applied{
			CouponID: uuid.New(),
			Code:     "PROMO10",
			Kind:     coupon.KindPercentage,
			Value:    decimal.RequireFromString("10"),
			Discount: decimal.RequireFromString("18.00"),
		}
		s.mockCommands.EXPECT().
			Apply(gomock.Any(), s.sessionID, "promo10").
			Return(applied, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/coupon",
			map[string]any{"code": "promo10"}, "")

		var response resdto.AppliedCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("PROMO10", response.Code)
		s.Equal("percentage", response.Kind)
		s.True(response.Discount.Equal(decimal.RequireFromString("18.00")))
	})

	s.Run("Error case: missing code fails validation", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/coupon",
			map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("Error case: command failures map to status codes", func() {
		tests := []struct {
			name           string
			err            error
			expectedStatus int
			expectedError  string
		}{
			{
				name:           "unknown code",
				err:            errs.ErrCouponNotFound,
				expectedStatus: http.StatusNotFound,
				expectedError:  "Coupon not found",
			},
			{
				name:           "inactive coupon",
				err:            errs.ErrCouponInactive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedError:  "Coupon is not active",
			},
			{
				name:           "expired coupon",
				err:            errs.ErrCouponExpired,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedError:  "Coupon has expired",
			},
			{
				name:           "usage limit reached",
				err:            errs.ErrCouponUsageLimitReached,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedError:  "Coupon usage limit reached",
			},
			{
				name:           "unexpected failure",
				err:            errors.New("session store down"),
				expectedStatus: http.StatusInternalServerError,
				expectedError:  "Internal server error",
			},
		}

		for _, tt := range tests {
			s.Run(tt.name, func() {
				s.mockCommands.EXPECT().
					Apply(gomock.Any(), s.sessionID, "SAVE5").
					Return(nil, tt.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/coupon",
					map[string]any{"code": "SAVE5"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tt.expectedStatus, tt.expectedError)
			})
		}
	})

	s.Run("Error case: below-minimum keeps the threshold in the message", func() {
		s.mockCommands.EXPECT().
			Apply(gomock.Any(), s.sessionID, "BIGSPEND").
			Return(nil, errs.ErrCouponBelowMinimum)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/coupon",
			map[string]any{"code": "BIGSPEND"}, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *CouponHandlerTestSuite) TestRemove() {
	s.Run("Normal case: removing the coupon succeeds", func() {
		s.mockCommands.EXPECT().
			Remove(gomock.Any(), s.sessionID).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/coupon", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("Error case: store failures surface as 500", func() {
		s.mockCommands.EXPECT().
			Remove(gomock.Any(), s.sessionID).
			Return(errors.New("session store down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/coupon", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
