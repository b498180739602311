//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"masterbikes-api/internal/handler/api"
	resdto "masterbikes-api/internal/handler/dto/response"
	"masterbikes-api/internal/pkg/errs"
	"masterbikes-api/tests/common/builder"
	"masterbikes-api/tests/common/httptest"
	"masterbikes-api/tests/common/testutil"
	commandsmock "masterbikes-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands)

	s.router.GET("/cart/:id", s.handler.GetOrCreateCart)
	s.router.POST("/cart/:id/items", s.handler.AddItem)
	s.router.PUT("/cart/:id/items/:productId", s.handler.UpdateItemQuantity)
	s.router.DELETE("/cart/:id/items/:productId", s.handler.RemoveItem)
	s.router.DELETE("/cart/:id", s.handler.AbandonCart)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

// ================================================================================
// TestGetOrCreateCart
// ================================================================================

func (s *CartHandlerTestSuite) TestGetOrCreateCart() {
	b := builder.NewCartBuilder()
	returnView := b.BuildEmptyView()

	s.Run("success: returns 200 OK with the active cart", func() {
		s.mockCommands.EXPECT().GetOrCreate(gomock.Any(), b.CustomerID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart/"+b.CustomerID, nil)

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(b.CustomerID, body.CustomerID)
		s.Empty(body.Items)
		s.Zero(body.Total)
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().GetOrCreate(gomock.Any(), b.CustomerID).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart/"+b.CustomerID, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestAddItem
// ================================================================================

func (s *CartHandlerTestSuite) TestAddItem() {
	b := builder.NewCartBuilder()
	url := "/cart/" + b.CustomerID + "/items"
	reqBody := b.BuildAddItemRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 200 OK with the updated cart", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), b.CustomerID, b.ProductID, b.Quantity).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal(b.ProductID, body.Items[0].ProductID)
		s.Equal(b.UnitPrice*b.Quantity, body.Items[0].Subtotal)
		s.Equal(returnView.Total, body.Total)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: product_id", mutate: testutil.Field("product_id", nil)},
			{name: "missing field: quantity", mutate: testutil.Field("quantity", nil)},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
			{name: "negative quantity", mutate: testutil.Field("quantity", -2)},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown product",
				commandsError:  errs.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "not enough stock",
				commandsError:  errs.ErrInsufficientStock,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Insufficient stock",
			},
			{
				name:           "inventory service down",
				commandsError:  errs.ErrInventoryUnavailable,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Inventory service",
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddItem(gomock.Any(), b.CustomerID, b.ProductID, b.Quantity).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateItemQuantity
// ================================================================================

func (s *CartHandlerTestSuite) TestUpdateItemQuantity() {
	b := builder.NewCartBuilder()
	url := "/cart/" + b.CustomerID + "/items/" + b.ProductID
	returnView := b.BuildView()

	s.Run("success: returns 200 OK with the updated cart", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), b.CustomerID, b.ProductID, 4).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"quantity": 4})

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
	})

	s.Run("error: 400 when the usecase rejects the quantity", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), b.CustomerID, b.ProductID, -1).
			Return(nil, errs.ErrInvalidQuantity).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"quantity": -1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "greater than zero")
	})

	s.Run("error: 404 when the product is not in the cart", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), b.CustomerID, b.ProductID, 4).
			Return(nil, errs.ErrProductNotInCart).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"quantity": 4})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not in the cart")
	})

	s.Run("error: 409 when stock is insufficient", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), b.CustomerID, b.ProductID, 4).
			Return(nil, errs.ErrInsufficientStock).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"quantity": 4})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient stock")
	})
}

// ================================================================================
// TestRemoveItem
// ================================================================================

func (s *CartHandlerTestSuite) TestRemoveItem() {
	b := builder.NewCartBuilder()
	returnView := b.BuildEmptyView()
	url := "/cart/" + b.CartID.String() + "/items/" + b.ProductID + "?customerId=" + b.CustomerID

	s.Run("success: returns 200 OK with the remaining cart", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), b.CartID, b.CustomerID, b.ProductID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
	})

	s.Run("error: 400 for malformed cart id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/cart/not-a-uuid/items/"+b.ProductID+"?customerId="+b.CustomerID, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cart ID")
	})

	s.Run("error: 400 without customerId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/cart/"+b.CartID.String()+"/items/"+b.ProductID, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "customerId")
	})

	s.Run("error: 404 for foreign cart", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), b.CartID, b.CustomerID, b.ProductID).
			Return(nil, errs.ErrCartNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})
}

// ================================================================================
// TestAbandonCart
// ================================================================================

func (s *CartHandlerTestSuite) TestAbandonCart() {
	b := builder.NewCartBuilder()
	url := "/cart/" + b.CartID.String() + "?customerId=" + b.CustomerID

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Abandon(gomock.Any(), b.CartID, b.CustomerID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 for foreign cart", func() {
		s.mockCommands.EXPECT().Abandon(gomock.Any(), b.CartID, b.CustomerID).
			Return(errs.ErrCartNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})

	s.Run("error: 400 without customerId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/"+b.CartID.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "customerId")
	})
}
