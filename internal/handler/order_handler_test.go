package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"proshop/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Place(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	userID := uuid.New()
	productID := uuid.New()
	detail := &model.OrderDetail{
		Order:      model.Order{ID: uuid.New(), UserID: &userID, TotalPrice: 108.98},
		OrderItems: []model.OrderItem{{ID: uuid.New(), Name: "Airpods", Qty: 2, Price: 89.99}},
	}
	svc.On("PlaceOrder", mock.Anything, userID, mock.AnythingOfType("*model.PlaceOrderRequest")).Return(detail, nil)

	body := `{
		"paymentMethod": "PayPal",
		"taxPrice": 8.99,
		"shippingPrice": 10,
		"totalPrice": 108.98,
		"orderItems": [{"productId": "` + productID.String() + `", "qty": 2, "price": 89.99}],
		"shippingAddress": {"address": "1 Main St", "city": "Springfield", "postalCode": "12345", "country": "USA"}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/orders/addOrder", strings.NewReader(body))
	req = authenticate(req, userID, false)
	rec := httptest.NewRecorder()

	h.Place(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got model.OrderDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, detail.Order.ID, got.Order.ID)
	require.Len(t, got.OrderItems, 1)

	placed := svc.Calls[0].Arguments.Get(2).(*model.PlaceOrderRequest)
	assert.Equal(t, "PayPal", placed.PaymentMethod)
	assert.Equal(t, productID, placed.OrderItems[0].ProductID)
	svc.AssertExpectations(t)
}

func TestOrderHandler_Place_EmptyCart(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	userID := uuid.New()
	svc.On("PlaceOrder", mock.Anything, userID, mock.AnythingOfType("*model.PlaceOrderRequest")).
		Return(nil, model.ErrEmptyCart)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/addOrder",
		strings.NewReader(`{"orderItems": []}`))
	req = authenticate(req, userID, false)
	rec := httptest.NewRecorder()

	h.Place(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No order items", decodeDetail(t, rec.Body))
}

func TestOrderHandler_Place_InsufficientStock(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	userID := uuid.New()
	svc.On("PlaceOrder", mock.Anything, userID, mock.AnythingOfType("*model.PlaceOrderRequest")).
		Return(nil, model.ErrInsufficientStock)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/addOrder",
		strings.NewReader(`{"orderItems": [{"productId": "`+uuid.NewString()+`", "qty": 99, "price": 1}]}`))
	req = authenticate(req, userID, false)
	rec := httptest.NewRecorder()

	h.Place(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Not enough items in stock", decodeDetail(t, rec.Body))
}

func TestOrderHandler_Place_NoClaims(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/orders/addOrder", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Place(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_GetByID_PassesRequester(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	userID := uuid.New()
	orderID := uuid.New()
	detail := &model.OrderDetail{Order: model.Order{ID: orderID, UserID: &userID}}
	svc.On("GetByID", mock.Anything, orderID, userID, false).Return(detail, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID.String(), nil)
	req.SetPathValue("id", orderID.String())
	req = authenticate(req, userID, false)
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestOrderHandler_GetByID_Forbidden(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	userID := uuid.New()
	orderID := uuid.New()
	svc.On("GetByID", mock.Anything, orderID, userID, false).Return(nil, model.ErrForbidden)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID.String(), nil)
	req.SetPathValue("id", orderID.String())
	req = authenticate(req, userID, false)
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Not authorized to view this resource", decodeDetail(t, rec.Body))
}

func TestOrderHandler_ListMine(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	userID := uuid.New()
	svc.On("ListMine", mock.Anything, userID).Return([]model.Order{{ID: uuid.New(), UserID: &userID}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req = authenticate(req, userID, false)
	rec := httptest.NewRecorder()

	h.ListMine(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}

func TestOrderHandler_ListAll_EmptyIsArrayNotNull(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("ListAll", mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/allOrders", nil)
	rec := httptest.NewRecorder()

	h.ListAll(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestOrderHandler_Pay(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	orderID := uuid.New()
	svc.On("MarkPaid", mock.Anything, orderID).Return(&model.Order{ID: orderID, IsPaid: true}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+orderID.String()+"/pay", nil)
	req.SetPathValue("id", orderID.String())
	rec := httptest.NewRecorder()

	h.Pay(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got model.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.True(t, got.IsPaid)
}

func TestOrderHandler_Deliver_NotFound(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	orderID := uuid.New()
	svc.On("MarkDelivered", mock.Anything, orderID).Return(nil, model.ErrOrderNotFound)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+orderID.String()+"/deliver", nil)
	req.SetPathValue("id", orderID.String())
	rec := httptest.NewRecorder()

	h.Deliver(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order does not exist", decodeDetail(t, rec.Body))
}

func TestOrderHandler_Delete(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	orderID := uuid.New()
	svc.On("Delete", mock.Anything, orderID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/"+orderID.String()+"/delete", nil)
	req.SetPathValue("id", orderID.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Order deleted", decodeDetail(t, rec.Body))
}
