package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TemirB/grubdash/internal/domain"
	"github.com/TemirB/grubdash/internal/observability"
)

func newMockServer(t *testing.T) (*Server, *MockDishService, *MockOrderService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dishes := NewMockDishService(ctrl)
	orders := NewMockOrderService(ctrl)
	server, err := New(dishes, orders, 8, zap.NewNop(), observability.NewNoop())
	require.NoError(t, err)
	return server, dishes, orders
}

func TestServer_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{
			name:   "not found",
			err:    domain.NotFoundf("Order id not found: %s", "o1"),
			status: http.StatusNotFound,
			msg:    "Order id not found: o1",
		},
		{
			name:   "invalid",
			err:    domain.Invalidf("An order cannot be deleted unless it is pending"),
			status: http.StatusBadRequest,
			msg:    "An order cannot be deleted unless it is pending",
		},
		{
			name:   "unexpected",
			err:    errors.New("store exploded"),
			status: http.StatusInternalServerError,
			msg:    "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _, orders := newMockServer(t)
			orders.EXPECT().Delete(gomock.Any(), "o1").Return(tt.err)

			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/orders/o1", nil))

			requireError(t, w, tt.status, tt.msg)
		})
	}
}

func TestServer_PassesDecodedInput(t *testing.T) {
	server, dishes, _ := newMockServer(t)

	want := domain.DishInput{ID: "d1", Name: "Taco", Description: "Spicy", Price: 8, ImageURL: "u"}
	dishes.EXPECT().
		Update(gomock.Any(), "d1", want).
		Return(domain.Dish{ID: "d1", Name: "Taco", Description: "Spicy", Price: 8, ImageURL: "u"}, nil)

	body := `{"data":{"id":"d1","name":"Taco","description":"Spicy","price":8,"image_url":"u"}}`
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/dishes/d1", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"data":{"id":"d1","name":"Taco","description":"Spicy","price":8,"image_url":"u"}}`, w.Body.String())
}

func TestServer_DecodeErrorSkipsService(t *testing.T) {
	server, _, orders := newMockServer(t)
	orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`[`)))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_IdempotentReplaySkipsService(t *testing.T) {
	server, _, orders := newMockServer(t)
	created := domain.Order{ID: "o1", DeliverTo: "x", MobileNumber: "1", Status: domain.StatusPending}
	orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil).Times(1)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"data":{}}`))
		req.Header.Set(idempotencyHeader, "same")
		w := httptest.NewRecorder()
		server.Handler().ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, created, decode[domain.Order](t, w))
	}
}

func TestNew_RejectsBadCacheSize(t *testing.T) {
	_, err := New(nil, nil, 0, zap.NewNop(), nil)
	require.Error(t, err)
}
