package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/TemirB/grubdash/internal/domain"
)

func (s *Server) listDishes(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, s.dishes.List(r.Context()))
}

func (s *Server) readDish(w http.ResponseWriter, r *http.Request) {
	dish, err := s.dishes.Get(r.Context(), chi.URLParam(r, "dishId"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, dish)
}

func (s *Server) createDish(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get(idempotencyHeader)
	if key != "" {
		if dish, ok := s.dishKeys.Get(key); ok {
			s.logger.Debug("Replaying dish create", zap.String("idempotency_key", key), zap.String("dish_id", dish.ID))
			writeData(w, http.StatusCreated, dish)
			return
		}
	}

	in, err := decodeData[domain.DishInput](w, r, s.maxBodyBytes)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	dish, err := s.dishes.Create(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if key != "" {
		s.dishKeys.Set(key, dish)
	}
	writeData(w, http.StatusCreated, dish)
}

func (s *Server) updateDish(w http.ResponseWriter, r *http.Request) {
	in, err := decodeData[domain.DishInput](w, r, s.maxBodyBytes)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	dish, err := s.dishes.Update(r.Context(), chi.URLParam(r, "dishId"), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, dish)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, s.orders.List(r.Context()))
}

func (s *Server) readOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.orders.Get(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, order)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get(idempotencyHeader)
	if key != "" {
		if order, ok := s.orderKeys.Get(key); ok {
			s.logger.Debug("Replaying order create", zap.String("idempotency_key", key), zap.String("order_id", order.ID))
			writeData(w, http.StatusCreated, order)
			return
		}
	}

	in, err := decodeData[domain.OrderInput](w, r, s.maxBodyBytes)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	order, err := s.orders.Create(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if key != "" {
		s.orderKeys.Set(key, order)
	}
	writeData(w, http.StatusCreated, order)
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	in, err := decodeData[domain.OrderInput](w, r, s.maxBodyBytes)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	order, err := s.orders.Update(r.Context(), chi.URLParam(r, "orderId"), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, order)
}

func (s *Server) destroyOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.orders.Delete(r.Context(), chi.URLParam(r, "orderId")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
