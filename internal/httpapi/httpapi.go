package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/TemirB/grubdash/internal/cache"
	"github.com/TemirB/grubdash/internal/domain"
	"github.com/TemirB/grubdash/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type DishService interface {
	List(ctx context.Context) []domain.Dish
	Get(ctx context.Context, id string) (domain.Dish, error)
	Create(ctx context.Context, in domain.DishInput) (domain.Dish, error)
	Update(ctx context.Context, id string, in domain.DishInput) (domain.Dish, error)
}

type OrderService interface {
	List(ctx context.Context) []domain.Order
	Get(ctx context.Context, id string) (domain.Order, error)
	Create(ctx context.Context, in domain.OrderInput) (domain.Order, error)
	Update(ctx context.Context, id string, in domain.OrderInput) (domain.Order, error)
	Delete(ctx context.Context, id string) error
}

const (
	idempotencyHeader   = "Idempotency-Key"
	defaultMaxBodyBytes = 1 << 20
)

type Server struct {
	dishes    DishService
	orders    OrderService
	dishKeys  *cache.Idempotency[domain.Dish]
	orderKeys *cache.Idempotency[domain.Order]
	router    chi.Router
	logger    *zap.Logger
	metrics   observability.Metrics

	maxBodyBytes int64
}

func New(dishes DishService, orders OrderService, idempotencyCap int, logger *zap.Logger, metrics observability.Metrics) (*Server, error) {
	dishKeys, err := cache.New[domain.Dish](idempotencyCap)
	if err != nil {
		return nil, err
	}
	orderKeys, err := cache.New[domain.Order](idempotencyCap)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = observability.NewNoop()
	}

	s := &Server{
		dishes:    dishes,
		orders:    orders,
		dishKeys:  dishKeys,
		orderKeys: orderKeys,
		logger:    logger,
		metrics:   metrics,

		maxBodyBytes: defaultMaxBodyBytes,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		AccessLog(s.logger),
		ServerTimingApp(s.metrics),
		middleware.Recoverer,
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Path not found: "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, r.Method+" not allowed for "+r.URL.Path)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if snap, ok := s.metrics.(interface{ Snapshot() observability.Snapshot }); ok {
		r.Get("/metrics", func(w http.ResponseWriter, _ *http.Request) {
			writeData(w, http.StatusOK, snap.Snapshot())
		})
	}

	r.Route("/dishes", func(r chi.Router) {
		r.Get("/", s.listDishes)
		r.Post("/", s.createDish)
		r.Get("/{dishId}", s.readDish)
		r.Put("/{dishId}", s.updateDish)
	})
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", s.listOrders)
		r.Post("/", s.createOrder)
		r.Get("/{orderId}", s.readOrder)
		r.Put("/{orderId}", s.updateOrder)
		r.Delete("/{orderId}", s.destroyOrder)
	})

	s.router = r
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is canceled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("HTTP server stopped")
	return nil
}
