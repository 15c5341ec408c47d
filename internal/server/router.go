package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	clientctrl "comanda/internal/client/controller"
	orderctrl "comanda/internal/order/controller"
)

func NewRouter(clients *clientctrl.ClientController, orders *orderctrl.OrderController, staticDir string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/clients", clients.HandleListClients)
	r.Post("/clients", clients.HandleCreateClient)

	r.Post("/orders", orders.HandleCreateOrder)
	r.Get("/orders/{clientId}", orders.HandleListOrders)
	r.Put("/orders/{id}/status", orders.HandleAdvanceStatus)

	// Browser front-end, served from disk when present.
	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
