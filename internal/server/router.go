package server

import (
	"encoding/json"
	"net/http"

	catalogctrl "essenza/internal/catalog/controller"
	orderctrl "essenza/internal/order/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const version = "1.0.0"

func NewRouter(catalogCtrl *catalogctrl.Controller, orderCtrl *orderctrl.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", handleRoot(logger))
	r.Get("/perfumes", catalogCtrl.ListPerfumes)
	r.Post("/order-perfume", orderCtrl.PlaceOrder)
	r.Get("/orders", orderCtrl.DownloadOrders)

	return r
}

func handleRoot(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		err := json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "perfume store API is running",
			"version": version,
		})
		if err != nil {
			logger.Error("failed to encode response", zap.Error(err))
		}
	}
}
