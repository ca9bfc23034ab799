package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"essenza/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	ListPerfumes(ctx context.Context) ([]domain.Product, error)
}

type Controller struct {
	service CatalogService
	logger  *zap.Logger
}

func NewController(service CatalogService, logger *zap.Logger) *Controller {
	return &Controller{service: service, logger: logger}
}

type perfumeDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Description string  `json:"description"`
	Size        string  `json:"size"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

type listResponse struct {
	Success bool         `json:"success"`
	Data    []perfumeDTO `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Controller) ListPerfumes(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	products, err := c.service.ListPerfumes(r.Context())
	if err != nil {
		logger.Error("reading catalog failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	perfumes := make([]perfumeDTO, 0, len(products))
	for _, p := range products {
		perfumes = append(perfumes, perfumeDTO{
			ID:          string(p.ID),
			Name:        p.Name,
			Brand:       p.Brand,
			Description: p.Description,
			Size:        p.Size,
			Category:    p.Category,
			Price:       p.Price.InexactFloat64(),
		})
	}

	c.writeJSON(w, http.StatusOK, listResponse{Success: true, Data: perfumes})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
