package controller

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"os"

	"essenza/internal/domain"
	apperrors "essenza/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const storeContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PlaceOrderUseCase interface {
	PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.PersistedOrder, error)
}

type Controller struct {
	useCase   PlaceOrderUseCase
	storePath string
	accessKey string
	logger    *zap.Logger
}

func NewController(useCase PlaceOrderUseCase, storePath, accessKey string, logger *zap.Logger) *Controller {
	return &Controller{
		useCase:   useCase,
		storePath: storePath,
		accessKey: accessKey,
		logger:    logger,
	}
}

type orderResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    *domain.PersistedOrder `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

func (c *Controller) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, orderResponse{
			Success: false,
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.useCase.PlaceOrder(r.Context(), req)
	if err != nil {
		c.handleOrderError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, orderResponse{
		Success: true,
		Message: "order placed successfully",
		Data:    order,
	})
}

func (c *Controller) handleOrderError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if me, ok := apperrors.IsMissingFieldError(err); ok {
		logger.Warn("order request incomplete", zap.Strings("fields", me.Fields))
		c.writeJSON(w, http.StatusBadRequest, orderResponse{Success: false, Message: me.Error()})
		return
	}

	if pe, ok := apperrors.IsProductNotFoundError(err); ok {
		logger.Warn("unknown perfume id", zap.String("perfumeId", pe.PerfumeID))
		c.writeJSON(w, http.StatusNotFound, orderResponse{Success: false, Message: pe.Error()})
		return
	}

	if se, ok := apperrors.IsStorageWriteError(err); ok {
		logger.Error("order persistence failed", zap.Error(se))
		c.writeJSON(w, http.StatusInternalServerError, orderResponse{
			Success: false,
			Message: "failed to save order",
			Error:   se.Error(),
		})
		return
	}

	if ce, ok := apperrors.IsCatalogReadError(err); ok {
		logger.Error("catalog read failed", zap.Error(ce))
		c.writeJSON(w, http.StatusInternalServerError, orderResponse{Success: false, Message: ce.Error()})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, orderResponse{
		Success: false,
		Message: "an unexpected error occurred",
	})
}

// DownloadOrders streams the order store workbook to an operator holding the
// shared access key. The key check runs before anything else, so a wrong key
// learns nothing about the file.
func (c *Controller) DownloadOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.checkAccessKey(r.Header.Get("x-access-key")); err != nil {
		logger.Warn("order download denied")
		c.writeJSON(w, http.StatusForbidden, orderResponse{Success: false, Message: err.Error()})
		return
	}

	if _, err := os.Stat(c.storePath); err != nil {
		logger.Warn("order store file absent", zap.String("path", c.storePath))
		c.writeJSON(w, http.StatusNotFound, orderResponse{Success: false, Message: "no orders recorded yet"})
		return
	}

	logger.Info("order store downloaded")
	w.Header().Set("Content-Type", storeContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="orders.xlsx"`)
	http.ServeFile(w, r, c.storePath)
}

func (c *Controller) checkAccessKey(key string) error {
	// An unset server key closes the endpoint entirely.
	if c.accessKey == "" || key == "" {
		return apperrors.NewAccessDeniedError("access denied")
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(c.accessKey)) != 1 {
		return apperrors.NewAccessDeniedError("access denied")
	}
	return nil
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
