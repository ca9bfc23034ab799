package usecase

import (
	"context"

	"essenza/internal/domain"
	apperrors "essenza/internal/errors"

	"go.uber.org/zap"
)

type CatalogService interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

type OrderRepository interface {
	Append(ctx context.Context, draft domain.OrderDraft) (*domain.PersistedOrder, error)
}

// Notifier dispatches best-effort. Implementations capture their own
// failures; nothing a notifier does can fail an order that is already on
// disk.
type Notifier interface {
	Notify(order domain.PersistedOrder)
}

type PlaceOrderUseCase struct {
	catalog  CatalogService
	orders   OrderRepository
	notifier Notifier
	logger   *zap.Logger
}

func NewPlaceOrderUseCase(
	catalog CatalogService,
	orders OrderRepository,
	notifier Notifier,
	logger *zap.Logger,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		catalog:  catalog,
		orders:   orders,
		notifier: notifier,
		logger:   logger,
	}
}

// PlaceOrder validates one order line, resolves it against the catalog,
// appends it durably, and hands the persisted order to the notifier.
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.PersistedOrder, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, apperrors.NewMissingFieldError(missing...)
	}

	product, err := uc.catalog.FindByID(ctx, string(req.PerfumeID))
	if err != nil {
		return nil, err
	}

	draft := domain.OrderDraft{
		Name:            string(req.Name),
		Phone:           string(req.Phone),
		PerfumeID:       string(req.PerfumeID),
		PerfumeName:     product.Name,
		Quantity:        string(req.Quantity),
		DeliveryAddress: string(req.DeliveryAddress),
	}

	order, err := uc.orders.Append(ctx, draft)
	if err != nil {
		uc.logger.Error("persisting order failed",
			zap.String("perfumeId", draft.PerfumeID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Info("order persisted",
		zap.String("perfumeId", order.PerfumeID),
		zap.String("perfumeName", order.PerfumeName),
		zap.String("quantity", order.Quantity),
	)

	uc.notifier.Notify(*order)

	return order, nil
}
