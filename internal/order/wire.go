package order

import (
	"essenza/internal/config"
	"essenza/internal/notification"
	"essenza/internal/order/controller"
	"essenza/internal/order/repository"
	"essenza/internal/order/usecase"

	"go.uber.org/zap"
)

// NewModule wires the order feature. The repository is returned alongside
// the controller so startup can ensure the store before serving traffic.
func NewModule(cfg *config.Config, catalog usecase.CatalogService, logger *zap.Logger) (*controller.Controller, *repository.SheetRepository) {
	repo := repository.NewSheetRepository(cfg.Store.Path, logger)
	mailer := notification.NewMailer(cfg.Mail, logger)
	uc := usecase.NewPlaceOrderUseCase(catalog, repo, mailer, logger)
	ctrl := controller.NewController(uc, repo.Path(), cfg.AccessKey, logger)
	return ctrl, repo
}
