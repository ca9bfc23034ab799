package catalog

import (
	"essenza/internal/catalog/controller"
	"essenza/internal/catalog/repository"
	"essenza/internal/catalog/service"

	"go.uber.org/zap"
)

// NewModule wires the catalog feature. The service is returned alongside the
// controller because order validation resolves perfume ids through it.
func NewModule(catalogPath string, logger *zap.Logger) (*controller.Controller, *service.CatalogService) {
	repo := repository.NewFileRepository(catalogPath)
	svc := service.NewService(repo)
	ctrl := controller.NewController(svc, logger)
	return ctrl, svc
}
