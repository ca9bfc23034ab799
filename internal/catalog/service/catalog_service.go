package service

import (
	"context"

	"essenza/internal/domain"
	apperrors "essenza/internal/errors"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
}

type CatalogService struct {
	repo Repository
}

func NewService(repo Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListPerfumes(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// FindByID resolves a perfume id against the catalog by string equality.
func (s *CatalogService) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.MatchesID(id) {
			return &p, nil
		}
	}

	return nil, apperrors.NewProductNotFoundError(id)
}
