package repository

import (
	"context"
	"encoding/json"
	"os"

	"essenza/internal/domain"
	apperrors "essenza/internal/errors"
)

// FileRepository reads the product catalog from a JSON document on local
// disk. The file is the source of record and is read on every call; there
// is no cache and no mutation.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) List(ctx context.Context) ([]domain.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, apperrors.NewCatalogReadError("reading catalog file", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, apperrors.NewCatalogReadError("parsing catalog file", err)
	}

	return products, nil
}
