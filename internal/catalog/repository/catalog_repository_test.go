package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	apperrors "essenza/internal/errors"

	"github.com/stretchr/testify/assert"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "perfumes.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing catalog fixture: %v", err)
	}
	return path
}

func TestList_ReadsProducts(t *testing.T) {
	path := writeCatalog(t, `[
		{"id":1,"name":"Rose","brand":"Maison","description":"floral","size":"50ml","category":"floral","price":49.9},
		{"id":"2","name":"Oud","brand":"Atelier","description":"woody","size":"100ml","category":"oriental","price":120}
	]`)
	repo := NewFileRepository(path)

	products, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.True(t, products[0].MatchesID("1"))
	assert.True(t, products[1].MatchesID("2"))
	assert.Equal(t, "Oud", products[1].Name)
}

func TestList_MissingFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "absent.json"))

	products, err := repo.List(context.Background())

	assert.Nil(t, products)
	_, ok := apperrors.IsCatalogReadError(err)
	assert.True(t, ok)
}

func TestList_InvalidJSON(t *testing.T) {
	path := writeCatalog(t, `{"not":"an array"`)
	repo := NewFileRepository(path)

	_, err := repo.List(context.Background())

	ce, ok := apperrors.IsCatalogReadError(err)
	assert.True(t, ok)
	assert.Contains(t, ce.Error(), "parsing catalog file")
}

func TestList_RereadsEveryCall(t *testing.T) {
	path := writeCatalog(t, `[{"id":1,"name":"Rose","price":49.9}]`)
	repo := NewFileRepository(path)

	first, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	err = os.WriteFile(path, []byte(`[{"id":1,"name":"Rose","price":49.9},{"id":2,"name":"Oud","price":120}]`), 0o644)
	assert.NoError(t, err)

	second, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, second, 2)
}
