package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFieldError_Creation(t *testing.T) {
	err := NewMissingFieldError("quantity", "phone")

	assert.NotNil(t, err)
	assert.Equal(t, []string{"quantity", "phone"}, err.Fields)
	assert.Equal(t, "missing required fields: quantity, phone", err.Error())
}

func TestMissingFieldError_IsMissingFieldError(t *testing.T) {
	err := NewMissingFieldError("name")

	me, ok := IsMissingFieldError(err)
	assert.True(t, ok)
	assert.NotNil(t, me)
	assert.Equal(t, []string{"name"}, me.Fields)
}

func TestMissingFieldError_IsMissingFieldError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	me, ok := IsMissingFieldError(err)
	assert.False(t, ok)
	assert.Nil(t, me)
}

func TestProductNotFoundError_Creation(t *testing.T) {
	err := NewProductNotFoundError("99")

	assert.Equal(t, "99", err.PerfumeID)
	assert.Equal(t, `perfume with id "99" not found`, err.Error())
}

func TestProductNotFoundError_IsProductNotFoundError(t *testing.T) {
	err := NewProductNotFoundError("7")

	pe, ok := IsProductNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, "7", pe.PerfumeID)

	_, ok = IsProductNotFoundError(errors.New("other"))
	assert.False(t, ok)
}

func TestStorageWriteError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageWriteError("saving order store", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "saving order store")
	assert.Contains(t, err.Error(), "disk full")
}

func TestStorageWriteError_NilCause(t *testing.T) {
	err := NewStorageWriteError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestStorageWriteError_IsStorageWriteError(t *testing.T) {
	err := NewStorageWriteError("boom", nil)

	se, ok := IsStorageWriteError(err)
	assert.True(t, ok)
	assert.NotNil(t, se)

	_, ok = IsStorageWriteError(errors.New("other"))
	assert.False(t, ok)
}

func TestCatalogReadError_Unwrap(t *testing.T) {
	cause := errors.New("no such file")
	err := NewCatalogReadError("reading catalog file", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "reading catalog file")
	assert.Contains(t, err.Error(), "no such file")

	ce, ok := IsCatalogReadError(err)
	assert.True(t, ok)
	assert.Equal(t, cause, ce.Cause)
}

func TestAccessDeniedError(t *testing.T) {
	err := NewAccessDeniedError("access denied")

	assert.Equal(t, "access denied", err.Error())

	ae, ok := IsAccessDeniedError(err)
	assert.True(t, ok)
	assert.NotNil(t, ae)

	_, ok = IsAccessDeniedError(errors.New("other"))
	assert.False(t, ok)
}

func TestStoreCorruptError(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	err := NewStoreCorruptError("opening order store", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "opening order store")

	se, ok := IsStoreCorruptError(err)
	assert.True(t, ok)
	assert.Equal(t, cause, se.Cause)

	_, ok = IsStoreCorruptError(errors.New("other"))
	assert.False(t, ok)
}
