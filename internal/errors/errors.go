package errors

import (
	"fmt"
	"strings"
)

type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func NewMissingFieldError(fields ...string) *MissingFieldError {
	return &MissingFieldError{Fields: fields}
}

func IsMissingFieldError(err error) (*MissingFieldError, bool) {
	if me, ok := err.(*MissingFieldError); ok {
		return me, true
	}
	return nil, false
}

type ProductNotFoundError struct {
	PerfumeID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("perfume with id %q not found", e.PerfumeID)
}

func NewProductNotFoundError(perfumeID string) *ProductNotFoundError {
	return &ProductNotFoundError{PerfumeID: perfumeID}
}

func IsProductNotFoundError(err error) (*ProductNotFoundError, bool) {
	if pe, ok := err.(*ProductNotFoundError); ok {
		return pe, true
	}
	return nil, false
}

type StorageWriteError struct {
	Message string
	Cause   error
}

func (e *StorageWriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StorageWriteError) Unwrap() error {
	return e.Cause
}

func NewStorageWriteError(message string, cause error) *StorageWriteError {
	return &StorageWriteError{Message: message, Cause: cause}
}

func IsStorageWriteError(err error) (*StorageWriteError, bool) {
	if se, ok := err.(*StorageWriteError); ok {
		return se, true
	}
	return nil, false
}

type CatalogReadError struct {
	Message string
	Cause   error
}

func (e *CatalogReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CatalogReadError) Unwrap() error {
	return e.Cause
}

func NewCatalogReadError(message string, cause error) *CatalogReadError {
	return &CatalogReadError{Message: message, Cause: cause}
}

func IsCatalogReadError(err error) (*CatalogReadError, bool) {
	if ce, ok := err.(*CatalogReadError); ok {
		return ce, true
	}
	return nil, false
}

type AccessDeniedError struct {
	Message string
}

func (e *AccessDeniedError) Error() string {
	return e.Message
}

func NewAccessDeniedError(message string) *AccessDeniedError {
	return &AccessDeniedError{Message: message}
}

func IsAccessDeniedError(err error) (*AccessDeniedError, bool) {
	if ae, ok := err.(*AccessDeniedError); ok {
		return ae, true
	}
	return nil, false
}

// StoreCorruptError only occurs at startup, while validating an existing
// store file. It is recovered by recreating the store and never reaches a
// request.
type StoreCorruptError struct {
	Message string
	Cause   error
}

func (e *StoreCorruptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StoreCorruptError) Unwrap() error {
	return e.Cause
}

func NewStoreCorruptError(message string, cause error) *StoreCorruptError {
	return &StoreCorruptError{Message: message, Cause: cause}
}

func IsStoreCorruptError(err error) (*StoreCorruptError, bool) {
	if se, ok := err.(*StoreCorruptError); ok {
		return se, true
	}
	return nil, false
}
