package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"essenza/internal/domain"
	apperrors "essenza/internal/errors"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// SheetName is the one table the store workbook holds.
const SheetName = "Orders"

// SheetRepository persists orders in a single xlsx workbook on local disk.
// Every append reopens the workbook, writes one row, and rewrites the whole
// file. Appends are serialized behind a mutex; the file format has no
// concurrent-writer protection of its own.
type SheetRepository struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

func NewSheetRepository(path string, logger *zap.Logger) *SheetRepository {
	return &SheetRepository{path: path, logger: logger}
}

// Path returns the store file location, for the download endpoint.
func (r *SheetRepository) Path() string {
	return r.path
}

// EnsureStore makes sure a valid store exists at the repository path. A
// missing, unreadable, or differently shaped file is replaced with a fresh
// workbook holding only the canonical header row. This repair is
// destructive: prior malformed content is discarded, not migrated.
// Idempotent on a valid store.
func (r *SheetRepository) EnsureStore(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.validate(); err != nil {
		if corrupt, ok := apperrors.IsStoreCorruptError(err); ok {
			r.logger.Warn("order store invalid, recreating",
				zap.String("path", r.path),
				zap.Error(corrupt),
			)
		}
		return r.create()
	}

	return nil
}

func (r *SheetRepository) validate() error {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return apperrors.NewStoreCorruptError("opening order store", err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(SheetName)
	if err != nil {
		return apperrors.NewStoreCorruptError("inspecting order store", err)
	}
	if idx < 0 {
		return apperrors.NewStoreCorruptError("order store has no Orders sheet", nil)
	}

	return nil
}

func (r *SheetRepository) create() error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(SheetName); err != nil {
		return apperrors.NewStorageWriteError("creating Orders sheet", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return apperrors.NewStorageWriteError("removing default sheet", err)
	}
	if err := writeHeader(f, 0); err != nil {
		return err
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.NewStorageWriteError("creating store directory", err)
		}
	}
	if err := f.SaveAs(r.path); err != nil {
		return apperrors.NewStorageWriteError("writing order store", err)
	}

	r.logger.Info("order store created", zap.String("path", r.path))
	return nil
}

// Append stamps the draft with the current wall-clock time, writes it as one
// row, and persists the whole workbook before returning. The sheet's header
// is re-checked on every write and reset to the canonical columns when its
// width has drifted, so a manually edited file cannot bend the schema.
func (r *SheetRepository) Append(ctx context.Context, draft domain.OrderDraft) (*domain.PersistedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, apperrors.NewStorageWriteError("opening order store", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, apperrors.NewStorageWriteError("reading order store", err)
	}

	if len(rows) == 0 || len(rows[0]) != len(domain.OrderColumns) {
		oldWidth := 0
		if len(rows) > 0 {
			oldWidth = len(rows[0])
		}
		if err := writeHeader(f, oldWidth); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			rows = [][]string{domain.OrderColumns}
		}
	}

	order := draft.Stamped(time.Now())

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return nil, apperrors.NewStorageWriteError("locating append row", err)
	}
	row := make([]interface{}, 0, len(domain.OrderColumns))
	for _, value := range order.Row() {
		row = append(row, value)
	}
	if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
		return nil, apperrors.NewStorageWriteError("writing order row", err)
	}

	if err := f.Save(); err != nil {
		return nil, apperrors.NewStorageWriteError("saving order store", err)
	}

	return &order, nil
}

// writeHeader sets row 1 to the canonical columns. oldWidth is the width the
// header had before; any surplus cells beyond the canonical seven are blanked
// so a drifted wider header cannot keep stale labels.
func writeHeader(f *excelize.File, oldWidth int) error {
	width := len(domain.OrderColumns)
	if oldWidth > width {
		width = oldWidth
	}

	header := make([]interface{}, 0, width)
	for _, col := range domain.OrderColumns {
		header = append(header, col)
	}
	for len(header) < width {
		header = append(header, "")
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return apperrors.NewStorageWriteError("writing header row", err)
	}
	return nil
}
