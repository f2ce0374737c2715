package tinytindb

import (
	"errors"

	"github.com/kumarUjjawal/tinytindb/model"
	"go.uber.org/zap"
)

// Table is an append-only row store made of lazily allocated pages.
// rows occupy [0, numRows) without gaps, row i lives in page i/RowsPerPage.
// a Table must not be shared between goroutines.
type Table struct {
	numRows uint32

	options *options
}

// RowHandler receive the decoded rows of a scan, a non-nil error stop the scan
type RowHandler func(row *model.Row) error

func NewTable(opts ...Option) *Table {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Table{
		options: options,
	}
}

func (t *Table) RowCount() uint32 {
	return t.numRows
}

// PageCount return the number of pages allocated so far
func (t *Table) PageCount() int {
	return t.options.pageDir.Size()
}

// Insert encode the row into the next free slot
func (t *Table) Insert(row *model.Row) error {
	if err := row.Validate(); err != nil {
		t.reject(err)
		return err
	}

	slot, err := t.appendSlot()
	if err != nil {
		t.reject(err)
		return err
	}

	if err = t.options.codec.MarshalRow(row, slot); err != nil {
		t.reject(err)
		return err
	}

	// only count the row once it is in the slot
	t.numRows++
	t.options.metrics.RowsInserted.Inc()
	t.options.logger.Debug("row inserted",
		zap.Uint32("id", row.ID),
		zap.Uint32("rows", t.numRows),
	)
	return nil
}

// Select decode every row in insertion order
func (t *Table) Select(fn RowHandler) error {
	t.options.metrics.Selects.Inc()

	for i := uint32(0); i < t.numRows; i++ {
		slot, err := t.slot(i)
		if err != nil {
			return err
		}

		row := new(model.Row)
		if err = t.options.codec.UnmarshalRow(slot, row); err != nil {
			return err
		}
		t.options.metrics.RowsScanned.Inc()

		if fn == nil {
			continue
		}
		if err = fn(row); err != nil {
			return err
		}
	}

	return nil
}

// Rows collect the result of Select
func (t *Table) Rows() ([]*model.Row, error) {
	rows := make([]*model.Row, 0, t.numRows)
	err := t.Select(func(row *model.Row) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Close drop every page, the table is empty afterwards
func (t *Table) Close() error {
	t.numRows = 0
	t.options.metrics.PagesAllocated.Set(0)
	return t.options.pageDir.Close()
}

// appendSlot return the slot of the next row without counting it
func (t *Table) appendSlot() ([]byte, error) {
	if t.numRows >= model.TableMaxRows {
		return nil, ErrTableFull
	}
	return t.slot(t.numRows)
}

func (t *Table) slot(rowNum uint32) ([]byte, error) {
	if rowNum >= model.TableMaxRows {
		return nil, ErrIndexOutOfRange
	}

	pageNum := rowNum / model.RowsPerPage
	page := t.options.pageDir.Get(pageNum)
	if page == nil {
		page = model.NewPage(pageNum)
		if !t.options.pageDir.Put(pageNum, page) {
			return nil, ErrPageDirRejected
		}
		t.options.metrics.PagesAllocated.Set(float64(t.options.pageDir.Size()))
		t.options.logger.Debug("page allocated", zap.Uint32("page", pageNum))
	}

	return page.Slot(int(rowNum % model.RowsPerPage)), nil
}

func (t *Table) reject(err error) {
	reason := rejectOther
	switch {
	case errors.Is(err, ErrTableFull):
		reason = rejectTableFull
	case errors.Is(err, ErrUsernameTooLong), errors.Is(err, ErrEmailTooLong):
		reason = rejectEncode
	}
	t.options.metrics.InsertsRejected.WithLabelValues(reason).Inc()
	t.options.logger.Warn("insert rejected", zap.Error(err), zap.Uint32("rows", t.numRows))
}
