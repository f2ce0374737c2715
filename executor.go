package tinytindb

import "github.com/kumarUjjawal/tinytindb/model"

type StatementType uint8

const (
	StatementInsert StatementType = iota
	StatementSelect
)

func (st StatementType) String() string {
	switch st {
	case StatementInsert:
		return "insert"
	case StatementSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Statement is a parsed command, RowToInsert is only set for inserts
type Statement struct {
	Type        StatementType
	RowToInsert *model.Row
}

// Execute apply one statement to the table.
// select deliver the rows to fn, which may be nil.
func Execute(stmt *Statement, table *Table, fn RowHandler) error {
	switch stmt.Type {
	case StatementInsert:
		if stmt.RowToInsert == nil {
			return ErrMissingRow
		}
		return table.Insert(stmt.RowToInsert)
	case StatementSelect:
		return table.Select(fn)
	default:
		return ErrUnknownStatement
	}
}
