package tinytindb

import (
	"fmt"

	"github.com/kumarUjjawal/tinytindb/model"
)

var (
	ErrUsernameTooLong = model.ErrUsernameTooLong
	ErrEmailTooLong    = model.ErrEmailTooLong

	ErrTableFull       = addPrefix("table is full")
	ErrIndexOutOfRange = addPrefix("row index out of range")
	ErrPageDirRejected = addPrefix("page directory rejected page")

	ErrMissingRow       = addPrefix("insert statement without row")
	ErrUnknownStatement = addPrefix("unknown statement type")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("tinytindb err: %s", errStr)
}
