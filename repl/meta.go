package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/kumarUjjawal/tinytindb/model"
)

var ErrUnrecognizedCommand = errors.New("unrecognized meta command")

type MetaResult uint8

const (
	MetaSuccess MetaResult = iota
	// MetaExit ask the session loop to stop
	MetaExit
)

const metaPrefix = '.'

func isMetaCommand(line string) bool {
	return len(line) > 0 && line[0] == metaPrefix
}

// DoMetaCommand run a dot command, output goes to w
func DoMetaCommand(line string, w io.Writer) (MetaResult, error) {
	switch line {
	case ".exit":
		return MetaExit, nil
	case ".constants":
		printConstants(w)
		return MetaSuccess, nil
	case ".help":
		printHelp(w)
		return MetaSuccess, nil
	default:
		return MetaSuccess, ErrUnrecognizedCommand
	}
}

func printConstants(w io.Writer) {
	fmt.Fprintln(w, "Constants:")
	fmt.Fprintf(w, "ROW_SIZE: %d\n", model.RowSize)
	fmt.Fprintf(w, "PAGE_SIZE: %d\n", model.PageSize)
	fmt.Fprintf(w, "ROWS_PER_PAGE: %d\n", model.RowsPerPage)
	fmt.Fprintf(w, "TABLE_MAX_PAGES: %d\n", model.TableMaxPages)
	fmt.Fprintf(w, "TABLE_MAX_ROWS: %d\n", model.TableMaxRows)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  insert <id> <username> <email>")
	fmt.Fprintln(w, "  select")
	fmt.Fprintln(w, "  .constants")
	fmt.Fprintln(w, "  .help")
	fmt.Fprintln(w, "  .exit")
}
