package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kumarUjjawal/tinytindb"
	"github.com/kumarUjjawal/tinytindb/model"
	"go.uber.org/zap"
)

// LineReader is satisfied by *readline.Instance
type LineReader interface {
	Readline() (string, error)
}

// Session is the read-eval-print loop around a single table
type Session struct {
	table  *tinytindb.Table
	out    io.Writer
	logger *zap.Logger
}

func NewSession(table *tinytindb.Table, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		table:  table,
		out:    out,
		logger: logger,
	}
}

// Run read lines until EOF or .exit
func (s *Session) Run(r LineReader) error {
	for {
		line, err := r.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if s.Handle(line) {
			s.logger.Info("session finished", zap.Uint32("rows", s.table.RowCount()))
			return nil
		}
	}
}

// Handle process one line and report whether the session should stop
func (s *Session) Handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if isMetaCommand(line) {
		res, err := DoMetaCommand(line, s.out)
		if err != nil {
			fmt.Fprintf(s.out, "Unrecognized command '%s'.\n", line)
			return false
		}
		return res == MetaExit
	}

	stmt, err := PrepareStatement(line)
	if err != nil {
		s.printPrepareError(line, err)
		return false
	}

	err = tinytindb.Execute(stmt, s.table, s.printRow)
	if err != nil {
		s.logger.Debug("execute failed", zap.Stringer("statement", stmt.Type), zap.Error(err))
		if errors.Is(err, tinytindb.ErrTableFull) {
			fmt.Fprintln(s.out, "Error: Table full.")
		} else {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		return false
	}

	fmt.Fprintln(s.out, "Executed.")
	return false
}

func (s *Session) printPrepareError(line string, err error) {
	switch {
	case errors.Is(err, ErrUnrecognizedStatement):
		fmt.Fprintf(s.out, "Unrecognized keyword at start of '%s'.\n", line)
	case errors.Is(err, ErrNegativeID):
		fmt.Fprintln(s.out, "ID must be positive.")
	case errors.Is(err, ErrStringTooLong):
		fmt.Fprintln(s.out, "String is too long.")
	default:
		fmt.Fprintln(s.out, "Syntax error. Could not parse statement.")
	}
}

func (s *Session) printRow(row *model.Row) error {
	_, err := fmt.Fprintf(s.out, "(%d, %s, %s)\n", row.ID, row.Username, row.Email)
	return err
}
