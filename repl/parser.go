package repl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kumarUjjawal/tinytindb"
	"github.com/kumarUjjawal/tinytindb/model"
)

var (
	ErrUnrecognizedStatement = errors.New("unrecognized statement")
	ErrSyntax                = errors.New("syntax error")
	ErrNegativeID            = errors.New("id must be positive")
	ErrStringTooLong         = errors.New("string is too long")
)

const (
	keywordInsert = "insert"
	keywordSelect = "select"
)

// PrepareStatement turn one input line into a statement.
// insert <id> <username> <email> | select
func PrepareStatement(line string) (*tinytindb.Statement, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil, ErrSyntax
	}

	switch args[0] {
	case keywordInsert:
		return prepareInsert(args[1:])
	case keywordSelect:
		return &tinytindb.Statement{Type: tinytindb.StatementSelect}, nil
	default:
		return nil, ErrUnrecognizedStatement
	}
}

func prepareInsert(args []string) (*tinytindb.Statement, error) {
	if len(args) < 3 {
		return nil, ErrSyntax
	}

	if strings.HasPrefix(args[0], "-") {
		return nil, ErrNegativeID
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return nil, ErrSyntax
	}

	row, err := model.NewRow(uint32(id), args[1], args[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStringTooLong, err)
	}

	return &tinytindb.Statement{
		Type:        tinytindb.StatementInsert,
		RowToInsert: row,
	}, nil
}
