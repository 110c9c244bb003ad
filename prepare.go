package main

import (
	"errors"
	"strconv"
	"strings"

	"minirel/table"
)

var (
	// ErrUnrecognizedStatement means the input doesn't start with a keyword
	// this dialect knows.
	ErrUnrecognizedStatement = errors.New("unrecognized statement")
	// ErrSyntax means the keyword was recognized but the arguments don't
	// parse.
	ErrSyntax = errors.New("syntax error")
	// ErrNegativeID means an insert's id parsed but was negative.
	ErrNegativeID = errors.New("id must be positive")
)

// prepareStatement parses input into stmt. It never mutates the table —
// every error here is reported to the user with no state change.
func prepareStatement(input string, stmt *Statement) error {
	switch {
	case strings.HasPrefix(input, "insert"):
		return prepareInsert(input, stmt)
	case input == "select":
		stmt.Type = StatementSelect
		return nil
	default:
		return ErrUnrecognizedStatement
	}
}

func prepareInsert(input string, stmt *Statement) error {
	stmt.Type = StatementInsert

	parts := strings.Fields(input)
	if len(parts) != 4 {
		return ErrSyntax
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ErrSyntax
	}
	if id < 0 {
		return ErrNegativeID
	}

	row, err := table.NewRow(uint32(id), parts[2], parts[3])
	if err != nil {
		return err
	}
	stmt.RowToInsert = row
	return nil
}
