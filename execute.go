package main

import (
	"errors"
	"fmt"
	"io"

	"minirel/table"
)

// ErrDuplicateKey is the error value for an id that already exists.
// executeInsert does not return it; it reports a duplicate as
// ExecuteDuplicateKey.
var ErrDuplicateKey = errors.New("duplicate key")

// ExecuteResult reports the outcome of running a prepared statement.
type ExecuteResult int

const (
	ExecuteSuccess ExecuteResult = iota
	ExecuteDuplicateKey
)

func executeStatement(stmt *Statement, tb *table.Table, w io.Writer) ExecuteResult {
	switch stmt.Type {
	case StatementInsert:
		return executeInsert(stmt, tb)
	case StatementSelect:
		return executeSelect(tb, w)
	default:
		panic("main: unreachable statement type")
	}
}

// executeInsert looks up the row's key and rejects it as a duplicate before
// any mutation happens — Tree.Insert itself trusts the caller on this.
func executeInsert(stmt *Statement, tb *table.Table) ExecuteResult {
	row := stmt.RowToInsert
	cursor := tb.Tree.Find(row.ID)
	if cursor.IsDuplicate(row.ID) {
		return ExecuteDuplicateKey
	}
	tb.Tree.Insert(cursor, row.ID, row)
	return ExecuteSuccess
}

func executeSelect(tb *table.Table, w io.Writer) ExecuteResult {
	cursor := tb.Tree.Start()
	for !cursor.EndOfTable {
		row := cursor.Value()
		fmt.Fprintf(w, "(%d, %s, %s)\n", row.ID, row.Username, row.Email)
		cursor.Advance()
	}
	return ExecuteSuccess
}
