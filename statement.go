package main

import "minirel/table"

// StatementType distinguishes the two SQL-like statements this dialect
// supports.
type StatementType int

const (
	StatementInsert StatementType = iota
	StatementSelect
)

// Statement is a parsed (but not yet executed) line of input.
type Statement struct {
	Type        StatementType
	RowToInsert table.Row
}
