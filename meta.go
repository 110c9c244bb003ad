package main

import (
	"fmt"
	"io"
	"os"

	"minirel/internal/dbfatal"
	"minirel/table"
)

// MetaCommandResult reports whether a leading-dot command was recognized.
type MetaCommandResult int

const (
	MetaCommandSuccess MetaCommandResult = iota
	MetaCommandUnrecognizedCommand
)

// doMetaCommand handles input beginning with ".". .exit flushes and exits
// the process directly, since there is no further statement to execute.
func doMetaCommand(input string, tb *table.Table, w io.Writer) MetaCommandResult {
	switch input {
	case ".exit":
		if err := tb.Close(); err != nil {
			dbfatal.Wrap(err, "close database file")
		}
		os.Exit(0)
	case ".btree":
		fmt.Fprintln(w, "Tree:")
		tb.Tree.PrintTree(w, 0, 0)
	case ".constants":
		fmt.Fprintln(w, "Constants:")
		table.PrintConstants(w)
	default:
		return MetaCommandUnrecognizedCommand
	}
	return MetaCommandSuccess
}
