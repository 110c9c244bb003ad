package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"minirel/internal/dbfatal"
	"minirel/table"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Must supply a database filename.")
		os.Exit(1)
	}

	tb, err := table.Open(os.Args[1])
	if err != nil {
		dbfatal.Wrap(err, "open database file")
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		printPrompt()
		input, err := readInput(reader)
		if err != nil {
			os.Exit(0)
		}

		if strings.HasPrefix(input, ".") {
			if doMetaCommand(input, tb, os.Stdout) == MetaCommandUnrecognizedCommand {
				fmt.Printf("Unrecognized command '%s'\n", input)
			}
			continue
		}

		var stmt Statement
		if err := prepareStatement(input, &stmt); err != nil {
			printPrepareError(err, input)
			continue
		}

		switch executeStatement(&stmt, tb, os.Stdout) {
		case ExecuteSuccess:
			fmt.Println("Executed.")
		case ExecuteDuplicateKey:
			fmt.Println("Error: Duplicate key.")
		}
	}
}

func printPrepareError(err error, input string) {
	switch {
	case errors.Is(err, ErrUnrecognizedStatement):
		fmt.Printf("Unrecognized keyword at start of '%s'\n", input)
	case errors.Is(err, ErrSyntax):
		fmt.Println("Syntax error. Could not parse statement.")
	case errors.Is(err, ErrNegativeID):
		fmt.Println("ID must be positive.")
	case errors.Is(err, table.ErrStringTooLong):
		fmt.Println("String is too long.")
	default:
		fmt.Println(err)
	}
}
