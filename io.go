package main

import (
	"bufio"
	"fmt"
	"strings"
)

func printPrompt() {
	fmt.Print("db > ")
}

// readInput reads one line from r, stripping the trailing newline. A
// returned error (including io.EOF on Ctrl+D) means the caller should exit
// immediately without flushing.
func readInput(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
