package table

import "minirel/pager"

// Table is the top-level handle the REPL holds: a pager over one file and
// the B+ tree index built on top of it.
type Table struct {
	Pager *pager.Pager
	Tree  *Tree
}

// Open opens (or creates) the database file at path and initializes the
// tree, installing an empty root leaf on page 0 for a brand-new file.
func Open(path string) (*Table, error) {
	pg, err := pager.Open(path)
	if err != nil {
		return nil, err
	}
	return &Table{Pager: pg, Tree: NewTree(pg)}, nil
}

// Close flushes every cached page and closes the file.
func (tb *Table) Close() error {
	return tb.Pager.Close()
}
