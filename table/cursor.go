package table

// Cursor is a (page, cell) position inside the tree. It is the only handle
// used to read or insert rows; it is single-use and not invalidated after a
// mutation because the engine runs one statement to completion before the
// next is read.
type Cursor struct {
	tree *Tree

	PageNum    uint32
	CellNum    uint32
	EndOfTable bool
}

// Value returns the row stored at the cursor's current position.
func (c *Cursor) Value() Row {
	node := c.tree.pager.GetPage(c.PageNum)
	return DeserializeRow(leafValue(node.Data[:], c.CellNum))
}

// KeyAt returns the key stored at the cursor's current cell.
func (c *Cursor) KeyAt() uint32 {
	node := c.tree.pager.GetPage(c.PageNum)
	return leafKey(node.Data[:], c.CellNum)
}

// IsDuplicate reports whether the cursor is positioned at an existing cell
// whose key equals key — the executor must check this before Insert, since
// Insert itself performs no duplicate check.
func (c *Cursor) IsDuplicate(key uint32) bool {
	node := c.tree.pager.GetPage(c.PageNum)
	return c.CellNum < leafNumCells(node.Data[:]) && leafKey(node.Data[:], c.CellNum) == key
}

// Advance moves the cursor to the next cell in key order, following the
// leaf sibling chain when the current leaf is exhausted.
func (c *Cursor) Advance() {
	node := c.tree.pager.GetPage(c.PageNum)
	c.CellNum++
	if c.CellNum >= leafNumCells(node.Data[:]) {
		next := leafNextLeaf(node.Data[:])
		if next == 0 {
			c.EndOfTable = true
		} else {
			c.PageNum = next
			c.CellNum = 0
		}
	}
}
