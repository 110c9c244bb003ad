package table

import (
	"minirel/pager"
)

// Tree is a B+ tree over uint32 keys with fixed-width row values, stored as
// one node per page inside a Pager. Page 0 is the root for the life of the
// database.
type Tree struct {
	pager       *pager.Pager
	rootPageNum uint32
}

// NewTree binds a Tree to pg, initializing page 0 as an empty root leaf if
// the file is brand new.
func NewTree(pg *pager.Pager) *Tree {
	t := &Tree{pager: pg, rootPageNum: 0}
	if pg.NumPages() == 0 {
		root := pg.GetPage(0)
		initializeLeafNode(root.Data[:])
		setNodeRoot(root.Data[:], true)
	}
	return t
}

// Find descends from the root and returns a cursor at key's insertion or
// equality position: cell_num is the first index with key_at(cell_num) >=
// key, or num_cells at the end of the leaf.
func (t *Tree) Find(key uint32) *Cursor {
	root := t.pager.GetPage(t.rootPageNum)
	if nodeType(root.Data[:]) == NodeTypeLeaf {
		return t.leafNodeFind(t.rootPageNum, key)
	}
	return t.internalNodeFind(t.rootPageNum, key)
}

func (t *Tree) leafNodeFind(pageNum uint32, key uint32) *Cursor {
	node := t.pager.GetPage(pageNum)
	numCells := leafNumCells(node.Data[:])

	minIdx, onePastMax := uint32(0), numCells
	for minIdx != onePastMax {
		idx := (minIdx + onePastMax) / 2
		keyAtIdx := leafKey(node.Data[:], idx)
		if key == keyAtIdx {
			return &Cursor{tree: t, PageNum: pageNum, CellNum: idx}
		}
		if key < keyAtIdx {
			onePastMax = idx
		} else {
			minIdx = idx + 1
		}
	}
	return &Cursor{tree: t, PageNum: pageNum, CellNum: minIdx}
}

// internalNodeFindChild returns the smallest index i such that keys[i] >=
// key; ties descend left, since keys[i] is the max key of child[i].
func internalNodeFindChild(buf []byte, key uint32) uint32 {
	numKeys := internalNumKeys(buf)
	minIdx, maxIdx := uint32(0), numKeys
	for minIdx != maxIdx {
		idx := (minIdx + maxIdx) / 2
		keyToRight := internalKey(buf, idx)
		if keyToRight >= key {
			maxIdx = idx
		} else {
			minIdx = idx + 1
		}
	}
	return minIdx
}

func (t *Tree) internalNodeFind(pageNum uint32, key uint32) *Cursor {
	node := t.pager.GetPage(pageNum)
	childIndex := internalNodeFindChild(node.Data[:], key)
	childNum := internalChild(node.Data[:], childIndex)

	child := t.pager.GetPage(childNum)
	if nodeType(child.Data[:]) == NodeTypeLeaf {
		return t.leafNodeFind(childNum, key)
	}
	return t.internalNodeFind(childNum, key)
}

// Start returns a cursor at the leftmost leaf's first cell.
func (t *Tree) Start() *Cursor {
	c := t.Find(0)
	node := t.pager.GetPage(c.PageNum)
	c.EndOfTable = leafNumCells(node.Data[:]) == 0
	return c
}

// Insert writes key/row at cursor's position, splitting the leaf (and
// cascading splits up the tree) if it is full. The caller is responsible
// for rejecting duplicate keys before calling Insert.
func (t *Tree) Insert(cursor *Cursor, key uint32, row Row) {
	node := t.pager.GetPage(cursor.PageNum)
	numCells := leafNumCells(node.Data[:])

	if numCells >= LeafNodeMaxCells {
		t.leafNodeSplitAndInsert(cursor, key, row)
		return
	}

	if cursor.CellNum < numCells {
		for i := numCells; i > cursor.CellNum; i-- {
			copy(leafCell(node.Data[:], i), leafCell(node.Data[:], i-1))
		}
	}

	setLeafNumCells(node.Data[:], numCells+1)
	setLeafKey(node.Data[:], cursor.CellNum, key)
	row.Serialize(leafValue(node.Data[:], cursor.CellNum))
}

// leafNodeSplitAndInsert distributes the MAX+1 logical cells (the existing
// leaf plus the incoming key/row) across old and a freshly allocated
// sibling, then propagates the split upward.
func (t *Tree) leafNodeSplitAndInsert(cursor *Cursor, key uint32, row Row) {
	oldNode := t.pager.GetPage(cursor.PageNum)
	oldMax := nodeMaxKey(t.pager, oldNode.Data[:])

	newPageNum := t.pager.GetUnusedPageNum()
	newNode := t.pager.GetPage(newPageNum)
	initializeLeafNode(newNode.Data[:])
	setNodeParent(newNode.Data[:], nodeParent(oldNode.Data[:]))
	setLeafNextLeaf(newNode.Data[:], leafNextLeaf(oldNode.Data[:]))
	setLeafNextLeaf(oldNode.Data[:], newPageNum)

	for i := int(LeafNodeMaxCells); i >= 0; i-- {
		idx := uint32(i)
		var dest *pager.Page
		if idx >= LeafNodeLeftSplitCount {
			dest = newNode
		} else {
			dest = oldNode
		}
		indexWithin := idx % LeafNodeLeftSplitCount
		destCell := leafCell(dest.Data[:], indexWithin)

		switch {
		case idx == cursor.CellNum:
			putUint32(destCell[:LeafNodeKeySize], key)
			row.Serialize(destCell[LeafNodeKeySize:])
		case idx > cursor.CellNum:
			copy(destCell, leafCell(oldNode.Data[:], idx-1))
		default:
			copy(destCell, leafCell(oldNode.Data[:], idx))
		}
	}

	setLeafNumCells(oldNode.Data[:], LeafNodeLeftSplitCount)
	setLeafNumCells(newNode.Data[:], LeafNodeRightSplitCount)

	if isNodeRoot(oldNode.Data[:]) {
		t.createNewRoot(newPageNum)
		return
	}

	parentPageNum := nodeParent(oldNode.Data[:])
	newMax := nodeMaxKey(t.pager, oldNode.Data[:])
	parent := t.pager.GetPage(parentPageNum)
	updateInternalNodeKey(parent.Data[:], oldMax, newMax)
	t.internalNodeInsert(parentPageNum, newPageNum)
}

// createNewRoot copies the current root page byte-for-byte into a new left
// child, re-homes that child's own children if it was internal, and
// reinitializes page 0 as an internal node with two children. When the old
// root was internal, the right child starts as an empty internal node.
func (t *Tree) createNewRoot(rightChildPageNum uint32) {
	root := t.pager.GetPage(t.rootPageNum)
	rightChild := t.pager.GetPage(rightChildPageNum)
	if nodeType(root.Data[:]) == NodeTypeInternal {
		initializeInternalNode(rightChild.Data[:])
	}

	leftChildPageNum := t.pager.GetUnusedPageNum()
	leftChild := t.pager.GetPage(leftChildPageNum)

	leftChild.Data = root.Data
	setNodeRoot(leftChild.Data[:], false)

	if nodeType(leftChild.Data[:]) == NodeTypeInternal {
		for i := uint32(0); i < internalNumKeys(leftChild.Data[:]); i++ {
			child := t.pager.GetPage(internalChild(leftChild.Data[:], i))
			setNodeParent(child.Data[:], leftChildPageNum)
		}
		rightOfLeft := t.pager.GetPage(internalRightChild(leftChild.Data[:]))
		setNodeParent(rightOfLeft.Data[:], leftChildPageNum)
	}

	initializeInternalNode(root.Data[:])
	setNodeRoot(root.Data[:], true)
	setInternalNumKeys(root.Data[:], 1)
	setInternalChild(root.Data[:], 0, leftChildPageNum)
	setInternalKey(root.Data[:], 0, nodeMaxKey(t.pager, leftChild.Data[:]))
	setInternalRightChild(root.Data[:], rightChildPageNum)

	setNodeParent(leftChild.Data[:], t.rootPageNum)
	setNodeParent(rightChild.Data[:], t.rootPageNum)
}

// internalNodeInsert links childPageNum as a child of the node at
// parentPageNum, splitting the parent first if it is already full.
func (t *Tree) internalNodeInsert(parentPageNum, childPageNum uint32) {
	parent := t.pager.GetPage(parentPageNum)
	child := t.pager.GetPage(childPageNum)
	childMaxKey := nodeMaxKey(t.pager, child.Data[:])
	index := internalNodeFindChild(parent.Data[:], childMaxKey)

	originalNumKeys := internalNumKeys(parent.Data[:])
	if originalNumKeys >= InternalNodeMaxKeys {
		t.internalNodeSplitAndInsert(parentPageNum, childPageNum)
		return
	}

	rightChildPageNum := internalRightChild(parent.Data[:])
	if rightChildPageNum == InvalidPageNum {
		setInternalRightChild(parent.Data[:], childPageNum)
		return
	}

	rightChild := t.pager.GetPage(rightChildPageNum)
	setInternalNumKeys(parent.Data[:], originalNumKeys+1)

	if childMaxKey > nodeMaxKey(t.pager, rightChild.Data[:]) {
		setInternalChild(parent.Data[:], originalNumKeys, rightChildPageNum)
		setInternalKey(parent.Data[:], originalNumKeys, nodeMaxKey(t.pager, rightChild.Data[:]))
		setInternalRightChild(parent.Data[:], childPageNum)
		return
	}

	for i := originalNumKeys; i > index; i-- {
		copy(internalCell(parent.Data[:], i), internalCell(parent.Data[:], i-1))
	}
	setInternalChild(parent.Data[:], index, childPageNum)
	setInternalKey(parent.Data[:], index, childMaxKey)
}

func updateInternalNodeKey(buf []byte, oldKey, newKey uint32) {
	idx := internalNodeFindChild(buf, oldKey)
	setInternalKey(buf, idx, newKey)
}

// internalNodeSplitAndInsert is the subtlest operation in the tree: it
// moves the upper half of old's children (starting with its right_child)
// into a freshly allocated node, decides which of the two now holds the
// incoming child, and cascades the split to old's parent.
func (t *Tree) internalNodeSplitAndInsert(parentPageNum, childPageNum uint32) {
	oldPageNum := parentPageNum
	oldNode := t.pager.GetPage(parentPageNum)
	oldMax := nodeMaxKey(t.pager, oldNode.Data[:])

	child := t.pager.GetPage(childPageNum)
	childMax := nodeMaxKey(t.pager, child.Data[:])

	newPageNum := t.pager.GetUnusedPageNum()
	splittingRoot := isNodeRoot(oldNode.Data[:])

	var parent *pager.Page
	if splittingRoot {
		t.createNewRoot(newPageNum)
		parent = t.pager.GetPage(t.rootPageNum)
		oldPageNum = internalChild(parent.Data[:], 0)
		oldNode = t.pager.GetPage(oldPageNum)
	} else {
		parent = t.pager.GetPage(nodeParent(oldNode.Data[:]))
		newNode := t.pager.GetPage(newPageNum)
		initializeInternalNode(newNode.Data[:])
		setNodeParent(newNode.Data[:], nodeParent(oldNode.Data[:]))
	}

	oldNumKeys := internalNumKeys(oldNode.Data[:])

	curPageNum := internalRightChild(oldNode.Data[:])
	cur := t.pager.GetPage(curPageNum)
	t.internalNodeInsert(newPageNum, curPageNum)
	setNodeParent(cur.Data[:], newPageNum)
	setInternalRightChild(oldNode.Data[:], InvalidPageNum)

	for i := int(InternalNodeMaxKeys) - 1; i > int(InternalNodeMaxKeys)/2; i-- {
		curPageNum = internalChild(oldNode.Data[:], uint32(i))
		cur = t.pager.GetPage(curPageNum)

		t.internalNodeInsert(newPageNum, curPageNum)
		setNodeParent(cur.Data[:], newPageNum)

		oldNumKeys--
		setInternalNumKeys(oldNode.Data[:], oldNumKeys)
	}

	setInternalRightChild(oldNode.Data[:], internalChild(oldNode.Data[:], oldNumKeys-1))
	oldNumKeys--
	setInternalNumKeys(oldNode.Data[:], oldNumKeys)

	maxAfterSplit := nodeMaxKey(t.pager, oldNode.Data[:])
	destPageNum := newPageNum
	if childMax < maxAfterSplit {
		destPageNum = oldPageNum
	}
	t.internalNodeInsert(destPageNum, childPageNum)
	setNodeParent(child.Data[:], destPageNum)

	updateInternalNodeKey(parent.Data[:], oldMax, nodeMaxKey(t.pager, oldNode.Data[:]))

	if !splittingRoot {
		grandparent := nodeParent(oldNode.Data[:])
		t.internalNodeInsert(grandparent, newPageNum)
		newNode := t.pager.GetPage(newPageNum)
		setNodeParent(newNode.Data[:], grandparent)
	}
}
