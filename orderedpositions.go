package prosecheck

import (
	"errors"
	"math"
	"math/rand"
)

// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS A SKIP LIST?
// ═══════════════════════════════════════════════════════════════════════════════
// A skip list is a probabilistic data structure that allows O(log n) search,
// insert, and delete operations - similar to a balanced tree, but simpler.
//
// Level 2: HEAD ------------> [15] ----------------------> NULL
// Level 1: HEAD -------> [10] -> [15] -------> [30] -----> NULL
// Level 0: HEAD --> [5] -> [10] -> [15] -> [20] -> [30] --> NULL
//
// Document keeps one of these per secondary index: sentence-terminator
// positions, number-token positions, and the opening-quote index set. Each
// index is built with a single left-to-right Insert pass over the token
// vector, then read back in ascending order with ToSlice while linting -
// Document.IterSentences (used by LongSentences, SentenceCapitalization and
// the other sentence rules), IterNumbers and IterQuotePairs. The
// FindLessThan/FindGreaterThan predecessor/successor queries are not used by
// any rule.
// ═══════════════════════════════════════════════════════════════════════════════

const maxSkipHeight = 32

// ErrKeyNotFound reports that a key is absent from an orderedPositions set.
// No orderedPositions method returns it; Contains reports absence as false.
var ErrKeyNotFound = errors.New("prosecheck: key not found")

// ErrNoElementFound is returned when a FindLessThan/FindGreaterThan query has
// no element on the requested side.
var ErrNoElementFound = errors.New("prosecheck: no element found")

const (
	negInf = math.MinInt
	posInf = math.MaxInt
)

type skipNode struct {
	key   int
	tower [maxSkipHeight]*skipNode
}

// orderedPositions is a sorted set of character/token offsets supporting
// O(log n) membership, predecessor, and successor queries.
type orderedPositions struct {
	head   *skipNode
	height int
}

func newOrderedPositions() *orderedPositions {
	return &orderedPositions{head: &skipNode{}, height: 1}
}

// search returns the exact node for key (nil if absent) and the predecessor
// at every level - the "journey" needed by Insert.
func (sl *orderedPositions) search(key int) (*skipNode, [maxSkipHeight]*skipNode) {
	var journey [maxSkipHeight]*skipNode
	current := sl.head

	for level := sl.height - 1; level >= 0; level-- {
		for next := current.tower[level]; next != nil && next.key < key; next = current.tower[level] {
			current = next
		}
		journey[level] = current
	}

	next := current.tower[0]
	if next != nil && next.key == key {
		return next, journey
	}
	return nil, journey
}

// Contains reports whether key is present in the set.
func (sl *orderedPositions) Contains(key int) bool {
	found, _ := sl.search(key)
	return found != nil
}

// FindLessThan returns the largest stored key strictly less than key.
func (sl *orderedPositions) FindLessThan(key int) (int, error) {
	_, journey := sl.search(key)
	predecessor := journey[0]
	if predecessor == nil || predecessor == sl.head {
		return negInf, ErrNoElementFound
	}
	return predecessor.key, nil
}

// FindGreaterThan returns the smallest stored key strictly greater than key.
func (sl *orderedPositions) FindGreaterThan(key int) (int, error) {
	found, journey := sl.search(key)

	if found != nil {
		if found.tower[0] != nil {
			return found.tower[0].key, nil
		}
		return posInf, ErrNoElementFound
	}

	predecessor := journey[0]
	if predecessor != nil && predecessor.tower[0] != nil {
		return predecessor.tower[0].key, nil
	}
	return posInf, ErrNoElementFound
}

// Insert adds key to the set. Re-inserting an existing key is a no-op.
func (sl *orderedPositions) Insert(key int) {
	found, journey := sl.search(key)
	if found != nil {
		return
	}

	height := sl.randomHeight()
	node := &skipNode{key: key}
	sl.linkNode(node, journey, height)

	if height > sl.height {
		sl.height = height
	}
}

func (sl *orderedPositions) linkNode(node *skipNode, journey [maxSkipHeight]*skipNode, height int) {
	for level := 0; level < height; level++ {
		predecessor := journey[level]
		if predecessor == nil {
			predecessor = sl.head
		}
		node.tower[level] = predecessor.tower[level]
		predecessor.tower[level] = node
	}
}

// randomHeight flips a fair coin until it comes up tails, giving each height
// half the probability of the one below it.
func (sl *orderedPositions) randomHeight() int {
	height := 1
	for rand.Float64() < 0.5 && height < maxSkipHeight {
		height++
	}
	return height
}

// ToSlice returns every stored key in ascending order.
func (sl *orderedPositions) ToSlice() []int {
	out := make([]int, 0)
	for n := sl.head.tower[0]; n != nil; n = n.tower[0] {
		out = append(out, n.key)
	}
	return out
}

// Len reports how many keys are stored.
func (sl *orderedPositions) Len() int {
	n := 0
	for cur := sl.head.tower[0]; cur != nil; cur = cur.tower[0] {
		n++
	}
	return n
}
