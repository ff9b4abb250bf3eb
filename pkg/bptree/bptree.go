// File: bptree.go
package bptree

import (
	"cmp"
	"sort"
	"sync"
)

// DefaultOrder is the fallback branching factor if a user-supplied order is too small.
const DefaultOrder = 32

// findChildIndex determines which child pointer to follow
// (or where to insert a new key) in an internal node.
func findChildIndex[K cmp.Ordered](keys []K, searchKey K) int {
	return sort.Search(len(keys), func(i int) bool {
		return cmp.Less(searchKey, keys[i])
	})
}

// BPlusTree is an ordered map with linked leaves for in-order scans.
//
// Writers are serialized by a tree-level lock; once the tree is no longer
// written to, any number of goroutines may search and scan it.
type BPlusTree[K cmp.Ordered, V any] struct {
	root   *node[K, V]
	first  *node[K, V] // left-most leaf, head of the leaf chain
	order  int
	height int
	size   int
	m      sync.RWMutex
}

// node represents both internal and leaf nodes in the B+Tree.
type node[K cmp.Ordered, V any] struct {
	isLeaf   bool
	keys     []K
	children []*node[K, V] // used if !isLeaf
	values   []V           // used if isLeaf
	parent   *node[K, V]
	next     *node[K, V] // leaf-link pointer, for range scans
}

// NewBPlusTree creates and returns a B+Tree with the given order.
// If the specified order < 3, we fall back to DefaultOrder.
func NewBPlusTree[K cmp.Ordered, V any](order int) *BPlusTree[K, V] {
	if order < 3 {
		order = DefaultOrder
	}
	rootNode := &node[K, V]{
		isLeaf: true,
		keys:   make([]K, 0, order+1),
		values: make([]V, 0, order+1),
	}
	return &BPlusTree[K, V]{
		root:   rootNode,
		first:  rootNode,
		order:  order,
		height: 1,
	}
}

// Height returns the number of levels in the tree.
func (tree *BPlusTree[K, V]) Height() int {
	tree.m.RLock()
	defer tree.m.RUnlock()
	return tree.height
}

// Len returns the number of distinct keys stored in the tree.
func (tree *BPlusTree[K, V]) Len() int {
	tree.m.RLock()
	defer tree.m.RUnlock()
	return tree.size
}

// Search locates the value associated with `key` (if it exists).
func (tree *BPlusTree[K, V]) Search(key K) (V, bool) {
	tree.m.RLock()
	defer tree.m.RUnlock()

	leaf := tree.findLeaf(key)
	idx, found := leaf.position(key)
	if !found {
		var zero V
		return zero, false
	}
	return leaf.values[idx], true
}

// Insert adds a (key, value) pair to the B+Tree. An existing key has its
// value replaced.
func (tree *BPlusTree[K, V]) Insert(key K, value V) {
	tree.m.Lock()
	defer tree.m.Unlock()

	leaf := tree.findLeaf(key)
	if inserted := insertKeyValueInLeaf(leaf, key, value); inserted {
		tree.size++
	}

	if len(leaf.keys) > tree.order {
		tree.splitLeaf(leaf)
	}
}

// Ascend calls fn for every key/value pair in ascending key order until fn
// returns false.
func (tree *BPlusTree[K, V]) Ascend(fn func(key K, value V) bool) {
	tree.m.RLock()
	defer tree.m.RUnlock()

	for leaf := tree.first; leaf != nil; leaf = leaf.next {
		for i, k := range leaf.keys {
			if !fn(k, leaf.values[i]) {
				return
			}
		}
	}
}

// Keys returns all keys in ascending order.
func (tree *BPlusTree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.Len())
	tree.Ascend(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// findLeaf descends from the root to the leaf that owns key.
// Callers must hold tree.m.
func (tree *BPlusTree[K, V]) findLeaf(key K) *node[K, V] {
	current := tree.root
	for !current.isLeaf {
		current = current.children[findChildIndex(current.keys, key)]
	}
	return current
}

// position returns the index of key in a leaf, or the insertion point if absent.
func (n *node[K, V]) position(key K) (int, bool) {
	idx := sort.Search(len(n.keys), func(i int) bool {
		return cmp.Compare(n.keys[i], key) >= 0
	})
	return idx, idx < len(n.keys) && n.keys[idx] == key
}

// insertKeyValueInLeaf places the pair in sorted order and reports whether
// a new key was added (false means an existing value was replaced).
func insertKeyValueInLeaf[K cmp.Ordered, V any](leaf *node[K, V], key K, value V) bool {
	idx, found := leaf.position(key)
	if found {
		leaf.values[idx] = value
		return false
	}

	var zeroK K
	var zeroV V
	leaf.keys = append(leaf.keys, zeroK)
	leaf.values = append(leaf.values, zeroV)

	copy(leaf.keys[idx+1:], leaf.keys[idx:])
	leaf.keys[idx] = key

	copy(leaf.values[idx+1:], leaf.values[idx:])
	leaf.values[idx] = value
	return true
}

// splitLeaf handles splitting a leaf node that has overflowed.
func (tree *BPlusTree[K, V]) splitLeaf(leaf *node[K, V]) {
	mid := len(leaf.keys) / 2

	newLeaf := &node[K, V]{
		isLeaf: true,
		keys:   append(make([]K, 0, tree.order+1), leaf.keys[mid:]...),
		values: append(make([]V, 0, tree.order+1), leaf.values[mid:]...),
		next:   leaf.next,
		parent: leaf.parent,
	}

	leaf.keys = leaf.keys[:mid]
	leaf.values = leaf.values[:mid]
	leaf.next = newLeaf

	if leaf.parent == nil {
		tree.growRoot(leaf, newLeaf, newLeaf.keys[0])
		return
	}

	tree.insertKeyInParent(leaf.parent, newLeaf.keys[0], newLeaf)
}

// insertKeyInParent inserts `key` into parent and links rightChild after it.
func (tree *BPlusTree[K, V]) insertKeyInParent(parent *node[K, V], key K, rightChild *node[K, V]) {
	idx := findChildIndex(parent.keys, key)

	var zeroK K
	parent.keys = append(parent.keys, zeroK)
	copy(parent.keys[idx+1:], parent.keys[idx:])
	parent.keys[idx] = key

	parent.children = append(parent.children, nil)
	copy(parent.children[idx+2:], parent.children[idx+1:])
	parent.children[idx+1] = rightChild

	rightChild.parent = parent

	if len(parent.keys) > tree.order {
		tree.splitInternalNode(parent)
	}
}

// splitInternalNode handles splitting an internal node that has overflowed.
func (tree *BPlusTree[K, V]) splitInternalNode(internal *node[K, V]) {
	mid := len(internal.keys) / 2
	splitKey := internal.keys[mid]

	newInternal := &node[K, V]{
		keys:     append([]K{}, internal.keys[mid+1:]...),
		children: append([]*node[K, V]{}, internal.children[mid+1:]...),
		parent:   internal.parent,
	}
	for _, child := range newInternal.children {
		child.parent = newInternal
	}

	internal.keys = internal.keys[:mid]
	internal.children = internal.children[:mid+1]

	if internal.parent == nil {
		tree.growRoot(internal, newInternal, splitKey)
		return
	}

	tree.insertKeyInParent(internal.parent, splitKey, newInternal)
}

// growRoot adds a level above left and right.
func (tree *BPlusTree[K, V]) growRoot(left, right *node[K, V], key K) {
	newRoot := &node[K, V]{
		keys:     []K{key},
		children: []*node[K, V]{left, right},
	}
	left.parent = newRoot
	right.parent = newRoot
	tree.root = newRoot
	tree.height++
}
