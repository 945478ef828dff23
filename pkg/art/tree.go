// Package art implements an in-memory adaptive radix tree: an ordered
// associative container keyed on variable-length byte strings, with
// O(key length) lookup, insert, and delete and memory use that adapts
// to each node's actual fan-out instead of paying for a fixed 256-ary
// array everywhere.
//
// Overview
//
// A Tree maps []byte keys to values of a single type T. Construct one
// with [New], then call [Tree.InsertOrUpdate], [Tree.Find], and
// [Tree.Delete]. Byte-key encoding for typed keys (unsigned/signed
// integers, floats, strings) lives in the sibling
// [github.com/arturoga/artree/pkg/art/enckey] package so callers
// choose the right encoding (e.g. order-preserving vs. raw float
// encoding) explicitly rather than the tree guessing.
//
// Concurrency
//
// A Tree is not safe for concurrent use without external
// synchronization; this package carries no locking of its own
// (matching the specification this module implements, which excludes
// concurrent access from scope).
//
// Non-goals
//
// This implementation intentionally omits ordered iteration, range
// queries, prefix scans, bulk loading, persistence, and custom
// allocator plumbing. See DESIGN.md for the reasoning behind each.
package art

import (
	"github.com/arturoga/artree/pkg/art/node"
	"github.com/arturoga/artree/pkg/art/tree"
)

// Tree is an adaptive radix tree mapping []byte keys to values of type
// T. The zero value is not usable; construct with [New].
type Tree[T any] struct {
	root node.Node[T]
}

// New returns an empty Tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// InsertOrUpdate installs value under key, returning the value key was
// previously bound to and whether it existed. A key that is a proper
// prefix of other stored keys (or vice versa) is supported: the
// shorter key's value is held as an inner node's embedded value rather
// than requiring every stored key to terminate at a leaf.
func (t *Tree[T]) InsertOrUpdate(key []byte, value T) (prev T, existed bool) {
	return tree.Insert(&t.root, key, value)
}

// Find looks up key, returning its value and whether it was present.
func (t *Tree[T]) Find(key []byte) (value T, ok bool) {
	return tree.Search(t.root, key)
}

// Delete removes key, returning the value it was bound to and whether
// it was present. Deleting an absent key leaves the tree unchanged.
func (t *Tree[T]) Delete(key []byte) (value T, ok bool) {
	return tree.Delete(&t.root, key)
}
