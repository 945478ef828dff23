package node

import (
	"github.com/arturoga/artree/internal/trace"
	"github.com/arturoga/artree/pkg/arena"
)

// Node4 holds 1-4 children in two parallel arrays, keys kept sorted so
// lookup is a short linear scan.
type Node4[T any] struct {
	Base[T]
	keys     [4]byte
	children [4]Node[T]
}

// NewNode4 returns an empty Node4 with the given prefix.
func NewNode4[T any](prefix []byte) *Node4[T] {
	n := arena.New(Node4[T]{})
	n.partial = prefix
	return n
}

func (n *Node4[T]) Type() Type { return TypeNode4 }

func (n *Node4[T]) Full() bool { return n.numChildren >= 4 }

func (n *Node4[T]) FindChild(b byte) *Node[T] {
	for i := 0; i < n.numChildren; i++ {
		if n.keys[i] == b {
			return &n.children[i]
		}
	}
	return nil
}

func (n *Node4[T]) AddChild(b byte, child Node[T]) {
	trace.Assert(!n.Full(), "add child %d on a full Node4", b)
	trace.Assert(n.FindChild(b) == nil, "duplicate discriminator %d in Node4", b)

	i := 0
	for ; i < n.numChildren; i++ {
		if n.keys[i] > b {
			break
		}
	}
	copy(n.keys[i+1:n.numChildren+1], n.keys[i:n.numChildren])
	copy(n.children[i+1:n.numChildren+1], n.children[i:n.numChildren])
	n.keys[i] = b
	n.children[i] = child
	n.numChildren++
}

func (n *Node4[T]) RemoveChild(b byte) {
	for i := 0; i < n.numChildren; i++ {
		if n.keys[i] != b {
			continue
		}
		copy(n.keys[i:], n.keys[i+1:n.numChildren])
		copy(n.children[i:], n.children[i+1:n.numChildren])
		n.numChildren--
		n.children[n.numChildren] = nil
		return
	}
}

func (n *Node4[T]) Grow() Node[T] {
	grown := NewNode16[T](n.partial)
	for i := 0; i < n.numChildren; i++ {
		grown.keys[i] = n.keys[i]
		grown.children[i] = n.children[i]
	}
	grown.numChildren = n.numChildren
	grown.embedded = n.embedded
	return grown
}

// Shrink never applies to Node4: it is already the smallest variant.
// Collapsing a Node4 with a single child into that child is handled
// by the tree's delete algorithm, which is free to skip it (spec's
// Open Question on eager collapse).
func (n *Node4[T]) Shrink() (Node[T], bool) { return nil, false }
