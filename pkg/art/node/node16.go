package node

import (
	"github.com/arturoga/artree/internal/trace"
	"github.com/arturoga/artree/pkg/arena"
	"github.com/arturoga/artree/pkg/art/simd"
)

// Node16 holds 5-16 children, keys kept sorted so the teacher's
// SIMD-flavoured search (here: word-parallel via [simd.FindKeyIndex])
// can scan all lanes at once instead of one byte at a time.
type Node16[T any] struct {
	Base[T]
	keys     [16]byte
	children [16]Node[T]
}

// NewNode16 returns an empty Node16 with the given prefix.
func NewNode16[T any](prefix []byte) *Node16[T] {
	n := arena.New(Node16[T]{})
	n.partial = prefix
	return n
}

func (n *Node16[T]) Type() Type { return TypeNode16 }

func (n *Node16[T]) Full() bool { return n.numChildren >= 16 }

func (n *Node16[T]) FindChild(b byte) *Node[T] {
	if i := simd.FindKeyIndex(&n.keys, n.numChildren, b); i >= 0 {
		return &n.children[i]
	}
	return nil
}

func (n *Node16[T]) AddChild(b byte, child Node[T]) {
	trace.Assert(!n.Full(), "add child %d on a full Node16", b)
	trace.Assert(n.FindChild(b) == nil, "duplicate discriminator %d in Node16", b)

	i := simd.FindInsertPosition(&n.keys, n.numChildren, b)
	copy(n.keys[i+1:n.numChildren+1], n.keys[i:n.numChildren])
	copy(n.children[i+1:n.numChildren+1], n.children[i:n.numChildren])
	n.keys[i] = b
	n.children[i] = child
	n.numChildren++
}

func (n *Node16[T]) RemoveChild(b byte) {
	i := simd.FindKeyIndex(&n.keys, n.numChildren, b)
	if i < 0 {
		return
	}
	copy(n.keys[i:], n.keys[i+1:n.numChildren])
	copy(n.children[i:], n.children[i+1:n.numChildren])
	n.numChildren--
	n.children[n.numChildren] = nil
}

func (n *Node16[T]) Grow() Node[T] {
	grown := NewNode48[T](n.partial)
	for i := 0; i < n.numChildren; i++ {
		grown.index[n.keys[i]] = int8(i) + 1
		grown.children[i] = n.children[i]
	}
	grown.numChildren = n.numChildren
	grown.embedded = n.embedded
	return grown
}

// Shrink returns an equivalent Node4, applicable once count drops to
// 4 or below.
func (n *Node16[T]) Shrink() (Node[T], bool) {
	if n.numChildren > 4 {
		return nil, false
	}
	shrunk := NewNode4[T](n.partial)
	for i := 0; i < n.numChildren; i++ {
		shrunk.keys[i] = n.keys[i]
		shrunk.children[i] = n.children[i]
	}
	shrunk.numChildren = n.numChildren
	shrunk.embedded = n.embedded
	return shrunk, true
}
