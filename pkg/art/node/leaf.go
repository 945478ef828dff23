package node

import (
	"github.com/arturoga/artree/internal/trace"
	"github.com/arturoga/artree/pkg/arena"
)

// Leaf owns the residual suffix of a stored key (the bytes below the
// depth at which the leaf is attached) and its value.
type Leaf[T any] struct {
	key   []byte
	value T
}

// NewLeaf returns a leaf holding key and value. key is copied so the
// leaf does not retain the caller's backing array.
func NewLeaf[T any](key []byte, value T) *Leaf[T] {
	return arena.New(Leaf[T]{key: append([]byte(nil), key...), value: value})
}

// Key returns the leaf's residual key.
func (l *Leaf[T]) Key() []byte { return l.key }

// Value returns the leaf's value.
func (l *Leaf[T]) Value() T { return l.value }

// SetValue replaces the leaf's value.
func (l *Leaf[T]) SetValue(v T) { l.value = v }

// SetKey replaces the leaf's residual key, used when an ancestor
// split consumes some of its bytes as a new shared prefix.
func (l *Leaf[T]) SetKey(key []byte) { l.key = key }

// Matches reports whether key equals the leaf's stored residual key.
func (l *Leaf[T]) Matches(key []byte) bool {
	if len(key) != len(l.key) {
		return false
	}
	for i, b := range l.key {
		if key[i] != b {
			return false
		}
	}
	return true
}

// Type implements [Node].
func (l *Leaf[T]) Type() Type { return TypeLeaf }

// Prefix returns the leaf's residual key. Leaves reuse Prefix/SetPrefix
// so insert's prefix-comparison code can treat a leaf uniformly with
// an inner node while splitting it.
func (l *Leaf[T]) Prefix() []byte { return l.key }

// SetPrefix is equivalent to SetKey.
func (l *Leaf[T]) SetPrefix(p []byte) { l.key = p }

// NumChildren is always 0 for a leaf.
func (l *Leaf[T]) NumChildren() int { return 0 }

// Full is always true for a leaf: it can never take a child.
func (l *Leaf[T]) Full() bool { return true }

// EmbeddedValue is always (zero, false) for a leaf.
func (l *Leaf[T]) EmbeddedValue() (T, bool) {
	var zero T
	return zero, false
}

func (l *Leaf[T]) SetEmbeddedValue(T) (T, bool) {
	panic("art: leaf has no embedded value slot")
}

func (l *Leaf[T]) ClearEmbeddedValue() (T, bool) {
	panic("art: leaf has no embedded value slot")
}

func (l *Leaf[T]) FindChild(b byte) *Node[T] {
	panic("art: leaf has no children")
}

func (l *Leaf[T]) AddChild(b byte, child Node[T]) {
	trace.Assert(false, "add child %d on a leaf", b)
	panic("art: leaf has no children")
}

func (l *Leaf[T]) RemoveChild(b byte) {
	panic("art: leaf has no children")
}

func (l *Leaf[T]) Grow() Node[T] {
	panic("art: leaf cannot grow")
}

func (l *Leaf[T]) Shrink() (Node[T], bool) {
	panic("art: leaf cannot shrink")
}
