// Package node implements the leaf and inner-node types of the
// adaptive radix tree: a leaf holding a residual key and a value, and
// four capacity variants of inner node (4, 16, 48, 256) sharing one
// polymorphic contract.
package node

// Type identifies the concrete node behind a [Node] value.
type Type int

const (
	// TypeLeaf marks a *Leaf[T].
	TypeLeaf Type = iota + 1
	// TypeNode4 marks a *Node4[T], holding 1-4 children.
	TypeNode4
	// TypeNode16 marks a *Node16[T], holding 5-16 children.
	TypeNode16
	// TypeNode48 marks a *Node48[T], holding 17-48 children.
	TypeNode48
	// TypeNode256 marks a *Node256[T], holding 49-256 children.
	TypeNode256
)

func (t Type) String() string {
	switch t {
	case TypeLeaf:
		return "Leaf"
	case TypeNode4:
		return "Node4"
	case TypeNode16:
		return "Node16"
	case TypeNode48:
		return "Node48"
	case TypeNode256:
		return "Node256"
	default:
		return "Unknown"
	}
}

// Node is the polymorphic contract shared by Leaf and the four inner
// node variants. Tree algorithms operate purely in terms of Node[T];
// a nil Node[T] represents an empty child link.
type Node[T any] interface {
	// Type reports which concrete node implements this value.
	Type() Type

	// Prefix returns the node's stored path-compressed prefix (for an
	// inner node) or residual key (for a leaf).
	Prefix() []byte

	// SetPrefix replaces the node's stored prefix/residual key.
	SetPrefix(p []byte)

	// NumChildren reports how many regular (discriminator-keyed)
	// children this node holds. Always 0 for a leaf. Does not count
	// an inner node's embedded value, which is not a child.
	NumChildren() int

	// Full reports whether an additional child cannot be added
	// without growing to the next capacity variant.
	Full() bool

	// EmbeddedValue returns the value stored at this node for a key
	// that terminates exactly here, if any. Always (zero, false) for
	// a leaf.
	EmbeddedValue() (T, bool)

	// SetEmbeddedValue installs v as the embedded value, returning the
	// value it replaced, if any. Panics on a leaf.
	SetEmbeddedValue(v T) (T, bool)

	// ClearEmbeddedValue removes the embedded value, returning it if
	// present. Panics on a leaf.
	ClearEmbeddedValue() (T, bool)

	// FindChild returns a pointer to the child slot for discriminator
	// b, or nil if no such child exists. The returned pointer aliases
	// storage owned by this node and must not be retained past the
	// next mutation of the node. Panics on a leaf.
	FindChild(b byte) *Node[T]

	// AddChild installs child under discriminator b. Precondition:
	// !Full() and no existing child under b. Panics on a leaf.
	AddChild(b byte, child Node[T])

	// RemoveChild removes the child under discriminator b, if any.
	// Panics on a leaf.
	RemoveChild(b byte)

	// Grow returns the next larger capacity variant holding the same
	// children and embedded value, releasing the receiver. Panics on
	// a leaf or on Node256 (which never grows).
	Grow() Node[T]

	// Shrink returns the next smaller capacity variant holding the
	// same children and embedded value, releasing the receiver, along
	// with whether a shrink is applicable to this variant at all.
	// Node4 reports false: collapsing a single-child Node4 into its
	// child is a tree-level decision, not a variant transition — see
	// [github.com/arturoga/artree/pkg/art/tree]. Panics on a leaf.
	Shrink() (Node[T], bool)
}

// Base holds the state shared by every inner node variant: the
// path-compressed prefix, the child counter, and the optional
// embedded value used when a stored key terminates at this node
// (data model invariant 2: a proper prefix of other stored keys
// routed through it).
type Base[T any] struct {
	partial     []byte
	numChildren int
	embedded    *T
}

// Prefix returns the stored prefix.
func (b *Base[T]) Prefix() []byte { return b.partial }

// SetPrefix replaces the stored prefix.
func (b *Base[T]) SetPrefix(p []byte) { b.partial = p }

// NumChildren reports the number of regular children.
func (b *Base[T]) NumChildren() int { return b.numChildren }

// EmbeddedValue returns the node's embedded value, if any.
func (b *Base[T]) EmbeddedValue() (T, bool) {
	if b.embedded == nil {
		var zero T
		return zero, false
	}
	return *b.embedded, true
}

// SetEmbeddedValue installs v as the embedded value and returns the
// value it replaced, if any.
func (b *Base[T]) SetEmbeddedValue(v T) (T, bool) {
	var old T
	existed := b.embedded != nil
	if existed {
		old = *b.embedded
	}
	if b.embedded == nil {
		b.embedded = new(T)
	}
	*b.embedded = v
	return old, existed
}

// ClearEmbeddedValue removes the embedded value and returns it, if
// present.
func (b *Base[T]) ClearEmbeddedValue() (T, bool) {
	if b.embedded == nil {
		var zero T
		return zero, false
	}
	v := *b.embedded
	b.embedded = nil
	return v, true
}
