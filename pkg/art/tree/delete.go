package tree

import (
	"github.com/arturoga/artree/pkg/arena"
	"github.com/arturoga/artree/pkg/art/node"
)

// Delete implements spec §4.4.3's delete: it removes key if present,
// returning its value, descending the same way Search does.
//
// Grounded on the teacher's tree/delete.go, which already used a -1
// "virtual discriminator" sentinel to reach a terminus value before
// this module's Base.embedded field existed in its current form; the
// terminus case below is the completed version of that idea (see
// DESIGN.md).
func Delete[T any](root *node.Node[T], key []byte) (value T, ok bool) {
	return deleteAt(root, key, 0)
}

func deleteAt[T any](ref *node.Node[T], key []byte, depth int) (value T, ok bool) {
	cur := *ref
	if cur == nil {
		var zero T
		return zero, false
	}

	if leaf, isLeaf := cur.(*node.Leaf[T]); isLeaf {
		// Lone leaf at root: recursion below only ever enters inner
		// children, so a leaf reached here is the tree's root. A leaf
		// child of an inner node is matched and removed by its parent
		// further down.
		if !leaf.Matches(key[depth:]) {
			var zero T
			return zero, false
		}
		v := leaf.Value()
		*ref = nil
		arena.Free(leaf)
		return v, true
	}

	prefix := cur.Prefix()
	if len(key)-depth < len(prefix) {
		var zero T
		return zero, false
	}
	if cmp := comparePartialKeys(prefix, key[depth:depth+len(prefix)]); !cmp.full || cmp.n != len(prefix) {
		var zero T
		return zero, false
	}
	depth += len(prefix)

	if depth == len(key) {
		// Inner terminus hit: take the embedded value, never remove
		// the inner node itself here (its children still justify it).
		v, existed := cur.ClearEmbeddedValue()
		if !existed {
			var zero T
			return zero, false
		}
		maybeCollapse(ref, cur)
		return v, true
	}

	b := key[depth]
	slot := cur.FindChild(b)
	if slot == nil {
		var zero T
		return zero, false
	}

	if childLeaf, isLeaf := (*slot).(*node.Leaf[T]); isLeaf {
		if !childLeaf.Matches(key[depth+1:]) {
			var zero T
			return zero, false
		}
		v := childLeaf.Value()
		cur.RemoveChild(b)
		arena.Free(childLeaf)

		if shrunk, didShrink := cur.Shrink(); didShrink {
			arena.Free(&cur)
			cur = shrunk
			*ref = cur
		}
		maybeCollapse(ref, cur)
		return v, true
	}

	return deleteAt(slot, key, depth+1)
}

// maybeCollapse implements the optional single-child collapse
// mentioned in spec §4.4.3 and §9's Open Question 1: an inner node
// left with exactly one child and no embedded value has fewer than
// the "two reasons to exist" invariant 5 wants, and can be merged into
// its sole child by concatenating pkey · discriminator · child.pkey.
// Collapse is optional by spec (tests pass either way); this module
// performs it, following the teacher's Node4.Shrink, which always
// collapses a singleton rather than leaving it in place — see
// DESIGN.md for why that behavior lives here instead of in Node4
// itself. An inner node left with no children and only an embedded
// value is replaced by a leaf holding that value under the node's
// prefix.
func maybeCollapse[T any](ref *node.Node[T], cur node.Node[T]) {
	if cur.NumChildren() == 0 {
		if v, hasEmbedded := cur.EmbeddedValue(); hasEmbedded {
			*ref = node.NewLeaf[T](cur.Prefix(), v)
			arena.Free(&cur)
		}
		return
	}
	if cur.NumChildren() != 1 {
		return
	}
	if _, hasEmbedded := cur.EmbeddedValue(); hasEmbedded {
		return
	}

	var disc byte
	var child node.Node[T]
	found := false
	for b := 0; b < 256; b++ {
		if slot := cur.FindChild(byte(b)); slot != nil {
			disc, child = byte(b), *slot
			found = true
			break
		}
	}
	if !found {
		return
	}

	merged := append(clone(cur.Prefix()), disc)
	merged = append(merged, child.Prefix()...)
	child.SetPrefix(merged)

	arena.Free(&cur)
	*ref = child
}
