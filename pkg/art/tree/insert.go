package tree

import (
	"github.com/arturoga/artree/pkg/arena"
	"github.com/arturoga/artree/pkg/art/node"
)

// Insert implements spec §4.4.1's insert_or_update: it installs value
// under key, descending from root (a pointer to the tree's root
// link), and returns the value key was previously bound to, if any.
//
// Grounded on the teacher's tree/search.go and tree/prefix.go (both
// internally consistent generic code); tree/insert.go itself is not
// used as a source — it is non-generic (node.Ref/node.Node4{} with no
// type parameter) and cannot compile against the generic node.Node[T]
// every other file in the teacher's package uses, so it is stale
// reference material rather than something to adapt. The case
// analysis below (empty slot, leaf split, prefix split, missing
// child) follows spec §4.4.1 steps 3-6 directly.
func Insert[T any](root *node.Node[T], key []byte, value T) (prev T, existed bool) {
	return insertAt(root, key, 0, value)
}

func insertAt[T any](ref *node.Node[T], key []byte, depth int, value T) (prev T, existed bool) {
	cur := *ref

	if cur == nil {
		// Step 3: empty slot.
		*ref = node.NewLeaf[T](key[depth:], value)
		var zero T
		return zero, false
	}

	if leaf, ok := cur.(*node.Leaf[T]); ok {
		return insertIntoLeaf(ref, leaf, key, depth, value)
	}

	return insertIntoInner(ref, cur, key, depth, value)
}

// insertIntoLeaf implements step 4: split (or replace) a leaf reached
// during descent.
func insertIntoLeaf[T any](ref *node.Node[T], leaf *node.Leaf[T], key []byte, depth int, value T) (prev T, existed bool) {
	window := key[depth:]
	cmp := compareLeafKeys(leaf.Key(), window)

	switch cmp.kind {
	case leafFullMatch:
		old := leaf.Value()
		leaf.SetValue(value)
		return old, true

	case leafPartialMatch:
		n := cmp.n
		inner := node.NewNode4[T](clone(leaf.Key()[:n]))

		oldDisc := leaf.Key()[n]
		leaf.SetKey(clone(leaf.Key()[n+1:]))
		inner.AddChild(oldDisc, leaf)

		newDisc := window[n]
		inner.AddChild(newDisc, node.NewLeaf[T](clone(window[n+1:]), value))

		*ref = inner
		var zero T
		return zero, false

	case leafFirstIsPrefix:
		// The existing leaf's key (shorter) is a strict prefix of the
		// new key: the leaf's old value becomes the embedded value,
		// and the new key's remaining suffix becomes a single child
		// leaf (§8 scenario #3: "abc" then "abcd").
		n := cmp.n
		inner := node.NewNode4[T](clone(leaf.Key()))
		inner.SetEmbeddedValue(leaf.Value())

		newDisc := window[n]
		inner.AddChild(newDisc, node.NewLeaf[T](clone(window[n+1:]), value))

		*ref = inner
		var zero T
		return zero, false

	default: // leafSecondIsPrefix
		// The new key (shorter) is a strict prefix of the existing
		// leaf's key: the new value becomes the embedded value, and
		// the existing leaf is demoted to a single child (§8 scenario
		// #4: "abcd" then "abc").
		n := cmp.n
		inner := node.NewNode4[T](clone(window[:n]))
		inner.SetEmbeddedValue(value)

		oldDisc := leaf.Key()[n]
		leaf.SetKey(clone(leaf.Key()[n+1:]))
		inner.AddChild(oldDisc, leaf)

		*ref = inner
		var zero T
		return zero, false
	}
}

// insertIntoInner implements step 2 (descend through an inner node's
// prefix) together with steps 5 and 6 (prefix split, missing child).
func insertIntoInner[T any](ref *node.Node[T], cur node.Node[T], key []byte, depth int, value T) (prev T, existed bool) {
	prefix := cur.Prefix()

	if len(prefix) > 0 {
		window := key[depth:]
		limit := len(prefix)
		if len(window) < limit {
			limit = len(window)
		}

		mismatch := limit
		for i := 0; i < limit; i++ {
			if prefix[i] != window[i] {
				mismatch = i
				break
			}
		}

		switch {
		case mismatch < limit:
			// PartialMatch: ordinary prefix split (step 5).
			return splitPrefix(ref, cur, prefix, key, depth, mismatch, value)

		case len(window) < len(prefix):
			// FullMatch(len(window)) with the node's prefix longer
			// than what's left of the key: the key terminates inside
			// this node's compressed path. Not explicit in spec
			// §4.4.1's prose (which assumes the matched prefix is the
			// node's whole prefix) — resolved the same way a leaf's
			// CompleteMatch splits work, preserving invariant 1 (see
			// SPEC_FULL.md §4.4 and DESIGN.md).
			return splitPrefixAtKeyEnd(ref, cur, prefix, len(window), value)

		default:
			depth += len(prefix)
		}
	}

	if depth == len(key) {
		old, existed := cur.EmbeddedValue()
		cur.SetEmbeddedValue(value)
		return old, existed
	}

	b := key[depth]
	if slot := cur.FindChild(b); slot != nil {
		return insertAt(slot, key, depth+1, value)
	}

	// Step 6: missing child in a matching inner.
	if cur.Full() {
		grown := cur.Grow()
		arena.Free(&cur)
		cur = grown
		*ref = cur
	}
	var leafKey []byte
	if depth+1 < len(key) {
		leafKey = key[depth+1:]
	}
	cur.AddChild(b, node.NewLeaf[T](leafKey, value))
	var zero T
	return zero, false
}

// splitPrefix implements step 5: an ordinary prefix mismatch found
// partway through an inner node's compressed path.
func splitPrefix[T any](ref *node.Node[T], cur node.Node[T], prefix, key []byte, depth, splitPos int, value T) (prev T, existed bool) {
	newInner := node.NewNode4[T](clone(prefix[:splitPos]))

	oldDisc := prefix[splitPos]
	cur.SetPrefix(clone(prefix[splitPos+1:]))
	newInner.AddChild(oldDisc, cur)

	newDepth := depth + splitPos
	var newLeafKey []byte
	if newDepth+1 < len(key) {
		newLeafKey = key[newDepth+1:]
	}
	newInner.AddChild(key[newDepth], node.NewLeaf[T](newLeafKey, value))

	*ref = newInner
	var zero T
	return zero, false
}

// splitPrefixAtKeyEnd handles the key-terminates-inside-the-prefix
// case described in insertIntoInner above: matchedLen is how many
// bytes of the node's prefix the (exhausted) key covers.
func splitPrefixAtKeyEnd[T any](ref *node.Node[T], cur node.Node[T], prefix []byte, matchedLen int, value T) (prev T, existed bool) {
	newInner := node.NewNode4[T](clone(prefix[:matchedLen]))
	newInner.SetEmbeddedValue(value)

	oldDisc := prefix[matchedLen]
	cur.SetPrefix(clone(prefix[matchedLen+1:]))
	newInner.AddChild(oldDisc, cur)

	*ref = newInner
	var zero T
	return zero, false
}

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}
