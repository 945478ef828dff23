package tree

import "github.com/arturoga/artree/pkg/art/node"

// Search implements spec §4.4.2's find: it walks from root looking
// for key, returning its value if present.
//
// Grounded directly on the teacher's tree/search.go, generalized to
// check the embedded value at a terminus (the teacher's version
// predates that feature and always returns nil when depth reaches
// |K| at an inner node without looking at anything beyond the raw
// byte lookup).
func Search[T any](root node.Node[T], key []byte) (value T, ok bool) {
	cur := root
	depth := 0

	for cur != nil {
		if leaf, isLeaf := cur.(*node.Leaf[T]); isLeaf {
			if compareLeafKeys(leaf.Key(), key[depth:]).kind == leafFullMatch {
				return leaf.Value(), true
			}
			var zero T
			return zero, false
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
			return cur.EmbeddedValue()
		}

		slot := cur.FindChild(key[depth])
		if slot == nil {
			var zero T
			return zero, false
		}
		cur = *slot
		depth++
	}

	var zero T
	return zero, false
}
