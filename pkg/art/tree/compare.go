package tree

// partialKeyMatch is the result of comparePartialKeys: spec §4.2's
// compare_pkeys, restricted to the two cases an inner node's
// path-compressed prefix needs during descent.
type partialKeyMatch struct {
	// full is true when one operand is a prefix of the other
	// (including equal), matching PartialKeyComp::FullMatch in the
	// grounding source (original_source/src/keys.rs).
	full bool
	// n is the shared length on a full match, or the index of the
	// first differing byte on a partial match.
	n int
}

// comparePartialKeys implements spec §4.2's compare_pkeys(a, b):
// FullMatch(min(|a|,|b|)) if one is a prefix of the other, else
// PartialMatch(pos) at the first differing byte.
func comparePartialKeys(a, b []byte) partialKeyMatch {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			return partialKeyMatch{full: false, n: i}
		}
	}
	return partialKeyMatch{full: true, n: limit}
}

// leafKeyMatch is the result of compareLeafKeys: spec §4.2's
// compare_leaf_keys, which additionally distinguishes which operand is
// the shorter proper prefix so insert can decide which side keeps its
// value as the embedded value and which side is demoted to a child.
//
// spec.md §4.2 and §4.4.1 disagree with each other on which of
// CompleteMatchLeft/CompleteMatchRight names which orientation (see
// DESIGN.md, "Open Question: CompleteMatchLeft/Right orientation").
// This type sidesteps the ambiguity entirely by naming the two cases
// after which argument is shorter, matching the unambiguous ground
// truth in original_source/src/keys.rs's compare_leaf_keys.
type leafKeyMatch struct {
	kind leafMatchKind
	n    int
}

type leafMatchKind int

const (
	leafFullMatch leafMatchKind = iota
	leafPartialMatch
	// leafFirstIsPrefix: a (the first argument) is a strict prefix of b.
	leafFirstIsPrefix
	// leafSecondIsPrefix: b (the second argument) is a strict prefix of a.
	leafSecondIsPrefix
)

// compareLeafKeys implements spec §4.2's compare_leaf_keys(a, b).
func compareLeafKeys(a, b []byte) leafKeyMatch {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			return leafKeyMatch{kind: leafPartialMatch, n: i}
		}
	}
	switch {
	case len(a) == len(b):
		return leafKeyMatch{kind: leafFullMatch}
	case len(a) < len(b):
		return leafKeyMatch{kind: leafFirstIsPrefix, n: len(a)}
	default:
		return leafKeyMatch{kind: leafSecondIsPrefix, n: len(b)}
	}
}
