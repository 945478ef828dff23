// Package arena provides the allocation facade used by the tree
// implementation.
//
// A production arena allocator carves memory out of large pre-allocated
// blocks and frees it in one shot, trading per-object bookkeeping for
// bulk reclamation and better cache locality. This package does not do
// that: ART trees have no bulk-free moment (nodes come and go
// individually across the tree's lifetime via insert and delete), and
// hand-rolled bump/recycle allocation cannot be verified without
// running the allocator under the Go memory model. [New] and [Free]
// exist purely so call sites read the same way an arena-backed tree's
// would — `arena.New(Node4[T]{...})`, `arena.Free(leaf)` — while being
// backed entirely by the garbage collector.
package arena

// New allocates a value on the heap and returns a pointer to it.
//
// Call sites use this the way an arena-backed allocator's New would be
// used, so that swapping in a real arena later (should the "custom
// allocators" non-goal ever be revisited) only touches this file.
func New[T any](value T) *T {
	v := new(T)
	*v = value
	return v
}

// Free releases a value previously obtained from [New].
//
// It is a no-op: the garbage collector reclaims the memory once the
// last reference is dropped. Call sites still call it at the point a
// node is logically discarded (replaced by a grown/shrunk variant,
// collapsed into its sole child, or removed by delete) so that the
// ownership discipline described by the tree's mutation protocol stays
// visible in the code, even though nothing here needs to run.
func Free[T any](p *T) {}
