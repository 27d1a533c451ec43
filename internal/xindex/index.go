// Package xindex implements the sorted-slice index each of the quad
// store's twelve orderings is backed by. Sord keeps the same index as a
// height-balanced tree; nothing in the retrieved example pack imports a
// balanced-tree or skiplist library, so we keep the ordering invariant in
// a flat, binary-searched slice instead - a "sorted gap buffer" the store
// specification explicitly allows as a substitute for a self-balancing
// tree at this scale.
package xindex

import "golang.org/x/exp/slices"

// Index is a sorted slice of keys ordered by cmp, with no exactly-equal
// duplicates. Cmp need not be a total order over every field of T - when
// it ties (returns 0) on two keys that are not themselves equal, both are
// kept, adjacent to each other in the slice. This lets a store key an
// index on a subset of a record's fields (e.g. a quad's subject,
// predicate and object, ignoring its graph) while still holding one
// entry per distinct record.
type Index[T comparable] struct {
	items []T
	cmp   func(a, b T) int
}

func New[T comparable](cmp func(a, b T) int) *Index[T] {
	return &Index[T]{cmp: cmp}
}

func (idx *Index[T]) Len() int { return len(idx.items) }

func (idx *Index[T]) At(i int) T { return idx.items[i] }

// lowerBound returns the index of the first item not less than key, i.e.
// the insertion point that keeps the slice sorted. This is the Go
// stand-in for sord's index_lower_bound_iter: both widen a match to its
// leftmost occurrence so range scans over duplicate-by-prefix keys start
// at the first one.
func (idx *Index[T]) lowerBound(key T) int {
	i, _ := slices.BinarySearchFunc(idx.items, key, idx.cmp)
	return i
}

// Find returns the position of key and true if present, otherwise the
// position it would be inserted at and false. When cmp ties on more than
// one stored item (a "tied run"), Find scans the run for the one that is
// actually equal to key rather than assuming the first tie is it; an
// absent key's insertion position is the end of its tied run, so the
// items of a run stay in the order they were inserted.
func (idx *Index[T]) Find(key T) (int, bool) {
	i := idx.lowerBound(key)
	for ; i < len(idx.items) && idx.cmp(idx.items[i], key) == 0; i++ {
		if idx.items[i] == key {
			return i, true
		}
	}
	return i, false
}

// Insert adds key to the index, keeping it sorted. It reports whether the
// key was newly inserted (false if an exactly equal key was already
// present); a key that only ties under cmp with existing, distinct keys
// is inserted after them.
func (idx *Index[T]) Insert(key T) bool {
	i, found := idx.Find(key)
	if found {
		return false
	}
	idx.items = slices.Insert(idx.items, i, key)
	return true
}

// Remove deletes key from the index if present, reporting whether
// anything was removed.
func (idx *Index[T]) Remove(key T) bool {
	i, found := idx.Find(key)
	if !found {
		return false
	}
	idx.items = slices.Delete(idx.items, i, i+1)
	return true
}

// RangeFrom returns the position of the first item >= key, for use as the
// start of a forward scan. It is lowerBound exposed for callers that need
// to seek without inserting.
func (idx *Index[T]) RangeFrom(key T) int {
	return idx.lowerBound(key)
}

// Each calls fn for every item from position start until fn returns false
// or the index is exhausted.
func (idx *Index[T]) Each(start int, fn func(item T) bool) {
	for i := start; i < len(idx.items); i++ {
		if !fn(idx.items[i]) {
			return
		}
	}
}
