// Package chain implements an insertion-ordered singly-linked list.
//
// Elements live in an arena and link to each other by index rather than by
// pointer, so removing an element only rewrites one link.
package chain

import "github.com/goose-lang/std"

// ref is a 1-based index into the arena; nilRef marks the end of the chain.
type ref uint64

const nilRef ref = 0

type element[T comparable] struct {
	value T
	next  ref
}

// Element is a snapshot of a chain element, returned by Find.
type Element[T comparable] struct {
	Value T
}

// Chain is a singly-linked list of comparable values. The zero value is an
// empty chain ready to use.
//
// A Chain is not safe for concurrent use.
type Chain[T comparable] struct {
	elems []element[T]
	free  []ref
	head  ref
	tail  ref
	len   int
}

func New[T comparable]() *Chain[T] {
	return &Chain[T]{}
}

func (c *Chain[T]) at(r ref) *element[T] {
	return &c.elems[r-1]
}

func (c *Chain[T]) alloc(value T) ref {
	if n := len(c.free); n > 0 {
		r := c.free[n-1]
		c.free = c.free[:n-1]
		*c.at(r) = element[T]{value: value}
		return r
	}
	c.elems = append(c.elems, element[T]{value: value})
	return ref(len(c.elems))
}

func (c *Chain[T]) release(r ref) {
	// drop the value so anything it points to can be collected
	*c.at(r) = element[T]{}
	c.free = append(c.free, r)
}

// IsEmpty reports whether the chain has no elements.
//
// Head and tail are always absent together; a chain where only one of them
// is set is corrupt and fails the assertion.
func (c *Chain[T]) IsEmpty() bool {
	std.Assert((c.head == nilRef) == (c.tail == nilRef))
	return c.head == nilRef && c.tail == nilRef
}

func (c *Chain[T]) Len() int {
	return c.len
}

// Push appends value at the end of the chain.
func (c *Chain[T]) Push(value T) {
	r := c.alloc(value)
	if c.IsEmpty() {
		c.head = r
		c.tail = r
	} else {
		c.at(c.tail).next = r
		c.tail = r
	}
	c.len++
}

// Find returns the earliest-inserted element equal to value.
func (c *Chain[T]) Find(value T) (Element[T], bool) {
	for r := c.head; r != nilRef; r = c.at(r).next {
		if c.at(r).value == value {
			return Element[T]{Value: c.at(r).value}, true
		}
	}
	return Element[T]{}, false
}

// Collect copies the chain's values in insertion order into a new slice. It
// returns false if the chain is empty.
func (c *Chain[T]) Collect() ([]T, bool) {
	if c.IsEmpty() {
		return nil, false
	}
	out := make([]T, 0, c.len)
	for r := c.head; r != nilRef; r = c.at(r).next {
		out = append(out, c.at(r).value)
	}
	return out, true
}

// Remove deletes the first element equal to value, if any. Later duplicates
// are left in place.
func (c *Chain[T]) Remove(value T) {
	prev := nilRef
	for r := c.head; r != nilRef; r = c.at(r).next {
		if c.at(r).value != value {
			prev = r
			continue
		}
		next := c.at(r).next
		if prev == nilRef {
			c.head = next
		} else {
			c.at(prev).next = next
		}
		if next == nilRef {
			c.tail = prev
		}
		c.release(r)
		c.len--
		return
	}
}

// checkInvariants walks the chain and asserts its structural invariants.
func (c *Chain[T]) checkInvariants() {
	std.Assert((c.head == nilRef) == (c.tail == nilRef))
	std.Assert(c.len+len(c.free) == len(c.elems))
	if c.head == nilRef {
		std.Assert(c.len == 0)
		return
	}
	steps := 0
	r := c.head
	for r != c.tail {
		std.Assert(steps < c.len)
		r = c.at(r).next
		std.Assert(r != nilRef)
		steps++
	}
	std.Assert(steps == c.len-1)
	std.Assert(c.at(c.tail).next == nilRef)
}
