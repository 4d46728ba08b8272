package dynarr

import (
	"errors"
	"fmt"
	"iter"

	"github.com/quickwritereader/ContainerProbe/alloc"
)

var ErrUnderflow = errors.New("pop back on empty array")
var ErrOutOfRange = errors.New("index out of range")

// DynArray is a contiguous resizable sequence with amortized-O(1) append.
// Capacity grows by doubling and only ever changes through explicit
// operations: append-triggered growth, Reserve, ShrinkToFit. The zero value
// is a valid empty array with no allocation.
//
// Instances are single-threaded and own their buffer exclusively; use Clone
// for an independent copy.
type DynArray[T any] struct {
	buf      []T // len(buf) is the capacity, nil when capacity is 0
	n        int
	reallocs int // buffer replacements, observable at fixture checkpoints
}

// New returns an empty array with capacity 0. No allocation happens.
func New[T any]() *DynArray[T] {
	return &DynArray[T]{}
}

// Len returns the number of valid elements.
func (a *DynArray[T]) Len() int {
	return a.n
}

// Cap returns the current capacity.
func (a *DynArray[T]) Cap() int {
	return len(a.buf)
}

// Reallocs returns how many times the backing buffer has been replaced.
func (a *DynArray[T]) Reallocs() int {
	return a.reallocs
}

// replace installs a fresh buffer of capacity c, moving the live elements.
func (a *DynArray[T]) replace(c int) {
	next := make([]T, c)
	copy(next, a.buf[:a.n])
	a.buf = next
	a.reallocs++
}

// PushBack appends v, doubling the capacity when full.
func (a *DynArray[T]) PushBack(v T) {
	if a.n == len(a.buf) {
		a.replace(alloc.NextCap(len(a.buf)))
	}
	a.buf[a.n] = v
	a.n++
}

// PopBack removes and returns the last element. Capacity is untouched.
func (a *DynArray[T]) PopBack() (T, error) {
	var zero T
	if a.n == 0 {
		return zero, ErrUnderflow
	}
	a.n--
	v := a.buf[a.n]
	a.buf[a.n] = zero // drop the reference so the slot does not pin memory
	return v, nil
}

// Assign replaces all contents with vs. The new capacity equals the new
// length exactly; the prior allocation is discarded.
func (a *DynArray[T]) Assign(vs []T) {
	if len(vs) == 0 {
		a.buf = nil
		a.n = 0
		return
	}
	next := make([]T, len(vs))
	copy(next, vs)
	a.buf = next
	a.n = len(vs)
	a.reallocs++
}

// Reserve grows the capacity to at least c, preserving elements and order.
// It never shrinks.
func (a *DynArray[T]) Reserve(c int) {
	if c <= len(a.buf) {
		return
	}
	a.replace(c)
}

// ShrinkToFit reallocates so that capacity equals length exactly. A shrink
// to length 0 releases the buffer entirely.
func (a *DynArray[T]) ShrinkToFit() {
	if a.n == len(a.buf) {
		return
	}
	if a.n == 0 {
		a.buf = nil
		return
	}
	a.replace(a.n)
}

// Clear resets the length to 0. The capacity and allocation are retained,
// symmetric with SSOString.Clear.
func (a *DynArray[T]) Clear() {
	clear(a.buf[:a.n])
	a.n = 0
}

// At returns the element at index i.
func (a *DynArray[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.n {
		return zero, fmt.Errorf("At: index %d outside [0, %d): %w", i, a.n, ErrOutOfRange)
	}
	return a.buf[i], nil
}

// Set stores v at index i.
func (a *DynArray[T]) Set(i int, v T) error {
	if i < 0 || i >= a.n {
		return fmt.Errorf("Set: index %d outside [0, %d): %w", i, a.n, ErrOutOfRange)
	}
	a.buf[i] = v
	return nil
}

// Back returns the last element.
func (a *DynArray[T]) Back() (T, error) {
	var zero T
	if a.n == 0 {
		return zero, fmt.Errorf("Back: empty array: %w", ErrOutOfRange)
	}
	return a.buf[a.n-1], nil
}

// Slice returns a view of the valid elements. The view is only valid until
// the next mutating operation.
func (a *DynArray[T]) Slice() []T {
	return a.buf[:a.n]
}

// Clone returns an independent deep copy. The clone's capacity equals its
// length; realloc history does not carry over.
func (a *DynArray[T]) Clone() *DynArray[T] {
	c := New[T]()
	if a.n > 0 {
		c.buf = make([]T, a.n)
		copy(c.buf, a.buf[:a.n])
		c.n = a.n
	}
	return c
}

// All returns an iterator over index/element pairs in order.
func (a *DynArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}
