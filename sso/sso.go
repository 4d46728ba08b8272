package sso

import (
	"github.com/quickwritereader/ContainerProbe/alloc"
	"github.com/quickwritereader/ContainerProbe/types"
)

// InlineCap is the small-buffer threshold K: payloads up to this many bytes
// live in the object itself and never touch the heap.
const InlineCap = 23

// SSOString is a byte-sequence container with small-buffer optimization.
// Content of length <= InlineCap is stored in the embedded buffer (inline
// layout); anything longer lives in an exclusively owned heap buffer (heap
// layout). The zero value is a valid empty inline string.
//
// Instances are single-threaded and own their heap storage exclusively;
// use Clone for an independent copy. Heap buffers come from the alloc pool,
// so an instance that went heap should be finished with Release.
type SSOString struct {
	layout types.Layout
	n      int
	inline [InlineCap]byte
	heap   []byte // len(heap) is the heap capacity, only set in heap layout
}

// New returns an empty string in inline layout. No allocation happens.
func New() *SSOString {
	return &SSOString{}
}

// NewFromString returns a string assigned from s.
func NewFromString(s string) *SSOString {
	str := New()
	str.AssignString(s)
	return str
}

// Layout reports which storage layout is active.
func (s *SSOString) Layout() types.Layout {
	return s.layout
}

// Len returns the content length in bytes.
func (s *SSOString) Len() int {
	return s.n
}

// Cap returns the capacity of the active layout: InlineCap while inline,
// the owned buffer size while heap.
func (s *SSOString) Cap() int {
	if s.layout == types.LayoutHeap {
		return len(s.heap)
	}
	return InlineCap
}

// Bytes returns a view of the content. The view is only valid until the
// next mutating operation.
func (s *SSOString) Bytes() []byte {
	if s.layout == types.LayoutHeap {
		return s.heap[:s.n]
	}
	return s.inline[:s.n]
}

// String returns a copy of the content.
func (s *SSOString) String() string {
	return string(s.Bytes())
}

// Assign replaces the content with b, re-evaluating the layout. A short b
// always lands inline, releasing any prior heap buffer; a long b stays in
// (or transitions to) heap layout.
func (s *SSOString) Assign(b []byte) {
	if len(b) <= InlineCap {
		if s.layout == types.LayoutHeap {
			alloc.Release(s.heap)
			s.heap = nil
			s.layout = types.LayoutInline
		}
		s.n = copy(s.inline[:], b)
		return
	}

	if s.layout == types.LayoutHeap && len(b) <= len(s.heap) {
		// existing allocation is large enough, reuse it
		s.n = copy(s.heap, b)
		return
	}

	buf := alloc.Acquire(len(b))
	buf = buf[:cap(buf)]
	copy(buf, b)
	if s.layout == types.LayoutHeap {
		alloc.Release(s.heap)
	}
	s.heap = buf
	s.layout = types.LayoutHeap
	s.n = len(b)
}

// AssignString replaces the content with str.
func (s *SSOString) AssignString(str string) {
	s.Assign([]byte(str))
}

// Append extends the content with b, growing and transitioning layout as
// needed. Growth doubles the current capacity until the new length fits.
func (s *SSOString) Append(b []byte) {
	need := s.n + len(b)

	if s.layout == types.LayoutInline {
		if need <= InlineCap {
			copy(s.inline[s.n:], b)
			s.n = need
			return
		}
		buf := alloc.Acquire(alloc.GrowTo(InlineCap, need))
		buf = buf[:cap(buf)]
		copy(buf, s.inline[:s.n])
		copy(buf[s.n:], b)
		s.heap = buf
		s.layout = types.LayoutHeap
		s.n = need
		return
	}

	if need > len(s.heap) {
		buf := alloc.Acquire(alloc.GrowTo(len(s.heap), need))
		buf = buf[:cap(buf)]
		copy(buf, s.heap[:s.n])
		// old buffer goes back only after the contents moved
		alloc.Release(s.heap)
		s.heap = buf
	}
	copy(s.heap[s.n:], b)
	s.n = need
}

// AppendString extends the content with str.
func (s *SSOString) AppendString(str string) {
	s.Append([]byte(str))
}

// Clear resets the length to 0. The layout and any heap allocation are
// retained: a cleared previously-long string still reports heap layout
// with its capacity intact, distinct from a fresh empty string.
func (s *SSOString) Clear() {
	s.n = 0
}

// Clone returns an independent deep copy.
func (s *SSOString) Clone() *SSOString {
	c := New()
	c.Assign(s.Bytes())
	return c
}

// Release ends the string's life: any heap buffer is returned to the pool
// and the string becomes empty inline. Using it afterwards is valid.
func (s *SSOString) Release() {
	if s.layout == types.LayoutHeap {
		alloc.Release(s.heap)
		s.heap = nil
		s.layout = types.LayoutInline
	}
	s.n = 0
}
