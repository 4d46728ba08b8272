// Package inspect is the boundary an external inspector reads: it captures
// container representations into plain snapshot records, verifies the
// storage invariants over them, and encodes them for transport.
package inspect

import (
	"github.com/quickwritereader/ContainerProbe/dynarr"
	"github.com/quickwritereader/ContainerProbe/sso"
	"github.com/quickwritereader/ContainerProbe/types"
)

// StringState is a point-in-time snapshot of an SSOString representation.
type StringState struct {
	Kind      types.Kind   `json:"kind" msgpack:"kind"`
	Layout    types.Layout `json:"layout" msgpack:"layout"`
	Len       int          `json:"len" msgpack:"len"`
	Cap       int          `json:"cap" msgpack:"cap"`
	Allocated bool         `json:"allocated" msgpack:"allocated"`
	Content   string       `json:"content" msgpack:"content"`
}

// ArrayState is a point-in-time snapshot of a DynArray representation.
type ArrayState[T any] struct {
	Kind      types.Kind `json:"kind" msgpack:"kind"`
	Len       int        `json:"len" msgpack:"len"`
	Cap       int        `json:"cap" msgpack:"cap"`
	Allocated bool       `json:"allocated" msgpack:"allocated"`
	Reallocs  int        `json:"reallocs" msgpack:"reallocs"`
	Content   []T        `json:"content" msgpack:"content"`
}

// CaptureString snapshots s. The content is copied, so the snapshot stays
// valid across later mutations of s.
func CaptureString(s *sso.SSOString) StringState {
	return StringState{
		Kind:      types.KindString,
		Layout:    s.Layout(),
		Len:       s.Len(),
		Cap:       s.Cap(),
		Allocated: s.Layout() == types.LayoutHeap,
		Content:   s.String(),
	}
}

// CaptureArray snapshots a. The content is copied.
func CaptureArray[T any](a *dynarr.DynArray[T]) ArrayState[T] {
	var content []T
	if a.Len() > 0 {
		content = make([]T, a.Len())
		copy(content, a.Slice())
	}
	return ArrayState[T]{
		Kind:      types.KindArray,
		Len:       a.Len(),
		Cap:       a.Cap(),
		Allocated: a.Cap() > 0,
		Reallocs:  a.Reallocs(),
		Content:   content,
	}
}
