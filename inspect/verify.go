package inspect

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/quickwritereader/ContainerProbe/sso"
	"github.com/quickwritereader/ContainerProbe/types"
)

type ErrorCode int

const (
	ErrUnknown          ErrorCode = iota
	ErrNegativeLength             // length below zero
	ErrCapacityBelowLen           // capacity smaller than length
	ErrLayoutMismatch             // discriminant disagrees with ownership fields
	ErrContentMismatch            // content length disagrees with recorded length
	ErrInvalidFormat              // decoding an encoded snapshot failed
)

// String implements fmt.Stringer
func (e ErrorCode) String() string {
	switch e {
	case ErrUnknown:
		return "ErrUnknown"
	case ErrNegativeLength:
		return "ErrNegativeLength"
	case ErrCapacityBelowLen:
		return "ErrCapacityBelowLen"
	case ErrLayoutMismatch:
		return "ErrLayoutMismatch"
	case ErrContentMismatch:
		return "ErrContentMismatch"
	case ErrInvalidFormat:
		return "ErrInvalidFormat"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(e))
	}
}

// StateError reports an invariant violation found in a snapshot.
type StateError struct {
	Code  ErrorCode
	Field string
	Inner error
}

func (e *StateError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s: field %q: %v", e.Code, e.Field, e.Inner)
	}
	return fmt.Sprintf("%s: field %q", e.Code, e.Field)
}

func (e *StateError) Unwrap() error {
	return e.Inner
}

func stateErr(code ErrorCode, field string, inner error) error {
	return &StateError{Code: code, Field: field, Inner: inner}
}

// RangeDetails represents a structured range violation for any ordered type.
type RangeDetails[T constraints.Ordered] struct {
	Min    *T
	Max    *T
	Actual T
}

func (r RangeDetails[T]) Error() string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%v not in [%v , %v]", r.Actual, *r.Min, *r.Max)
	case r.Min != nil:
		return fmt.Sprintf("%v < %v", r.Actual, *r.Min)
	case r.Max != nil:
		return fmt.Sprintf("%v > %v", r.Actual, *r.Max)
	default:
		return fmt.Sprintf("%v", r.Actual)
	}
}

// CheckRange validates val against optional min/max bounds.
// Returns a RangeDetails if out of range, otherwise nil.
func CheckRange[T constraints.Ordered](val T, min *T, max *T) error {
	if (min != nil && val < *min) || (max != nil && val > *max) {
		return RangeDetails[T]{Min: min, Max: max, Actual: val}
	}
	return nil
}

// VerifyString checks the storage invariants of a string snapshot: exactly
// one layout active, length within the active capacity, content consistent.
func VerifyString(st StringState) error {
	if st.Len < 0 {
		return stateErr(ErrNegativeLength, "len", nil)
	}
	if err := CheckRange(st.Len, nil, &st.Cap); err != nil {
		return stateErr(ErrCapacityBelowLen, "cap", err)
	}
	switch st.Layout {
	case types.LayoutInline:
		if st.Allocated {
			return stateErr(ErrLayoutMismatch, "allocated", nil)
		}
		if st.Cap != sso.InlineCap {
			return stateErr(ErrLayoutMismatch, "cap",
				RangeDetails[int]{Actual: st.Cap})
		}
	case types.LayoutHeap:
		if !st.Allocated {
			return stateErr(ErrLayoutMismatch, "allocated", nil)
		}
	default:
		return stateErr(ErrLayoutMismatch, "layout", nil)
	}
	if len(st.Content) != st.Len {
		return stateErr(ErrContentMismatch, "content", nil)
	}
	return nil
}

// VerifyArray checks the storage invariants of an array snapshot.
func VerifyArray[T any](st ArrayState[T]) error {
	if st.Len < 0 {
		return stateErr(ErrNegativeLength, "len", nil)
	}
	if err := CheckRange(st.Len, nil, &st.Cap); err != nil {
		return stateErr(ErrCapacityBelowLen, "cap", err)
	}
	if st.Allocated != (st.Cap > 0) {
		return stateErr(ErrLayoutMismatch, "allocated", nil)
	}
	if err := CheckRange(st.Reallocs, new(int), nil); err != nil {
		return stateErr(ErrUnknown, "reallocs", err)
	}
	if len(st.Content) != st.Len {
		return stateErr(ErrContentMismatch, "content", nil)
	}
	return nil
}

// VerifyGrowth checks a capacity trace for monotonic doubling-or-better
// growth: capacities never decrease and every growth event at least doubles
// the prior capacity (or sets it to 1 from 0).
func VerifyGrowth(caps []int) error {
	for i := 1; i < len(caps); i++ {
		prev, cur := caps[i-1], caps[i]
		if cur < prev {
			return stateErr(ErrCapacityBelowLen, "cap",
				fmt.Errorf("capacity shrank %d -> %d at step %d", prev, cur, i))
		}
		if cur == prev {
			continue
		}
		want := 2 * prev
		if prev == 0 {
			want = 1
		}
		if cur < want {
			return stateErr(ErrUnknown, "cap",
				fmt.Errorf("growth event %d -> %d at step %d below policy minimum %d", prev, cur, i, want))
		}
	}
	return nil
}
