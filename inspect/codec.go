package inspect

import (
	"fmt"

	goccyjson "github.com/goccy/go-json"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/exp/constraints"

	"github.com/quickwritereader/ContainerProbe/types"
)

// EncodeJSON encodes a snapshot as JSON.
func EncodeJSON(v any) ([]byte, error) {
	return goccyjson.Marshal(v)
}

// DecodeJSON decodes a JSON snapshot into v.
func DecodeJSON(data []byte, v any) error {
	return goccyjson.Unmarshal(data, v)
}

// EncodeMsgpack encodes a snapshot as msgpack.
func EncodeMsgpack(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// DecodeMsgpack decodes a msgpack snapshot into v.
func DecodeMsgpack(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Compact wire format: a single tag byte carrying kind+layout, followed by
// varint-encoded counters and the content. Strings:
//
//	tag | len | cap | allocated | content
//
// Integer arrays additionally carry the realloc counter and each element
// as a varint:
//
//	tag | len | cap | reallocs | allocated | elem*len

// AppendCompactString appends the compact encoding of st to bs.
func AppendCompactString(bs []byte, st StringState) []byte {
	size := 1 +
		varint.Int.Size(st.Len) +
		varint.Int.Size(st.Cap) +
		ord.Bool.Size(st.Allocated) +
		ord.String.Size(st.Content)

	off := len(bs)
	bs = append(bs, make([]byte, size)...)
	bs[off] = types.EncodeTag(st.Kind, st.Layout)
	n := off + 1
	n += varint.Int.Marshal(st.Len, bs[n:])
	n += varint.Int.Marshal(st.Cap, bs[n:])
	n += ord.Bool.Marshal(st.Allocated, bs[n:])
	n += ord.String.Marshal(st.Content, bs[n:])
	return bs[:n]
}

// DecodeCompactString decodes a compact string snapshot from the front of
// bs, returning the snapshot and the number of bytes consumed.
func DecodeCompactString(bs []byte) (StringState, int, error) {
	var st StringState
	if len(bs) < 1 {
		return st, 0, stateErr(ErrInvalidFormat, "tag", fmt.Errorf("empty buffer"))
	}
	kind, layout := types.DecodeTag(bs[0])
	if kind != types.KindString {
		return st, 0, stateErr(ErrInvalidFormat, "tag", fmt.Errorf("kind %v is not a string", kind))
	}
	st.Kind = kind
	st.Layout = layout
	n := 1

	var err error
	var m int
	if st.Len, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return st, n, stateErr(ErrInvalidFormat, "len", err)
	}
	n += m
	if st.Cap, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return st, n, stateErr(ErrInvalidFormat, "cap", err)
	}
	n += m
	if st.Allocated, m, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return st, n, stateErr(ErrInvalidFormat, "allocated", err)
	}
	n += m
	if st.Content, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return st, n, stateErr(ErrInvalidFormat, "content", err)
	}
	n += m
	return st, n, nil
}

// AppendCompactArray appends the compact encoding of an integer-element
// array snapshot to bs.
func AppendCompactArray[T constraints.Integer](bs []byte, st ArrayState[T]) []byte {
	size := 1 +
		varint.Int.Size(st.Len) +
		varint.Int.Size(st.Cap) +
		varint.Int.Size(st.Reallocs) +
		ord.Bool.Size(st.Allocated)
	for _, v := range st.Content {
		size += varint.Int.Size(int(v))
	}

	// arrays have no inline layout; the tag's layout bit mirrors whether
	// a buffer is currently allocated
	layout := types.LayoutInline
	if st.Allocated {
		layout = types.LayoutHeap
	}

	off := len(bs)
	bs = append(bs, make([]byte, size)...)
	bs[off] = types.EncodeTag(st.Kind, layout)
	n := off + 1
	n += varint.Int.Marshal(st.Len, bs[n:])
	n += varint.Int.Marshal(st.Cap, bs[n:])
	n += varint.Int.Marshal(st.Reallocs, bs[n:])
	n += ord.Bool.Marshal(st.Allocated, bs[n:])
	for _, v := range st.Content {
		n += varint.Int.Marshal(int(v), bs[n:])
	}
	return bs[:n]
}

// DecodeCompactArray decodes a compact array snapshot from the front of bs.
func DecodeCompactArray[T constraints.Integer](bs []byte) (ArrayState[T], int, error) {
	var st ArrayState[T]
	if len(bs) < 1 {
		return st, 0, stateErr(ErrInvalidFormat, "tag", fmt.Errorf("empty buffer"))
	}
	kind, _ := types.DecodeTag(bs[0])
	if kind != types.KindArray {
		return st, 0, stateErr(ErrInvalidFormat, "tag", fmt.Errorf("kind %v is not an array", kind))
	}
	st.Kind = kind
	n := 1

	var err error
	var m int
	if st.Len, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return st, n, stateErr(ErrInvalidFormat, "len", err)
	}
	n += m
	if st.Cap, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return st, n, stateErr(ErrInvalidFormat, "cap", err)
	}
	n += m
	if st.Reallocs, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return st, n, stateErr(ErrInvalidFormat, "reallocs", err)
	}
	n += m
	if st.Allocated, m, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return st, n, stateErr(ErrInvalidFormat, "allocated", err)
	}
	n += m

	if st.Len < 0 {
		return st, n, stateErr(ErrInvalidFormat, "len", fmt.Errorf("negative length %d", st.Len))
	}
	if st.Len > 0 {
		st.Content = make([]T, 0, st.Len)
		for i := 0; i < st.Len; i++ {
			v, m, err := varint.Int.Unmarshal(bs[n:])
			if err != nil {
				return st, n, stateErr(ErrInvalidFormat, "content", err)
			}
			n += m
			st.Content = append(st.Content, T(v))
		}
	}
	return st, n, nil
}
