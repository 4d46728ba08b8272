package types

// Layout is the storage discriminant of a small-buffer-optimized container:
// content either lives in the object's embedded buffer or in an owned heap
// allocation. Exactly one layout is active at a time.
type Layout uint8

const (
	LayoutInline Layout = 0
	LayoutHeap   Layout = 1
)

// String returns the human-readable name of the layout
func (l Layout) String() string {
	switch l {
	case LayoutInline:
		return "inline"
	case LayoutHeap:
		return "heap"
	default:
		return "invalid"
	}
}

// Kind identifies which container family a captured state belongs to.
type Kind uint8

const (
	KindString Kind = 0
	KindArray  Kind = 1
)

// String returns the human-readable name of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// EncodeTag packs kind and layout into a single header byte: kind in bit 1,
// layout in bit 0. The upper bits are reserved and encode as zero.
func EncodeTag(k Kind, l Layout) byte {
	return byte(k)<<1 | byte(l)&0x01
}

// DecodeTag splits a header byte into kind and layout
func DecodeTag(tag byte) (k Kind, l Layout) {
	return Kind(tag >> 1 & 0x01), Layout(tag & 0x01)
}
