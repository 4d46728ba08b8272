// Package checkpoint records named fixture checkpoints in execution order,
// so an external inspector's reconstruction can be checked tag by tag
// against the captured ground truth.
package checkpoint

import (
	"fmt"
	"iter"

	goccyjson "github.com/goccy/go-json"
)

// Entry is one recorded checkpoint: the sequence number of the mark and the
// state captured immediately after the mutating operation.
type Entry[S any] struct {
	Seq   int `json:"seq"`
	State S   `json:"state"`
}

// node carries the tag directly
type node[S any] struct {
	tag   string
	entry Entry[S]
	prev  *node[S]
	next  *node[S]
}

// Recorder is an insertion-ordered map of checkpoint tag to captured state.
// Tags are unique within a run; marking the same tag twice is a programming
// error in the scenario.
type Recorder[S any] struct {
	data map[string]*node[S] // tag → node
	head *node[S]
	tail *node[S]
}

// NewRecorder creates an empty Recorder.
func NewRecorder[S any]() *Recorder[S] {
	return &Recorder[S]{
		data: make(map[string]*node[S]),
	}
}

// Len returns the number of recorded checkpoints.
func (r *Recorder[S]) Len() int {
	return len(r.data)
}

// Mark records state under tag at the next sequence number.
func (r *Recorder[S]) Mark(tag string, state S) error {
	if _, ok := r.data[tag]; ok {
		return fmt.Errorf("Mark: duplicate checkpoint tag %q", tag)
	}
	n := &node[S]{tag: tag, entry: Entry[S]{Seq: len(r.data), State: state}}
	r.data[tag] = n
	if r.tail == nil {
		r.head, r.tail = n, n
	} else {
		n.prev = r.tail
		r.tail.next = n
		r.tail = n
	}
	return nil
}

// Get retrieves the entry recorded under tag.
func (r *Recorder[S]) Get(tag string) (Entry[S], bool) {
	n, ok := r.data[tag]
	if !ok {
		var zero Entry[S]
		return zero, false
	}
	return n.entry, true
}

// State retrieves just the state recorded under tag.
func (r *Recorder[S]) State(tag string) (S, bool) {
	e, ok := r.Get(tag)
	return e.State, ok
}

// Tags returns the checkpoint tags in mark order.
func (r *Recorder[S]) Tags() []string {
	tags := []string{}
	for n := r.head; n != nil; n = n.next {
		tags = append(tags, n.tag)
	}
	return tags
}

// All returns an iterator over tag/entry pairs in mark order.
func (r *Recorder[S]) All() iter.Seq2[string, Entry[S]] {
	return func(yield func(string, Entry[S]) bool) {
		for n := r.head; n != nil; n = n.next {
			if !yield(n.tag, n.entry) {
				return
			}
		}
	}
}

// MarshalJSON encodes as a JSON object keyed by tag, in mark order.
func (r *Recorder[S]) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	i := 0
	for n := r.head; n != nil; n = n.next {
		tagBytes, err := goccyjson.Marshal(n.tag)
		if err != nil {
			return nil, err
		}
		entryBytes, err := goccyjson.Marshal(n.entry)
		if err != nil {
			return nil, err
		}
		buf = append(buf, tagBytes...)
		buf = append(buf, ':')
		buf = append(buf, entryBytes...)
		if i < len(r.data)-1 {
			buf = append(buf, ',')
		}
		i++
	}
	buf = append(buf, '}')
	return buf, nil
}
