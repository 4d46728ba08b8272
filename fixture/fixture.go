// Package fixture replays the canonical container lifecycles, marking a
// checkpoint after every mutating operation. The recorded states are the
// ground truth an external inspector is validated against.
package fixture

import (
	"github.com/quickwritereader/ContainerProbe/checkpoint"
	"github.com/quickwritereader/ContainerProbe/dynarr"
	"github.com/quickwritereader/ContainerProbe/inspect"
	"github.com/quickwritereader/ContainerProbe/sso"
)

// LongLiteral exceeds the small-buffer threshold and forces heap layout.
const LongLiteral = "this string is long enough to exceed the small buffer optimization limit"

// SpecialChars probes escaping in the inspector's content rendering.
const SpecialChars = "special chars: \t\n\\\""

// StringTags lists the string scenario checkpoints in execution order.
var StringTags = []string{
	"empty", "short", "short_append", "long", "long_to_short",
	"cleared", "special_chars",
}

// ArrayTags lists the array scenario checkpoints in execution order.
var ArrayTags = []string{
	"empty", "push_back_one", "push_back_three", "after_pop_back",
	"after_assign", "after_reserve", "after_shrink_to_fit", "cleared",
	"growing", "after_realloc",
}

// StringScenario drives an SSOString through every layout transition:
// inline growth, the inline→heap crossing, heap→inline on short assignment,
// and the capacity-retaining clear.
func StringScenario(rec *checkpoint.Recorder[inspect.StringState]) error {
	s := sso.New()
	defer s.Release()

	steps := []struct {
		tag string
		op  func(*sso.SSOString)
	}{
		{"empty", func(*sso.SSOString) {}},
		{"short", func(s *sso.SSOString) { s.AssignString("hello") }},
		{"short_append", func(s *sso.SSOString) { s.AppendString(", world!") }},
		{"long", func(s *sso.SSOString) { s.AssignString(LongLiteral) }},
		{"long_to_short", func(s *sso.SSOString) { s.AssignString("back to short") }},
		{"cleared", func(s *sso.SSOString) { s.Clear() }},
		{"special_chars", func(s *sso.SSOString) { s.AssignString(SpecialChars) }},
	}

	for _, step := range steps {
		step.op(s)
		if err := rec.Mark(step.tag, inspect.CaptureString(s)); err != nil {
			return err
		}
	}
	return nil
}

// ArrayScenario drives a DynArray[int] through append growth, pop, bulk
// assignment, reservation, shrink, the capacity-retaining clear, and a
// reallocation from zero capacity.
func ArrayScenario(rec *checkpoint.Recorder[inspect.ArrayState[int]]) error {
	a := dynarr.New[int]()

	steps := []struct {
		tag string
		op  func(*dynarr.DynArray[int]) error
	}{
		{"empty", func(*dynarr.DynArray[int]) error { return nil }},
		{"push_back_one", func(a *dynarr.DynArray[int]) error {
			a.PushBack(10)
			return nil
		}},
		{"push_back_three", func(a *dynarr.DynArray[int]) error {
			a.PushBack(20)
			a.PushBack(30)
			return nil
		}},
		{"after_pop_back", func(a *dynarr.DynArray[int]) error {
			_, err := a.PopBack()
			return err
		}},
		{"after_assign", func(a *dynarr.DynArray[int]) error {
			a.Assign([]int{100, 200, 300, 400, 500})
			return nil
		}},
		{"after_reserve", func(a *dynarr.DynArray[int]) error {
			a.Reserve(100)
			return nil
		}},
		{"after_shrink_to_fit", func(a *dynarr.DynArray[int]) error {
			a.ShrinkToFit()
			return nil
		}},
		{"cleared", func(a *dynarr.DynArray[int]) error {
			// reset to zero capacity so the next push reallocates
			a.Clear()
			a.ShrinkToFit()
			return nil
		}},
		{"growing", func(a *dynarr.DynArray[int]) error {
			a.PushBack(1)
			a.PushBack(2)
			return nil
		}},
		{"after_realloc", func(a *dynarr.DynArray[int]) error {
			a.PushBack(3)
			a.PushBack(4)
			a.PushBack(5)
			return nil
		}},
	}

	for _, step := range steps {
		if err := step.op(a); err != nil {
			return err
		}
		if err := rec.Mark(step.tag, inspect.CaptureArray(a)); err != nil {
			return err
		}
	}
	return nil
}
