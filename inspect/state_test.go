package inspect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickwritereader/ContainerProbe/dynarr"
	"github.com/quickwritereader/ContainerProbe/sso"
	"github.com/quickwritereader/ContainerProbe/types"
)

func TestCaptureStringInline(t *testing.T) {
	s := sso.New()
	s.AssignString("hello")

	st := CaptureString(s)

	assert.Equal(t, types.KindString, st.Kind)
	assert.Equal(t, types.LayoutInline, st.Layout)
	assert.Equal(t, 5, st.Len)
	assert.Equal(t, sso.InlineCap, st.Cap)
	assert.False(t, st.Allocated)
	assert.Equal(t, "hello", st.Content)
	require.NoError(t, VerifyString(st))
}

func TestCaptureStringHeap(t *testing.T) {
	long := strings.Repeat("q", sso.InlineCap+10)
	s := sso.New()
	s.AssignString(long)

	st := CaptureString(s)

	assert.Equal(t, types.LayoutHeap, st.Layout)
	assert.True(t, st.Allocated)
	assert.Equal(t, len(long), st.Len)
	assert.GreaterOrEqual(t, st.Cap, st.Len)
	assert.Equal(t, long, st.Content)
	require.NoError(t, VerifyString(st))

	s.Release()
}

func TestCaptureStringSurvivesMutation(t *testing.T) {
	s := sso.New()
	s.AssignString("before")
	st := CaptureString(s)

	s.AssignString("after")

	assert.Equal(t, "before", st.Content)
}

func TestCaptureArray(t *testing.T) {
	a := dynarr.New[int]()
	a.Assign([]int{1, 2, 3})
	a.Reserve(10)

	st := CaptureArray(a)

	assert.Equal(t, types.KindArray, st.Kind)
	assert.Equal(t, 3, st.Len)
	assert.Equal(t, 10, st.Cap)
	assert.True(t, st.Allocated)
	assert.Equal(t, []int{1, 2, 3}, st.Content)
	require.NoError(t, VerifyArray(st))
}

func TestCaptureArrayEmpty(t *testing.T) {
	a := dynarr.New[int]()

	st := CaptureArray(a)

	assert.Equal(t, 0, st.Len)
	assert.Equal(t, 0, st.Cap)
	assert.False(t, st.Allocated)
	assert.Nil(t, st.Content)
	require.NoError(t, VerifyArray(st))
}

func TestVerifyStringRejectsBadStates(t *testing.T) {
	good := StringState{
		Kind: types.KindString, Layout: types.LayoutInline,
		Len: 2, Cap: sso.InlineCap, Content: "ab",
	}
	require.NoError(t, VerifyString(good))

	cases := []struct {
		name   string
		mutate func(*StringState)
		code   ErrorCode
	}{
		{"negative length", func(st *StringState) { st.Len = -1 }, ErrNegativeLength},
		{"cap below len", func(st *StringState) { st.Len = 50; st.Cap = 40; st.Content = strings.Repeat("x", 50); st.Layout = types.LayoutHeap; st.Allocated = true }, ErrCapacityBelowLen},
		{"inline but allocated", func(st *StringState) { st.Allocated = true }, ErrLayoutMismatch},
		{"inline with wrong cap", func(st *StringState) { st.Cap = 64 }, ErrLayoutMismatch},
		{"heap but unallocated", func(st *StringState) { st.Layout = types.LayoutHeap; st.Cap = 64 }, ErrLayoutMismatch},
		{"content out of sync", func(st *StringState) { st.Content = "abc" }, ErrContentMismatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := good
			tc.mutate(&st)
			err := VerifyString(st)
			require.Error(t, err)
			var serr *StateError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tc.code, serr.Code)
		})
	}
}

func TestVerifyArrayRejectsBadStates(t *testing.T) {
	good := ArrayState[int]{
		Kind: types.KindArray, Len: 2, Cap: 4, Allocated: true,
		Content: []int{7, 8},
	}
	require.NoError(t, VerifyArray(good))

	cases := []struct {
		name   string
		mutate func(*ArrayState[int])
		code   ErrorCode
	}{
		{"negative length", func(st *ArrayState[int]) { st.Len = -1 }, ErrNegativeLength},
		{"cap below len", func(st *ArrayState[int]) { st.Cap = 1 }, ErrCapacityBelowLen},
		{"allocated flag out of sync", func(st *ArrayState[int]) { st.Allocated = false }, ErrLayoutMismatch},
		{"content out of sync", func(st *ArrayState[int]) { st.Content = []int{7} }, ErrContentMismatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := good
			tc.mutate(&st)
			err := VerifyArray(st)
			require.Error(t, err)
			var serr *StateError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tc.code, serr.Code)
		})
	}
}

func TestVerifyGrowth(t *testing.T) {
	assert.NoError(t, VerifyGrowth([]int{0, 1, 2, 4, 8, 8, 8, 16}))
	assert.NoError(t, VerifyGrowth([]int{5, 100}))
	assert.NoError(t, VerifyGrowth(nil))

	assert.Error(t, VerifyGrowth([]int{4, 2}), "shrinking trace")
	assert.Error(t, VerifyGrowth([]int{4, 6}), "undershoot growth event")
	assert.Error(t, VerifyGrowth([]int{2, 3}))
}

func TestCheckRange(t *testing.T) {
	lo, hi := 1, 10
	assert.NoError(t, CheckRange(5, &lo, &hi))
	assert.NoError(t, CheckRange(5, nil, nil))
	assert.Error(t, CheckRange(0, &lo, &hi))
	assert.Error(t, CheckRange(11, &lo, &hi))

	err := CheckRange(11, &lo, &hi)
	assert.Equal(t, "11 not in [1 , 10]", err.Error())
}
