// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package timeline

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ultrabear/history-stack/common"
)

func TestStack_New_HasSingleEntry(t *testing.T) {
	require := require.New(t)
	s := New(uint8(4))
	require.Equal(uint8(4), s.Get())
	require.Equal(1, s.Len())
	require.Equal(0, s.Cursor())
	require.False(s.CanUndo())
	require.False(s.CanRedo())
}

func TestStack_EditorScenario(t *testing.T) {
	require := require.New(t)
	s := New(uint8(0))

	*s.Save() += 1
	require.Equal(uint8(1), s.Get())

	res := s.Undo()
	require.True(res.IsOk())
	require.Equal(uint8(0), *res.Value())
	require.Equal(uint8(0), s.Get())

	res = s.Redo()
	require.True(res.IsOk())
	require.Equal(uint8(1), s.Get())

	require.True(s.Undo().IsOk())
	*s.Save() += 2
	require.Equal(uint8(2), s.Get())

	res = s.Redo()
	require.ErrorIs(res.Err(), ErrNothingToRedo)
	require.Equal(uint8(2), *res.Value())
}

func TestStack_Undo_ReturnsPreviousValuesInReverseOrder(t *testing.T) {
	const n = 10
	for _, useSave := range []bool{true, false} {
		t.Run(fmt.Sprintf("save=%t", useSave), func(t *testing.T) {
			require := require.New(t)
			s := New(0)
			for i := 1; i <= n; i++ {
				if useSave {
					*s.Save() = i
				} else {
					s.Push(i)
				}
			}
			require.Equal(n+1, s.Len())
			require.Equal(n, s.Get())

			for want := n - 1; want >= 0; want-- {
				value, err := s.Undo().Get()
				require.NoError(err)
				require.Equal(want, *value)
				require.Equal(want, s.Get())
			}

			value, err := s.Undo().Get()
			require.ErrorIs(err, ErrNothingToUndo)
			require.Equal(0, *value)
			require.Equal(0, s.Cursor())
		})
	}
}

func TestStack_Undo_FailureStillProvidesMutableAccess(t *testing.T) {
	s := New(1)
	res := s.Undo()
	require.False(t, res.IsOk())
	*res.Value() = 7
	require.Equal(t, 7, s.Get())
	require.Equal(t, 1, s.Len())
}

func TestStack_Redo_FailureStillProvidesMutableAccess(t *testing.T) {
	s := New(1)
	s.Push(2)
	res := s.Redo()
	require.ErrorIs(t, res.Err(), ErrNothingToRedo)
	*res.Value() = 3
	require.Equal(t, 3, s.Get())
	require.Equal(t, 1, s.Cursor())
}

func TestStack_SaveUndoRedo_RestoresValueAndCursor(t *testing.T) {
	require := require.New(t)
	s := New("a")
	s.Push("b")
	*s.Save() += "c"

	value, cursor := s.Get(), s.Cursor()
	require.True(s.Undo().IsOk())
	require.True(s.Redo().IsOk())
	require.Equal(value, s.Get())
	require.Equal(cursor, s.Cursor())
	require.Equal("bc", s.Get())
}

func TestStack_DivergentWrite_DiscardsFuture(t *testing.T) {
	for k := 1; k <= 4; k++ {
		for _, useSave := range []bool{true, false} {
			t.Run(fmt.Sprintf("k=%d/save=%t", k, useSave), func(t *testing.T) {
				require := require.New(t)
				s := New(0)
				for i := 1; i <= 4; i++ {
					s.Push(i)
				}
				for range k {
					require.True(s.Undo().IsOk())
				}
				require.Equal(k, s.RedoCount())

				if useSave {
					*s.Save() = 100
				} else {
					s.Push(100)
				}
				require.Equal(0, s.RedoCount())
				require.Equal(5-k+1, s.Len())
				require.ErrorIs(s.Redo().Err(), ErrNothingToRedo)
				require.Equal(100, s.Get())

				require.True(s.Undo().IsOk())
				require.Equal(4-k, s.Get())
			})
		}
	}
}

func TestStack_Save_WithoutFutureKeepsHistory(t *testing.T) {
	s := New(0)
	s.Push(1)
	*s.Save() = 2
	require.Equal(t, 3, s.Len())
	require.Equal(t, "timeline.Stack{cursor: 2, history: []int{0, 1, 2}}", fmt.Sprintf("%#v", s))
}

func TestStack_Save_DeepCopiesByDefault(t *testing.T) {
	require := require.New(t)
	s := New(map[string][]int{"a": {1}})
	(*s.Save())["a"][0] = 2
	require.Equal(2, s.Get()["a"][0])

	require.True(s.Undo().IsOk())
	require.Equal(1, s.Get()["a"][0])
}

func TestStack_Save_UsesCloneOfValue(t *testing.T) {
	require := require.New(t)
	s := New(uint256.NewInt(1))
	counter := *s.Save()
	counter.AddUint64(counter, 1)

	require.Equal(uint64(2), s.Get().Uint64())
	require.True(s.Undo().IsOk())
	require.Equal(uint64(1), s.Get().Uint64())
}

func TestStack_Save_UsesConfiguredCopier(t *testing.T) {
	ctrl := gomock.NewController(t)
	copier := common.NewMockCopier[int](ctrl)
	gomock.InOrder(
		copier.EXPECT().Copy(1).Return(10),
		copier.EXPECT().Copy(10).Return(20),
	)

	s := New(1, WithCopier[int](copier))
	require.Equal(t, 10, *s.Save())
	require.Equal(t, 20, *s.Save())
	s.Push(30)
	require.Equal(t, 4, s.Len())
}

func TestStack_Save_WithoutCopierDeepCopies(t *testing.T) {
	require := require.New(t)
	s := &Stack[[]int]{history: [][]int{{1}}}
	require.NotPanics(func() { s.Save() })
	(*s.Ptr())[0] = 2

	require.True(s.Undo().IsOk())
	require.Equal([]int{1}, s.Get())
}

func TestStack_Clone_EvolvesIndependently(t *testing.T) {
	require := require.New(t)
	s := New([]int{1}, WithMaxEntries[[]int](3))
	(*s.Save())[0] = 2
	(*s.Save())[0] = 3
	require.True(s.Undo().IsOk())

	clone := s.Clone()
	require.Equal(s.Len(), clone.Len())
	require.Equal(s.Cursor(), clone.Cursor())
	require.Equal(s.Get(), clone.Get())

	(*clone.Ptr())[0] = 20
	require.Equal([]int{2}, s.Get())

	clone.Push([]int{4})
	require.Equal(0, clone.RedoCount())
	require.Equal(1, s.RedoCount())
	require.True(s.Redo().IsOk())
	require.Equal([]int{3}, s.Get())

	clone.Push([]int{5})
	require.Equal(3, clone.Len())
	require.Equal(3, s.Len())
	require.True(clone.Undo().IsOk())
	require.True(clone.Undo().IsOk())
	require.Equal([]int{20}, clone.Get())
	require.False(clone.CanUndo())
}

func TestStack_Clone_UsesConfiguredCopier(t *testing.T) {
	ctrl := gomock.NewController(t)
	copier := common.NewMockCopier[int](ctrl)
	gomock.InOrder(
		copier.EXPECT().Copy(1).Return(1),
		copier.EXPECT().Copy(2).Return(20),
	)

	s := New(1, WithCopier[int](copier))
	s.Push(2)

	clone := s.Clone()
	require.Equal(t, 20, clone.Get())
	require.Equal(t, 1, clone.Cursor())
	require.Equal(t, 2, s.Get())
}

func TestStack_WithMaxEntries_DropsOldestEntries(t *testing.T) {
	require := require.New(t)
	s := New(0, WithMaxEntries[int](3))
	for i := 1; i <= 5; i++ {
		s.Push(i)
		require.Equal(i, s.Get())
		require.LessOrEqual(s.Len(), 3)
	}
	require.Equal(3, s.Len())
	require.Equal(2, s.Cursor())

	require.True(s.Undo().IsOk())
	require.True(s.Undo().IsOk())
	value, err := s.Undo().Get()
	require.ErrorIs(err, ErrNothingToUndo)
	require.Equal(3, *value)

	*s.Save() += 10
	require.Equal(13, s.Get())
	require.Equal(2, s.Len())
}

func TestStack_WithMaxEntries_OneKeepsOnlyCurrent(t *testing.T) {
	s := New(0, WithMaxEntries[int](1))
	*s.Save() = 1
	s.Push(2)
	require.Equal(t, 1, s.Len())
	require.Equal(t, 2, s.Get())
	require.False(t, s.CanUndo())
}

func TestStack_WithMaxEntries_NonPositiveIsIgnored(t *testing.T) {
	s := New(0, WithMaxEntries[int](0), WithMaxEntries[int](-4))
	for i := range 100 {
		s.Push(i)
	}
	require.Equal(t, 101, s.Len())
}

func TestStack_Clear_KeepsOnlyCurrentEntry(t *testing.T) {
	require := require.New(t)
	s := New(0)
	s.Push(1)
	s.Push(2)
	require.True(s.Undo().IsOk())

	s.Clear()
	require.Equal(1, s.Get())
	require.Equal(1, s.Len())
	require.False(s.CanUndo())
	require.False(s.CanRedo())
}

func TestStack_Counts_TrackCursor(t *testing.T) {
	require := require.New(t)
	s := New(0)
	s.Push(1)
	s.Push(2)
	require.Equal(2, s.UndoCount())
	require.Equal(0, s.RedoCount())

	s.Undo()
	require.Equal(1, s.UndoCount())
	require.Equal(1, s.RedoCount())
	require.True(s.CanUndo())
	require.True(s.CanRedo())
}

func TestStack_SetAndPtr_ModifyCurrentEntry(t *testing.T) {
	s := New(0)
	s.Push(1)
	s.Set(5)
	*s.Ptr() *= 2
	require.Equal(t, 10, s.Get())
	s.Undo()
	require.Equal(t, 0, s.Get())
}

func TestStack_String_PrintsCurrentValue(t *testing.T) {
	s := New("first")
	s.Push("second")
	require.Equal(t, "second", fmt.Sprint(s))
	s.Undo()
	require.Equal(t, "first", s.String())
}

func TestStack_Transparency_MatchesCurrentValue(t *testing.T) {
	require := require.New(t)
	seed := maphash.MakeSeed()
	a := New(1.5)
	b := New(0.0)
	b.Push(1.5)
	b.Push(3.0)
	b.Undo()

	require.True(common.Equal[float64](a, b))
	require.Equal(0, common.Compare[float64](a, b))
	require.Equal(common.Hash[float64](seed, a), common.Hash[float64](seed, b))
	require.Equal(maphash.Comparable(seed, 1.5), common.Hash[float64](seed, b))

	b.Redo()
	require.False(common.Equal[float64](a, b))
	require.Equal(-1, common.Compare[float64](a, b))
	require.True(common.EqualValue[float64](b, 3.0))
}

func TestStack_CorruptedState_FailsLoudly(t *testing.T) {
	s := New(1)
	s.cursor = 5
	require.Panics(t, func() { s.Save() })

	s = New(1)
	s.history = nil
	require.Panics(t, func() { s.Undo() })
}

func TestStack_RandomOperations_MatchReferenceModel(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	ops := make([]byte, 20_000)
	for i := range ops {
		ops[i] = byte(rnd.UintN(256))
	}
	checkAgainstModel(t, ops, 0)
	checkAgainstModel(t, ops, 7)
}

func FuzzStack_OperationsMatchReferenceModel(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3}, uint8(0))
	f.Add([]byte{0, 0, 0, 2, 2, 1, 3, 2, 3, 3}, uint8(2))
	f.Fuzz(func(t *testing.T, ops []byte, max uint8) {
		checkAgainstModel(t, ops, int(max))
	})
}

// checkAgainstModel applies the given operations to a Stack and to a naive
// reference implementation keeping explicit past and future lists.
func checkAgainstModel(t *testing.T, ops []byte, maxEntries int) {
	t.Helper()
	seed := maphash.MakeSeed()

	s := New(0, WithMaxEntries[int](maxEntries))
	var past, future []int
	current := 0

	trim := func() {
		if maxEntries > 0 && len(past)+1 > maxEntries {
			past = past[len(past)+1-maxEntries:]
		}
	}

	for i, op := range ops {
		switch op % 5 {
		case 0:
			p := s.Save()
			*p += 1
			past = append(past, current)
			future = nil
			current++
			trim()
		case 1:
			s.Push(i)
			past = append(past, current)
			future = nil
			current = i
			trim()
		case 2:
			res := s.Undo()
			if len(past) == 0 {
				require.ErrorIs(t, res.Err(), ErrNothingToUndo)
			} else {
				require.NoError(t, res.Err())
				future = append(future, current)
				current = past[len(past)-1]
				past = past[:len(past)-1]
			}
			require.Equal(t, current, *res.Value())
		case 3:
			res := s.Redo()
			if len(future) == 0 {
				require.ErrorIs(t, res.Err(), ErrNothingToRedo)
			} else {
				require.NoError(t, res.Err())
				past = append(past, current)
				current = future[len(future)-1]
				future = future[:len(future)-1]
			}
			require.Equal(t, current, *res.Value())
		case 4:
			*s.Ptr() -= 1
			current--
		}

		require.Equal(t, current, s.Get(), "step %d", i)
		require.Equal(t, len(past), s.UndoCount(), "step %d", i)
		require.Equal(t, len(future), s.RedoCount(), "step %d", i)
		require.Equal(t, len(past)+len(future)+1, s.Len(), "step %d", i)
		require.Equal(t, maphash.Comparable(seed, current), common.Hash[int](seed, s))
	}
}
