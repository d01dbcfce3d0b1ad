package ragged

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFlatVec(t *testing.T) {
	fv := NewFlatVec[string]()

	require.Equal(t, 0, fv.NumRows())
	require.Equal(t, []int{0}, fv.Offsets())
	require.Empty(t, fv.Content())
}

func TestFlatVec_Append(t *testing.T) {
	t.Run("incremental equals bulk", func(t *testing.T) {
		rows := buildTagRows()

		fv := NewFlatVec[string]()
		for _, row := range rows {
			fv.Append(row)
		}
		bulk := FlatVecOf(rows)

		require.Equal(t, bulk.Content(), fv.Content())
		require.Equal(t, bulk.Offsets(), fv.Offsets())
	})

	t.Run("empty row records boundary", func(t *testing.T) {
		fv := NewFlatVec[string]()
		fv.Append([]string{"a"})
		before := fv.NumRows()

		fv.Append(nil)

		require.Equal(t, before+1, fv.NumRows())
		require.Equal(t, []int{0, 1, 1}, fv.Offsets())
		require.Empty(t, fv.Row(1))
	})
}

func TestFlatVec_MutateThroughRow(t *testing.T) {
	fv := FlatVecOf([][]int{{1, 2, 3}, {4, 5}})

	for row := range fv.Rows() {
		for i := range row {
			row[i] *= 10
		}
	}

	require.Equal(t, []int{10, 20, 30, 40, 50}, fv.Content())
	require.Equal(t, []int{10, 20, 30}, fv.Row(0))
}

func TestFlatVec_Grow(t *testing.T) {
	fv := NewFlatVec[int]()
	fv.Grow(100, 10)

	content := fv.Content()
	require.GreaterOrEqual(t, cap(content), 100)

	// Growing must not disturb the logical state.
	require.Equal(t, 0, fv.NumRows())
	require.Equal(t, []int{0}, fv.Offsets())
}

func TestFlatVec_Freeze(t *testing.T) {
	fv := FlatVecOf(buildTagRows())
	fa := fv.Freeze()

	require.Equal(t, 2, fa.NumRows())
	require.Equal(t, []int{0, 7, 10}, fa.Offsets())
	require.Equal(t, buildTagRows(), Nested[string](fa))
}

func TestFromRawVec(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		fv, err := FromRawVec([]byte("abcde"), []int{0, 3, 5})
		require.NoError(t, err)
		require.Equal(t, 2, fv.NumRows())
		require.Equal(t, []byte("abc"), fv.Row(0))
	})

	t.Run("invalid offsets rejected", func(t *testing.T) {
		_, err := FromRawVec([]byte("abcde"), []int{0, 6})
		var eio *ErrInvalidOffsets
		require.ErrorAs(t, err, &eio)
	})

	t.Run("empty offsets normalized", func(t *testing.T) {
		fv, err := FromRawVec[byte](nil, nil)
		require.NoError(t, err)
		require.Equal(t, []int{0}, fv.Offsets())

		// Appending to the degenerate form must still work.
		fv.Append([]byte("x"))
		require.Equal(t, 1, fv.NumRows())
	})
}
