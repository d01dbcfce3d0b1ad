package ragged

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTagRows() [][]string {
	return [][]string{
		{"O", "O", "O", "B-MISC", "I-MISC", "I-MISC", "O"},
		{"B-PER", "I-PER", "O"},
	}
}

func TestNewFlatArray(t *testing.T) {
	t.Run("label sequences", func(t *testing.T) {
		fa := NewFlatArray(buildTagRows())

		require.Equal(t, []string{"O", "O", "O", "B-MISC", "I-MISC", "I-MISC", "O", "B-PER", "I-PER", "O"}, fa.Content())
		require.Equal(t, []int{0, 7, 10}, fa.Offsets())
		require.Equal(t, 2, fa.NumRows())
		require.Equal(t, 10, fa.Len())
	})

	t.Run("zero rows", func(t *testing.T) {
		fa := NewFlatArray[string](nil)

		require.Equal(t, 0, fa.NumRows())
		require.Equal(t, 0, fa.Len())
		require.Empty(t, fa.Content())
		require.Equal(t, []int{0}, fa.Offsets())

		_, ok := fa.Iter().Next()
		require.False(t, ok)
	})

	t.Run("empty rows keep boundaries", func(t *testing.T) {
		fa := NewFlatArray([][]int{{1, 2}, {}, {3}})

		require.Equal(t, 3, fa.NumRows())
		require.Equal(t, []int{0, 2, 2, 3}, fa.Offsets())
		require.Empty(t, fa.Row(1))
	})

	t.Run("exact capacity", func(t *testing.T) {
		fa := NewFlatArray(buildTagRows())

		// Two-pass construction sizes both buffers exactly once.
		require.Equal(t, len(fa.Content()), cap(fa.Content()))
		require.Equal(t, len(fa.Offsets()), cap(fa.Offsets()))
	})
}

func TestFlatArray_Row(t *testing.T) {
	fa := NewFlatArray(buildTagRows())

	require.Equal(t, []string{"O", "O", "O", "B-MISC", "I-MISC", "I-MISC", "O"}, fa.Row(0))
	require.Equal(t, []string{"B-PER", "I-PER", "O"}, fa.Row(1))
}

func TestFlatArray_Nested_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
	}{
		{name: "label sequences", rows: buildTagRows()},
		{name: "single row", rows: [][]string{{"only"}}},
		{name: "with empty rows", rows: [][]string{{}, {"a"}, {}, {"b", "c"}, {}}},
		{name: "all empty rows", rows: [][]string{{}, {}, {}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := NewFlatArray(tt.rows)
			require.Equal(t, tt.rows, Nested[string](fa))
		})
	}
}

func TestFromRawArray(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		fa, err := FromRawArray([]int{1, 2, 3}, []int{0, 2, 3})
		require.NoError(t, err)
		require.Equal(t, 2, fa.NumRows())
		require.Equal(t, []int{1, 2}, fa.Row(0))
		require.Equal(t, []int{3}, fa.Row(1))
	})

	t.Run("empty offsets with empty content", func(t *testing.T) {
		fa, err := FromRawArray[int](nil, nil)
		require.NoError(t, err)
		require.Equal(t, 0, fa.NumRows())
	})

	t.Run("empty offsets with content", func(t *testing.T) {
		_, err := FromRawArray([]int{1}, nil)
		var eio *ErrInvalidOffsets
		require.ErrorAs(t, err, &eio)
	})

	t.Run("first offset not zero", func(t *testing.T) {
		_, err := FromRawArray([]int{1, 2}, []int{1, 2})
		var eio *ErrInvalidOffsets
		require.ErrorAs(t, err, &eio)
		require.Equal(t, 0, eio.Index)
	})

	t.Run("decreasing offsets", func(t *testing.T) {
		_, err := FromRawArray([]int{1, 2, 3}, []int{0, 2, 1, 3})
		var eio *ErrInvalidOffsets
		require.ErrorAs(t, err, &eio)
		require.Equal(t, 2, eio.Index)
	})

	t.Run("final offset mismatch", func(t *testing.T) {
		_, err := FromRawArray([]int{1, 2, 3}, []int{0, 2})
		var eio *ErrInvalidOffsets
		require.ErrorAs(t, err, &eio)
	})
}

func TestFlatArray_Thaw(t *testing.T) {
	fa := NewFlatArray(buildTagRows())
	fv := fa.Thaw()

	require.Equal(t, fa.Content(), fv.Content())
	require.Equal(t, fa.Offsets(), fv.Offsets())

	// The thawed copy is independent.
	fv.Append([]string{"O"})
	require.Equal(t, 3, fv.NumRows())
	require.Equal(t, 2, fa.NumRows())
	require.Equal(t, 10, fa.Len())
}
