package ragged

import (
	"fmt"
	"testing"
)

func benchRows(numRows, rowLen int) [][]int {
	rows := make([][]int, numRows)
	for i := range rows {
		row := make([]int, rowLen)
		for j := range row {
			row[j] = i*rowLen + j
		}
		rows[i] = row
	}
	return rows
}

func BenchmarkIterRows(b *testing.B) {
	for _, numRows := range []int{1_000, 100_000} {
		rows := benchRows(numRows, 12)

		b.Run(fmt.Sprintf("nested/rows=%d", numRows), func(b *testing.B) {
			b.ReportAllocs()
			var sink int
			for i := 0; i < b.N; i++ {
				for _, row := range rows {
					for _, v := range row {
						sink += v
					}
				}
			}
			_ = sink
		})

		b.Run(fmt.Sprintf("flat/rows=%d", numRows), func(b *testing.B) {
			fa := NewFlatArray(rows)
			b.ReportAllocs()
			b.ResetTimer()
			var sink int
			for i := 0; i < b.N; i++ {
				for row := range fa.Rows() {
					for _, v := range row {
						sink += v
					}
				}
			}
			_ = sink
		})
	}
}

func BenchmarkBuild(b *testing.B) {
	rows := benchRows(10_000, 12)

	b.Run("bulk", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = NewFlatArray(rows)
		}
	})

	b.Run("builder", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			bd := NewBuilder[int]()
			for _, row := range rows {
				bd.Push(row)
			}
			if _, err := bd.BuildArray(); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("builder-presized", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			bd := NewBuilder[int]()
			bd.Grow(len(rows)*12, len(rows))
			for _, row := range rows {
				bd.Push(row)
			}
			if _, err := bd.BuildArray(); err != nil {
				b.Fatal(err)
			}
		}
	})
}
