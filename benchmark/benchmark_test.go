package benchmark

import (
	"strconv"
	"testing"

	"github.com/kumarUjjawal/tinytindb"
	"github.com/kumarUjjawal/tinytindb/model"
	"github.com/kumarUjjawal/tinytindb/pagedir"
	"github.com/stretchr/testify/assert"
)

func fill(b *testing.B, table *tinytindb.Table, n int) {
	for i := 0; i < n; i++ {
		row, err := model.NewRow(uint32(i), "user"+strconv.Itoa(i), "person"+strconv.Itoa(i)+"@example.com")
		assert.Nil(b, err)
		assert.Nil(b, table.Insert(row))
	}
}

// Benchmark_Insert fill a whole table per round
func Benchmark_Insert(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		table := tinytindb.NewTable()
		fill(b, table, model.TableMaxRows)
	}
}

// Benchmark_InsertBTree .
func Benchmark_InsertBTree(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		table := tinytindb.NewTable(tinytindb.WithPageDir(pagedir.NewBTree(0)))
		fill(b, table, model.TableMaxRows)
	}
}

// Benchmark_Select .
func Benchmark_Select(b *testing.B) {
	table := tinytindb.NewTable()
	fill(b, table, model.TableMaxRows)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		err := table.Select(nil)
		if err != nil {
			b.Fatal(err)
		}
	}
}
