package dynarray_test

import (
	"testing"

	"github.com/sghaida/dynarray/dynarray"
)

/*
   Shared helpers (NOT counted in benchmarks)
*/

func filled(n int) *dynarray.Array[int] {
	a := dynarray.New[int]()
	for i := 0; i < n; i++ {
		a.Add(i)
	}
	return a
}

/*
   Benchmarks
*/

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := dynarray.New[int]()
		for j := 0; j < 1024; j++ {
			a.Add(j)
		}
	}
}

func BenchmarkAdd_GrowthFactor1_5(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := dynarray.NewWithGrowthFactor[int](1.5)
		for j := 0; j < 1024; j++ {
			a.Add(j)
		}
	}
}

func BenchmarkAddFirst(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := dynarray.New[int]()
		for j := 0; j < 256; j++ {
			a.AddFirst(j)
		}
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := filled(256)
		_ = a.Insert(128, -1)
	}
}

func BenchmarkRemoveFirst(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := filled(256)
		for !a.IsEmpty() {
			_, _ = a.RemoveFirst()
		}
	}
}

func BenchmarkGet(b *testing.B) {
	a := filled(1024)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Get(i & 1023)
	}
}

func BenchmarkAccumulate(b *testing.B) {
	a := filled(1024)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dynarray.Sum(a)
	}
}
