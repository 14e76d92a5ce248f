// SPDX-License-Identifier: MIT
// Package vector_test provides benchmarks for the arithmetic kernels.

package vector_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/utmatrix/vector"
)

var benchSizes = []int{1 << 10, 1 << 14, 1 << 18}

// sinks to defeat dead-code elimination
var (
	sinkV *vector.Vector[float64]
	sinkF float64
)

func randVector(b *testing.B, n int, seed int64) *vector.Vector[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64()
	}
	v, err := vector.FromSlice(data)
	if err != nil {
		b.Fatal(err)
	}

	return v
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := randVector(b, n, 1337), randVector(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := randVector(b, n, 11), randVector(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := x.Dot(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randVector(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = x.Clone()
			}
		})
	}
}
