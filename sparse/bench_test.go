// SPDX-License-Identifier: MIT

// Package sparse_test provides benchmarks for the sparse kernels using a
// deterministic random fill.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *sparse.Matrix
	sinkS string
)

// benchPair builds two n×n operands holding about 2n entries each.
func benchPair(n int) (*sparse.Matrix, *sparse.Matrix) {
	rng := rand.New(rand.NewSource(int64(n)))
	return randomMatrix(rng, n, n, 2*n, false), randomMatrix(rng, n, n, 2*n, false)
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, alg := range []sparse.Algorithm{sparse.AlgorithmSparse, sparse.AlgorithmNaive} {
			b.Run(fmt.Sprintf("%s/n=%d", alg, n), func(b *testing.B) {
				x, y := benchPair(n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := sparse.MulWith(x, y, alg)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

func BenchmarkParseString(b *testing.B) {
	b.ReportAllocs()
	x, _ := benchPair(256)
	text := x.String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := sparse.Parse(text)
		if err != nil {
			b.Fatal(err)
		}
		sinkS = m.String()
	}
}
