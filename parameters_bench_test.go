package rbparams_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/rbparams"
	"github.com/hupe1980/rbparams/testutil"
)

var sizes = []int{4, 64, 1024}

func BenchmarkValue(b *testing.B) {
	for _, n := range sizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := testutil.NewRNG(4711)
			m := rng.ParameterMap(n, 0, 1)
			p := rbparams.FromMap(m)
			names := p.Names()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = p.ValueOr(names[i%len(names)], 0)
			}
		})
	}
}

func BenchmarkSetValue(b *testing.B) {
	rng := testutil.NewRNG(4711)
	names := rng.Names(1024)

	b.ResetTimer()
	p := rbparams.New()
	for i := 0; i < b.N; i++ {
		p.SetValue(names[i%len(names)], float64(i))
	}
}

func BenchmarkEqual(b *testing.B) {
	rng := testutil.NewRNG(4711)
	m := rng.ParameterMap(256, 0, 1)
	x, y := rbparams.FromMap(m), rbparams.FromMap(m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !x.Equal(y) {
			b.Fatal("expected equal sets")
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	rng := testutil.NewRNG(4711)
	p := rbparams.FromMap(rng.ParameterMap(256, -1e3, 1e3))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Format(rbparams.DefaultPrecision)
	}
}
