package purefn_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/memo_ive_go/fingerprint"
	"github.com/on-the-ground/memo_ive_go/purefn"
)

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkDecoratedLevenshtein(b *testing.B) {
	sizes := []int{2, 8, 32}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("MaxSize_%d", size), func(b *testing.B) {
			var lev func(string, string) (int, error)
			lev = purefn.DecorateI2(purefn.Identity(purefn.WithMaxSize(size)), func(x, y string) (int, error) {
				if len(x) == 0 {
					return len(y), nil
				}
				if len(y) == 0 {
					return len(x), nil
				}
				if x[0] == y[0] {
					return lev(x[1:], y[1:])
				}
				d1, _ := lev(x[1:], y)
				d2, _ := lev(x, y[1:])
				d3, _ := lev(x[1:], y[1:])
				return 1 + min(d1, d2, d3), nil
			}).Func()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = lev("kitten", "sitting")
			}
		})
	}
}

func BenchmarkDecoratedBytes(b *testing.B) {
	payload := make([]byte, 4096)
	fn := purefn.DecorateI1(purefn.NewFactory(fingerprint.Bytes)(), func(p []byte) (int, error) {
		return len(p), nil
	})

	for i := 0; i < b.N; i++ {
		_, _ = fn.Call(payload)
	}
}
