package tabular_test

import (
	"fmt"

	"github.com/on-the-ground/memo_ive_go/purefn"
	"github.com/on-the-ground/memo_ive_go/tabular"
)

func ExampleCache() {
	mean := purefn.DecorateI1(tabular.Cache(purefn.WithMaxSize(8)), func(s *tabular.Series) (float64, error) {
		total := 0.0
		for i := 0; i < s.Len(); i++ {
			total += s.At(i).(float64)
		}
		return total / float64(s.Len()), nil
	})

	s, _ := tabular.NewSeries("price", []any{"a", "b"}, []any{1.0, 3.0})
	v, _ := mean.Call(s)
	fmt.Println(v)

	s.Set(0, 5.0)
	v, _ = mean.Call(s)
	fmt.Println(v)
	fmt.Println(mean.CacheInfo())
	// Output:
	// 2
	// 2
	// CacheInfo(hits=1, misses=1, maxsize=8, currsize=1)
}
