// Package purefn memoizes functions whose arguments are not comparable.
//
// Go map keys must be comparable, so a function taking slices, maps or
// mutable containers cannot be memoized by its arguments directly. purefn
// substitutes a fingerprint for every argument, looks the fingerprints up in
// a least-recently-used table, and only on a miss calls the wrapped function
// with the original arguments.
//
// A Factory is built once per fingerprint function:
//
//	cache := purefn.NewFactory(fingerprint.Bytes)
//	checksum := purefn.DecorateI1(cache(purefn.WithMaxSize(64)), func(b []byte) (int, error) {
//	    return expensive(b), nil
//	})
//	n, err := checksum.Call(payload)
//	fmt.Println(checksum.CacheInfo())
//
// Features:
//   - DecorateI1 to DecorateI4: typed memoizers for common arities.
//   - DecorateArgs: positional and keyword arguments through an Args record.
//   - Bounded (LRU), unbounded and disabled tables, selected by options.
//   - CacheInfo and CacheClear on every decorated function.
//   - Optional zap logging and prometheus metrics.
//
// Errors returned by the wrapped function are never cached.
//
// WARNING: fingerprints stand in for the arguments. If an argument is mutated
// in a way its fingerprint does not capture, the stale result is returned.
package purefn
