// Package fingerprint provides functions that map argument values to
// comparable surrogates ("fingerprints") used as memo keys.
//
// A fingerprint function must be deterministic: the same logical input always
// yields an equal fingerprint. Its result must be comparable with ==; values
// such as slices, maps and funcs are rejected with ErrUnhashable when the key
// is built.
//
// NaN is comparable but never equal to itself, so a fingerprint containing a
// float NaN misses on every call and adds a fresh entry each time, pushing
// useful entries out of a bounded table. Map NaN to a sentinel in the
// fingerprint function when such arguments are expected.
package fingerprint

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/memo_ive_go/internal/keychain"
)

// ErrUnhashable reports a fingerprint that cannot be used as a map key.
var ErrUnhashable = keychain.ErrUnhashable

// Func maps an argument value to its fingerprint.
type Func func(v any) (any, error)

// Identity uses the value itself as its fingerprint.
func Identity(v any) (any, error) {
	return v, nil
}

// Stringer fingerprints fmt.Stringer values by their String() result and
// passes everything else through. Distinct values with the same string form
// share a fingerprint.
func Stringer(v any) (any, error) {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}
	return v, nil
}

// Digest is the xxhash of a byte slice.
type Digest uint64

// Bytes fingerprints []byte values by their xxhash digest and passes
// everything else through. Two different slices with colliding digests share
// a fingerprint.
func Bytes(v any) (any, error) {
	if b, ok := v.([]byte); ok {
		return Digest(xxhash.Sum64(b)), nil
	}
	return v, nil
}

// Chain applies fns in order, feeding each result into the next one.
// The first error stops the chain.
func Chain(fns ...Func) Func {
	return func(v any) (any, error) {
		var err error
		for _, fn := range fns {
			if v, err = fn(v); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
}

// Check fails with ErrUnhashable when fp cannot be used as a map key.
func Check(fp any) error {
	if !keychain.Comparable(fp) {
		return fmt.Errorf("fingerprint: %w: type %T", ErrUnhashable, fp)
	}
	return nil
}
