// Package keychain folds argument fingerprints into a single comparable value
// that can be used as a map key.
//
// A sequence a1, a2, a3 becomes link{link{link{nil, a1}, a2}, a3}. Because the
// links are plain structs stored in interfaces, Go equality and map hashing walk
// the whole chain, so two keys are equal exactly when every element is equal.
package keychain

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// ErrUnhashable is returned when a value cannot take part in a map key.
var ErrUnhashable = errors.New("unhashable value")

type link struct {
	prev  any
	value any
}

// named links carry keyword values; they never compare equal to a positional link.
type named struct {
	prev  any
	name  string
	value any
}

// Comparable reports whether v can be compared with == without panicking.
// It does not catch NaN, which compares but never equals itself.
func Comparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// Sequence folds values into one comparable key. Equal sequences produce equal
// keys; an empty sequence produces nil.
func Sequence(values []any) (any, error) {
	var key any
	for i, v := range values {
		if !Comparable(v) {
			return nil, fmt.Errorf("%w: element %d has type %T", ErrUnhashable, i, v)
		}
		key = link{prev: key, value: v}
	}
	return key, nil
}

// Build folds positional values and keyword values into one comparable key.
// Keyword names are visited in sorted order, so the order the caller built the
// map in does not matter.
func Build(positional []any, keyword map[string]any) (any, error) {
	key, err := Sequence(positional)
	if err != nil {
		return nil, fmt.Errorf("positional: %w", err)
	}
	if len(keyword) == 0 {
		return key, nil
	}

	names := make([]string, 0, len(keyword))
	for name := range keyword {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		v := keyword[name]
		if !Comparable(v) {
			return nil, fmt.Errorf("keyword %q: %w: type %T", name, ErrUnhashable, v)
		}
		key = named{prev: key, name: name, value: v}
	}
	return key, nil
}
