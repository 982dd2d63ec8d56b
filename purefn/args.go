package purefn

import "maps"

// Args is an argument record for functions taking any number of positional
// and keyword arguments.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// NewArgs returns an Args holding the given positional values.
func NewArgs(positional ...any) Args {
	return Args{Positional: positional}
}

// With returns a copy of a with the keyword argument name set to value.
func (a Args) With(name string, value any) Args {
	kw := make(map[string]any, len(a.Keyword)+1)
	maps.Copy(kw, a.Keyword)
	kw[name] = value
	return Args{Positional: a.Positional, Keyword: kw}
}

// FuncArgs is a memoized func(Args) (O, error).
type FuncArgs[O any] struct {
	*memo[O]
	fn func(Args) (O, error)
}

// DecorateArgs memoizes fn. Every positional and keyword value is
// fingerprinted; the keyword order does not matter, and a value passed by
// keyword never shares an entry with the same value passed by position.
func DecorateArgs[O any](d Decorator, fn func(Args) (O, error)) *FuncArgs[O] {
	return &FuncArgs[O]{memo: newMemo[O](d), fn: fn}
}

func (f *FuncArgs[O]) Call(args Args) (O, error) {
	return f.call(args.Positional, args.Keyword, func() (O, error) {
		return f.fn(args)
	})
}

func (f *FuncArgs[O]) Func() func(Args) (O, error) {
	return f.Call
}
