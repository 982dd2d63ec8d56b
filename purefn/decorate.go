package purefn

// FuncI1 is a memoized func(I1) (O, error).
type FuncI1[I1, O any] struct {
	*memo[O]
	fn func(I1) (O, error)
}

// DecorateI1 memoizes fn with the table configured by d.
func DecorateI1[I1, O any](d Decorator, fn func(I1) (O, error)) *FuncI1[I1, O] {
	return &FuncI1[I1, O]{memo: newMemo[O](d), fn: fn}
}

func (f *FuncI1[I1, O]) Call(i1 I1) (O, error) {
	return f.call([]any{i1}, nil, func() (O, error) {
		return f.fn(i1)
	})
}

// Func returns Call as a plain function value.
func (f *FuncI1[I1, O]) Func() func(I1) (O, error) {
	return f.Call
}

// FuncI2 is a memoized func(I1, I2) (O, error).
type FuncI2[I1, I2, O any] struct {
	*memo[O]
	fn func(I1, I2) (O, error)
}

func DecorateI2[I1, I2, O any](d Decorator, fn func(I1, I2) (O, error)) *FuncI2[I1, I2, O] {
	return &FuncI2[I1, I2, O]{memo: newMemo[O](d), fn: fn}
}

func (f *FuncI2[I1, I2, O]) Call(i1 I1, i2 I2) (O, error) {
	return f.call([]any{i1, i2}, nil, func() (O, error) {
		return f.fn(i1, i2)
	})
}

func (f *FuncI2[I1, I2, O]) Func() func(I1, I2) (O, error) {
	return f.Call
}

// FuncI3 is a memoized func(I1, I2, I3) (O, error).
type FuncI3[I1, I2, I3, O any] struct {
	*memo[O]
	fn func(I1, I2, I3) (O, error)
}

func DecorateI3[I1, I2, I3, O any](d Decorator, fn func(I1, I2, I3) (O, error)) *FuncI3[I1, I2, I3, O] {
	return &FuncI3[I1, I2, I3, O]{memo: newMemo[O](d), fn: fn}
}

func (f *FuncI3[I1, I2, I3, O]) Call(i1 I1, i2 I2, i3 I3) (O, error) {
	return f.call([]any{i1, i2, i3}, nil, func() (O, error) {
		return f.fn(i1, i2, i3)
	})
}

func (f *FuncI3[I1, I2, I3, O]) Func() func(I1, I2, I3) (O, error) {
	return f.Call
}

// FuncI4 is a memoized func(I1, I2, I3, I4) (O, error).
type FuncI4[I1, I2, I3, I4, O any] struct {
	*memo[O]
	fn func(I1, I2, I3, I4) (O, error)
}

func DecorateI4[I1, I2, I3, I4, O any](d Decorator, fn func(I1, I2, I3, I4) (O, error)) *FuncI4[I1, I2, I3, I4, O] {
	return &FuncI4[I1, I2, I3, I4, O]{memo: newMemo[O](d), fn: fn}
}

func (f *FuncI4[I1, I2, I3, I4, O]) Call(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
	return f.call([]any{i1, i2, i3, i4}, nil, func() (O, error) {
		return f.fn(i1, i2, i3, i4)
	})
}

func (f *FuncI4[I1, I2, I3, I4, O]) Func() func(I1, I2, I3, I4) (O, error) {
	return f.Call
}

var (
	_ Manager = (*FuncI1[int, int])(nil)
	_ Manager = (*FuncI2[int, int, int])(nil)
	_ Manager = (*FuncI3[int, int, int, int])(nil)
	_ Manager = (*FuncI4[int, int, int, int, int])(nil)
	_ Manager = (*FuncArgs[int])(nil)
)
