package command

import "fmt"

// Args holds the values bound to a handler's declared parameters, in order.
// Accessors panic on a type mismatch; that is a programming error and the
// Engine reports it like any other handler failure.
type Args struct {
	values []any
}

func NewArgs(values ...any) Args {
	return Args{values: values}
}

func (a Args) Len() int {
	return len(a.values)
}

func (a Args) Value(i int) any {
	return a.values[i]
}

func (a Args) Values() []any {
	out := make([]any, len(a.values))
	copy(out, a.values)
	return out
}

func (a Args) Text(i int) string {
	return get[string](a, i)
}

func (a Args) Int(i int) int {
	return get[int](a, i)
}

func (a Args) Float64(i int) float64 {
	return get[float64](a, i)
}

func (a Args) Float32(i int) float32 {
	return get[float32](a, i)
}

func (a Args) Bool(i int) bool {
	return get[bool](a, i)
}

// Get returns the i-th argument as T.
func Get[T any](a Args, i int) T {
	return get[T](a, i)
}

func get[T any](a Args, i int) T {
	if i < 0 || i >= len(a.values) {
		panic(fmt.Sprintf("argument %d out of range (%d bound)", i, len(a.values)))
	}
	v, ok := a.values[i].(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("argument %d is %T, not %T", i, a.values[i], zero))
	}
	return v
}
