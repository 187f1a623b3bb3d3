package runtime

import (
	"time"
)

// Callable is a value which may be called with a list of arguments.
// Implementations must be pointer types, as callables compare by identity.
type Callable interface {
	Value
	Name() string
	Arity() int
	Call(args []Value) (Value, error)
}

// Native is a callable implemented in Go.
type Native struct {
	name  string
	arity int
	fn    func(args []Value) (Value, error)
}

// NewNative wraps a Go function as a Lox callable.
func NewNative(name string, arity int, fn func(args []Value) (Value, error)) *Native {
	return &Native{name: name, arity: arity, fn: fn}
}

// Kind returns CallableKind.
func (n *Native) Kind() Kind { return CallableKind }

func (n *Native) String() string { return "<native fn>" }

// Name is the global name of the native function.
func (n *Native) Name() string { return n.name }

// Arity is the number of arguments expected.
func (n *Native) Arity() int { return n.arity }

// Call invokes the Go function. The caller has checked the number of arguments.
func (n *Native) Call(args []Value) (Value, error) {
	tracer().Debugf("calling native %s", n.name)
	return n.fn(args)
}

// Clock returns the native function 'clock', which returns the
// wall clock time in seconds.
func Clock() *Native {
	return NewNative("clock", 0, func([]Value) (Value, error) {
		return Number(float64(time.Now().UnixNano()) / float64(time.Second)), nil
	})
}
