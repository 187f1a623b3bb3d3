package runtime

import (
	"math"
	"strconv"
)

// Kind is the type tag of a runtime value.
type Kind int8

// Runtime values are one of these kinds.
const (
	NilKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	CallableKind
)

func (k Kind) String() string {
	switch k {
	case NilKind:
		return "nil"
	case BoolKind:
		return "boolean"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case CallableKind:
		return "callable"
	}
	return "<unknown kind>"
}

// Value is a Lox runtime value. String returns the text a Lox 'print'
// statement produces for the value.
type Value interface {
	Kind() Kind
	String() string
}

type nilValue struct{}

// Nil is the single nil value.
var Nil Value = nilValue{}

func (nilValue) Kind() Kind      { return NilKind }
func (nilValue) String() string { return "nil" }

// Bool is a boolean value.
type Bool bool

// Kind returns BoolKind.
func (Bool) Kind() Kind { return BoolKind }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is a double-precision floating point value.
type Number float64

// Kind returns NumberKind.
func (Number) Kind() Kind { return NumberKind }

// String formats integral numbers without a fractional part.
// Overflowed values print as Infinity or -Infinity.
func (n Number) String() string {
	if math.IsInf(float64(n), 1) {
		return "Infinity"
	} else if math.IsInf(float64(n), -1) {
		return "-Infinity"
	}
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// String is a string value.
type String string

// Kind returns StringKind.
func (String) Kind() Kind { return StringKind }

func (s String) String() string {
	return string(s)
}

// FromLiteral converts a literal value of the AST to a runtime value.
// Literals are nil, bool, float64 or string.
func FromLiteral(lit interface{}) Value {
	switch v := lit.(type) {
	case nil:
		return Nil
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case string:
		return String(v)
	case Value:
		return v
	}
	tracer().Errorf("unknown literal type %T", lit)
	return Nil
}

// IsTruthy is false for nil and false, and true for every other value.
func IsTruthy(v Value) bool {
	switch x := v.(type) {
	case nil, nilValue:
		return false
	case Bool:
		return bool(x)
	}
	return true
}

// Equal compares two values. Nil never equals anything unless nilEqualsNil is
// set, in which case nil equals nil. Callables compare by identity.
func Equal(a, b Value, nilEqualsNil bool) bool {
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil && nilEqualsNil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return a == b
}

func isNil(v Value) bool {
	return v == nil || v.Kind() == NilKind
}

// Stringify returns the print form of a value.
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}
