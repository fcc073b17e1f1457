// Package script exposes the raster core to an embedded scripting runtime.
//
// Native objects are reached through the Object capability interface:
// members are read and written by name and operations are invoked by name
// with positional arguments. Nothing in package screen depends on this
// package.
package script

import "fmt"

type Kind uint8

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
	KindString
	KindObject
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Kind(Null)"
	case KindInteger:
		return "Kind(Integer)"
	case KindFloat:
		return "Kind(Float)"
	case KindString:
		return "Kind(String)"
	case KindObject:
		return "Kind(Object)"
	case KindMethod:
		return "Kind(Method)"
	}
	return "Kind(UNKNOWN)"
}

// Value is anything a script can hold.
type Value interface {
	Kind() Kind
}

type (
	Integer int64
	Float   float64
	String  string
	Null    struct{}
)

func (Integer) Kind() Kind { return KindInteger }
func (Float) Kind() Kind   { return KindFloat }
func (String) Kind() Kind  { return KindString }
func (Null) Kind() Kind    { return KindNull }

// Object is a native value with named members and operations.
type Object interface {
	Value
	Get(key string) (Value, error)
	Set(key string, v Value) error
	Call(key string, args []Value) (Value, error)
}

// Method is an operation bound to the object it was read from.
type Method struct {
	Object Object
	Name   string
}

func (Method) Kind() Kind { return KindMethod }

func (m Method) Invoke(args []Value) (Value, error) {
	return m.Object.Call(m.Name, args)
}

// IntegerValue accepts integers only.
func IntegerValue(v Value) (int64, error) {
	if i, ok := v.(Integer); ok {
		return int64(i), nil
	}
	return 0, typeError("integer", v)
}

// FloatValue accepts floats and widens integers.
func FloatValue(v Value) (float64, error) {
	switch n := v.(type) {
	case Float:
		return float64(n), nil
	case Integer:
		return float64(n), nil
	}
	return 0, typeError("float", v)
}

func StringValue(v Value) (string, error) {
	if s, ok := v.(String); ok {
		return string(s), nil
	}
	return "", typeError("string", v)
}

func kindOf(v Value) string {
	if v == nil {
		return KindNull.String()
	}
	return v.Kind().String()
}

func typeError(want string, v Value) error {
	return newError(ErrType, fmt.Sprintf("expected %s, got %s", want, kindOf(v)))
}
