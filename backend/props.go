package backend

import (
	"fmt"
	"strings"
)

// Number reads name as a float64. Any Go numeric kind is accepted.
func Number(ps PropertySet, name string) (float64, bool) {
	v, ok := ps.Property(name)
	if !ok || v == nil {
		return 0, false
	}
	return ToNumber(v)
}

// NumberOr reads name as a float64 or returns def when it is absent.
func NumberOr(ps PropertySet, name string, def float64) float64 {
	if n, ok := Number(ps, name); ok {
		return n
	}
	return def
}

// ToNumber converts a numeric value of any kind to float64.
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// String reads name as a string.
func String(ps PropertySet, name string) (string, bool) {
	v, ok := ps.Property(name)
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}

// EnumName reads an enumerated property and returns its symbolic name.
func EnumName(ps PropertySet, name string) (string, bool) {
	v, ok := ps.Property(name)
	if !ok || v == nil {
		return "", false
	}
	switch e := v.(type) {
	case Enum:
		return string(e), true
	case string:
		return e, true
	case fmt.Stringer:
		return e.String(), true
	}
	return "", false
}

// Bool coerces name to a boolean: a bool is taken as is, a string or enum is
// true when it reads "true", a number is true when non-zero. Anything else,
// including an absent property, is false.
func Bool(ps PropertySet, name string) bool {
	v, _ := ps.Property(name)
	return ToBool(v)
}

// ToBool applies the coercion of Bool to a raw value.
func ToBool(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case Enum:
		return strings.EqualFold(string(b), "true")
	case string:
		return strings.EqualFold(b, "true")
	}
	if n, ok := ToNumber(v); ok {
		return n != 0
	}
	return false
}

// OptionalBool returns the raw boolean value of name, failing when the
// property is absent or not a bool.
func OptionalBool(ps PropertySet, name string) (bool, bool) {
	v, ok := ps.Property(name)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// PointOf reads a Point property.
func PointOf(ps PropertySet, name string) (Point, bool) {
	v, ok := ps.Property(name)
	if !ok {
		return Point{}, false
	}
	p, ok := v.(Point)
	return p, ok
}

// SizeOf reads a Size property.
func SizeOf(ps PropertySet, name string) (Size, bool) {
	v, ok := ps.Property(name)
	if !ok {
		return Size{}, false
	}
	s, ok := v.(Size)
	return s, ok
}
