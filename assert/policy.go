package assert

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/antithesishq/truth-go/numeric"
)

// exportAll lets cmp descend into unexported fields instead of panicking.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equals decides whether actual and expected are equal under the comparison c.
//
// Absent values (nil, or a nil pointer, map, slice, channel, func or
// interface) are equal only to other absent values. When both sides are
// integers, Numeric compares widened values and Strict also requires the same
// kind. Kinds, not Go types, decide: under Strict an int equals an int64 on
// 64-bit platforms, and a pointer equals the value it points to. Any other
// pair is compared structurally, where values of different dynamic types are
// never equal. Equals does not panic.
func Equals(actual, expected any, c Comparison) Outcome {
	actualAbsent, expectedAbsent := isAbsent(actual), isAbsent(expected)
	if actualAbsent || expectedAbsent {
		return outcomeOf(actualAbsent && expectedAbsent)
	}

	a, actualIsNumeric := numeric.From(actual)
	e, expectedIsNumeric := numeric.From(expected)
	if actualIsNumeric && expectedIsNumeric {
		if c == Numeric {
			return outcomeOf(numeric.Equal(a, e))
		}
		return outcomeOf(numeric.Same(a, e))
	}

	return outcomeOf(cmp.Equal(actual, expected, exportAll))
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
