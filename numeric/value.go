// Package numeric models the integer representations that the assert package
// compares: byte, short, char, int and long.
//
// A Value keeps the raw bit pattern of its kind. Comparisons never rely on Go's
// own conversion rules between the source types; they go through Widen, which
// sign-extends signed kinds and zero-extends Char to a signed 64-bit integer.
package numeric

import (
	"cmp"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf16"
)

// Value is a tagged integer. The zero Value is the byte 0.
type Value struct {
	kind Kind
	bits uint64 // only the low kind.Width() bits are meaningful
}

// OfByte returns the byte v.
func OfByte(v int8) Value { return Value{kind: Byte, bits: uint64(uint8(v))} }

// OfShort returns the short v.
func OfShort(v int16) Value { return Value{kind: Short, bits: uint64(uint16(v))} }

// OfChar returns the char with ordinal v.
func OfChar(v uint16) Value { return Value{kind: Char, bits: uint64(v)} }

// OfInt returns the int v.
func OfInt(v int32) Value { return Value{kind: Int, bits: uint64(uint32(v))} }

// OfLong returns the long v.
func OfLong(v int64) Value { return Value{kind: Long, bits: uint64(v)} }

// Kind returns the representation v was built with.
func (v Value) Kind() Kind {
	return v.kind
}

// Widen returns the mathematical value of v as a signed 64-bit integer.
func (v Value) Widen() int64 {
	switch v.kind {
	case Byte:
		return int64(int8(v.bits))
	case Short:
		return int64(int16(v.bits))
	case Char:
		return int64(uint16(v.bits))
	case Int:
		return int64(int32(v.bits))
	}
	return int64(v.bits)
}

// String renders v for failure reports. Chars render as their glyph, so the
// char 42 displays as "*". Chars without a glyph, such as control characters
// and lone surrogates, render as their code point, e.g. "U+D800".
func (v Value) String() string {
	if v.kind == Char {
		r := rune(uint16(v.bits))
		if utf16.IsSurrogate(r) || !unicode.IsPrint(r) {
			return fmt.Sprintf("U+%04X", r)
		}
		return string(r)
	}
	return strconv.FormatInt(v.Widen(), 10)
}

// Equal reports whether a and b hold the same integer once widened.
func Equal(a, b Value) bool {
	return a.Widen() == b.Widen()
}

// Same reports whether a and b have the same kind and the same value.
func Same(a, b Value) bool {
	return a.kind == b.kind && Equal(a, b)
}

// Compare orders a and b by their widened values.
func Compare(a, b Value) int {
	return cmp.Compare(a.Widen(), b.Widen())
}

// From classifies v. Pointers to supported types are dereferenced; a nil
// pointer is not a value.
//
// Go's uint16 stands in for char. int follows the platform word size.
func From(v any) (Value, bool) {
	switch x := v.(type) {
	case Value:
		return x, true
	case int8:
		return OfByte(x), true
	case int16:
		return OfShort(x), true
	case uint16:
		return OfChar(x), true
	case int32:
		return OfInt(x), true
	case int64:
		return OfLong(x), true
	case int:
		if strconv.IntSize == 32 {
			return OfInt(int32(x)), true
		}
		return OfLong(int64(x)), true
	case *Value:
		if x != nil {
			return *x, true
		}
	case *int8:
		if x != nil {
			return OfByte(*x), true
		}
	case *int16:
		if x != nil {
			return OfShort(*x), true
		}
	case *uint16:
		if x != nil {
			return OfChar(*x), true
		}
	case *int32:
		if x != nil {
			return OfInt(*x), true
		}
	case *int64:
		if x != nil {
			return OfLong(*x), true
		}
	case *int:
		if x != nil {
			return From(*x)
		}
	}
	return Value{}, false
}
