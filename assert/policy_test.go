package assert

import (
	"math"
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/antithesishq/truth-go/numeric"
)

type point struct {
	x, y int
	tag  string
}

func TestEqualsNulls(t *testing.T) {
	var nilPtr *int32
	var nilMap map[string]int

	for _, c := range []Comparison{Numeric, Strict} {
		qt.Assert(t, qt.Equals(Equals(nil, nil, c), Equal))
		qt.Assert(t, qt.Equals(Equals(nilPtr, nil, c), Equal))
		qt.Assert(t, qt.Equals(Equals(nil, nilMap, c), Equal))
		qt.Assert(t, qt.Equals(Equals(nilPtr, (*int64)(nil), c), Equal))

		for _, x := range []any{int8(0), int16(0), uint16(0), int32(0), int64(0), 0, "", point{}} {
			qt.Assert(t, qt.Equals(Equals(nil, x, c), NotEqual), qt.Commentf("%s: nil vs %T", c, x))
			qt.Assert(t, qt.Equals(Equals(x, nil, c), NotEqual), qt.Commentf("%s: %T vs nil", c, x))
			qt.Assert(t, qt.Equals(Equals(nilPtr, x, c), NotEqual), qt.Commentf("%s: nil pointer vs %T", c, x))
		}
	}
}

func TestEqualsAcrossWidths(t *testing.T) {
	fortyTwos := []any{int8(42), int16(42), uint16(42), int32(42), int64(42), 42, numeric.OfLong(42)}
	for _, a := range fortyTwos {
		for _, b := range fortyTwos {
			qt.Assert(t, qt.Equals(Equals(a, b, Numeric), Equal), qt.Commentf("%T vs %T", a, b))
		}
	}
}

func TestEqualsOverflowBoundary(t *testing.T) {
	qt.Assert(t, qt.Equals(Equals(int32(math.MinInt32), int64(math.MinInt32), Numeric), Equal))
	qt.Assert(t, qt.Equals(Equals(int32(math.MinInt32), int64(math.MinInt64), Numeric), NotEqual))
	qt.Assert(t, qt.Equals(Equals(int32(math.MaxInt32), int64(math.MaxInt64), Numeric), NotEqual))
	qt.Assert(t, qt.Equals(Equals(int8(-1), uint16(0xFFFF), Numeric), NotEqual))
}

func TestEqualsStrictRequiresSameKind(t *testing.T) {
	qt.Assert(t, qt.Equals(Equals(int32(42), int64(42), Strict), NotEqual))
	qt.Assert(t, qt.Equals(Equals(int32(42), int64(42), Numeric), Equal))
	qt.Assert(t, qt.Equals(Equals(int32(42), int32(42), Strict), Equal))
	qt.Assert(t, qt.Equals(Equals(uint16(42), int32(42), Strict), NotEqual))

	boxed := int64(42)
	qt.Assert(t, qt.Equals(Equals(&boxed, int64(42), Strict), Equal))
}

func TestEqualsStrictFollowsKindNotGoType(t *testing.T) {
	word := numeric.Long
	if strconv.IntSize == 32 {
		word = numeric.Int
	}
	qt.Assert(t, qt.Equals(Equals(42, int64(42), Strict), outcomeOf(word == numeric.Long)))
	qt.Assert(t, qt.Equals(Equals(42, int32(42), Strict), outcomeOf(word == numeric.Int)))

	x := 42
	qt.Assert(t, qt.Equals(Equals(&x, x, Strict), Equal))
	qt.Assert(t, qt.Equals(Equals(numeric.OfShort(42), int16(42), Strict), Equal))
}

func TestEqualsNonNumeric(t *testing.T) {
	for _, c := range []Comparison{Numeric, Strict} {
		qt.Assert(t, qt.Equals(Equals("a", "a", c), Equal))
		qt.Assert(t, qt.Equals(Equals("a", "b", c), NotEqual))
		qt.Assert(t, qt.Equals(Equals(int32(42), "42", c), NotEqual))
		qt.Assert(t, qt.Equals(Equals(1.5, 1.5, c), Equal))
		qt.Assert(t, qt.Equals(Equals(uint8(1), int8(1), c), NotEqual))
		qt.Assert(t, qt.Equals(Equals(point{1, 2, "p"}, point{1, 2, "p"}, c), Equal))
		qt.Assert(t, qt.Equals(Equals(point{1, 2, "p"}, point{1, 2, "q"}, c), NotEqual))
		qt.Assert(t, qt.Equals(Equals([]int{1, 2}, []int{1, 2}, c), Equal))
		qt.Assert(t, qt.Equals(Equals([]int{}, []int(nil), c), NotEqual))
		qt.Assert(t, qt.Equals(Equals(func() {}, func() {}, c), NotEqual))
	}
}

func TestEqualsIsSymmetric(t *testing.T) {
	var nilPtr *int16
	values := []any{
		nil, nilPtr,
		int8(42), int16(42), uint16(42), int32(42), int64(42),
		int8(41), int16(41), uint16(41), int32(41), int64(41),
		int32(math.MinInt32), int64(math.MinInt32), int64(math.MinInt64),
		uint16(0xFFFF), int16(-1),
		"42", point{4, 2, ""},
	}
	for _, c := range []Comparison{Numeric, Strict} {
		for _, a := range values {
			for _, b := range values {
				qt.Assert(t, qt.Equals(Equals(a, b, c), Equals(b, a, c)),
					qt.Commentf("%s: %#v vs %#v", c, a, b))
			}
		}
	}
}

func TestOutcomeAndComparisonStrings(t *testing.T) {
	qt.Assert(t, qt.Equals(Equal.String(), "equal"))
	qt.Assert(t, qt.Equals(NotEqual.String(), "not equal"))
	qt.Assert(t, qt.Equals(Numeric.String(), "numeric"))
	qt.Assert(t, qt.Equals(Strict.String(), "strict"))
}
