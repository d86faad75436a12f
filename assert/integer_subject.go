package assert

import (
	"strconv"

	"github.com/antithesishq/truth-go/numeric"
)

// IntegerSubject is a Subject whose actual value is an integer, or absent.
// It always compares with the Numeric rule; Using returns a separate Subject.
type IntegerSubject struct {
	*Subject
}

// Using returns a copy of the underlying Subject that applies c. s itself
// keeps the Numeric rule.
func (s *IntegerSubject) Using(c Comparison) *Subject {
	cp := *s.Subject
	cp.comparison = c
	return &cp
}

// IsEqualTo fails unless the actual value equals expected once both are widened.
func (s *IntegerSubject) IsEqualTo(expected any) {
	if s.t != nil {
		s.t.Helper()
	}
	s.isEqualTo(expected, newLocationInfo(frameUser))
}

// IsNotEqualTo fails if the actual value equals unexpected once both are widened.
func (s *IntegerSubject) IsNotEqualTo(unexpected any) {
	if s.t != nil {
		s.t.Helper()
	}
	s.isNotEqualTo(unexpected, newLocationInfo(frameUser))
}

// IsGreaterThan fails unless the actual value is greater than other.
func (s *IntegerSubject) IsGreaterThan(other int64) {
	if s.t != nil {
		s.t.Helper()
	}
	s.compare("isGreaterThan", "expected to be greater than", other,
		func(c int) bool { return c > 0 }, newLocationInfo(frameUser))
}

// IsLessThan fails unless the actual value is less than other.
func (s *IntegerSubject) IsLessThan(other int64) {
	if s.t != nil {
		s.t.Helper()
	}
	s.compare("isLessThan", "expected to be less than", other,
		func(c int) bool { return c < 0 }, newLocationInfo(frameUser))
}

// IsAtLeast fails unless the actual value is greater than or equal to other.
func (s *IntegerSubject) IsAtLeast(other int64) {
	if s.t != nil {
		s.t.Helper()
	}
	s.compare("isAtLeast", "expected to be at least", other,
		func(c int) bool { return c >= 0 }, newLocationInfo(frameUser))
}

// IsAtMost fails unless the actual value is less than or equal to other.
func (s *IntegerSubject) IsAtMost(other int64) {
	if s.t != nil {
		s.t.Helper()
	}
	s.compare("isAtMost", "expected to be at most", other,
		func(c int) bool { return c <= 0 }, newLocationInfo(frameUser))
}

// An absent or non-integer actual value fails every ordering check.
func (s *IntegerSubject) compare(assertType, key string, other int64, holds func(int) bool, loc *locationInfo) {
	if s.t != nil {
		s.t.Helper()
	}
	if v, ok := numeric.From(s.actual); ok && holds(numeric.Compare(v, numeric.OfLong(other))) {
		s.pass(assertType, loc)
		return
	}
	s.fail(assertType, loc,
		Fact{key, strconv.FormatInt(other, 10)},
		Fact{"but was", display(s.actual)})
}
