package assert

import "fmt"

// Subject wraps an actual value and exposes assertions about it.
type Subject struct {
	actual     any
	comparison Comparison
	strategy   FailureStrategy
	message    string
	t          tHelper // nil when built through About
}

// Using switches the equality rule of s.
func (s *Subject) Using(c Comparison) *Subject {
	s.comparison = c
	return s
}

// WithMessage sets a line printed above the facts of any failure raised by s.
func (s *Subject) WithMessage(format string, args ...any) *Subject {
	s.message = fmt.Sprintf(format, args...)
	return s
}

// IsEqualTo fails unless the actual value equals expected.
func (s *Subject) IsEqualTo(expected any) {
	if s.t != nil {
		s.t.Helper()
	}
	s.isEqualTo(expected, newLocationInfo(frameUser))
}

// IsNotEqualTo fails if the actual value equals unexpected.
func (s *Subject) IsNotEqualTo(unexpected any) {
	if s.t != nil {
		s.t.Helper()
	}
	s.isNotEqualTo(unexpected, newLocationInfo(frameUser))
}

// IsNil fails unless the actual value is absent.
func (s *Subject) IsNil() {
	if s.t != nil {
		s.t.Helper()
	}
	loc := newLocationInfo(frameUser)
	if isAbsent(s.actual) {
		s.pass("isNil", loc)
		return
	}
	s.fail("isNil", loc,
		Fact{"expected", display(nil)},
		Fact{"but was", display(s.actual)})
}

// IsNotNil fails if the actual value is absent.
func (s *Subject) IsNotNil() {
	if s.t != nil {
		s.t.Helper()
	}
	loc := newLocationInfo(frameUser)
	if !isAbsent(s.actual) {
		s.pass("isNotNil", loc)
		return
	}
	s.fail("isNotNil", loc, Fact{"expected not to be", display(nil)})
}

func (s *Subject) isEqualTo(expected any, loc *locationInfo) {
	if s.t != nil {
		s.t.Helper()
	}
	if Equals(s.actual, expected, s.comparison) == Equal {
		s.pass("isEqualTo", loc)
		return
	}

	e, a := displayPair(expected, s.actual)
	facts := []Fact{
		{"expected", e},
		{"but was", a},
	}
	if d := diff(expected, s.actual); d != "" {
		facts = append(facts, Fact{"diff", d})
	}
	s.fail("isEqualTo", loc, facts...)
}

func (s *Subject) isNotEqualTo(unexpected any, loc *locationInfo) {
	if s.t != nil {
		s.t.Helper()
	}
	if Equals(s.actual, unexpected, s.comparison) == NotEqual {
		s.pass("isNotEqualTo", loc)
		return
	}
	s.fail("isNotEqualTo", loc,
		Fact{"expected not to be", display(unexpected)},
		Fact{"but was; string representation of actual value", display(s.actual)})
}

func (s *Subject) pass(assertType string, loc *locationInfo) {
	assertTracker.record(s.info(assertType, true, nil, loc))
}

func (s *Subject) fail(assertType string, loc *locationInfo, facts ...Fact) {
	if s.t != nil {
		s.t.Helper()
	}
	assertTracker.record(s.info(assertType, false, facts, loc))
	s.strategy.Fail(&Failure{
		Message:  s.message,
		Facts:    facts,
		Location: loc.String(),
	})
}

// info describes one evaluation of s for the local output. Evaluations
// under ExpectFailure are flagged as captured.
func (s *Subject) info(assertType string, cond bool, facts []Fact, loc *locationInfo) *assertInfo {
	ai := newAssertInfo(assertType, s.comparison, s.message, cond, facts, loc)
	_, ai.Captured = s.strategy.(*captureStrategy)
	return ai
}
