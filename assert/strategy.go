package assert

import (
	"fmt"
	"strings"
)

// TB is the part of testing.TB that failures are reported through.
type TB interface {
	Helper()
	Error(args ...any)
}

type tHelper interface {
	Helper()
}

// FailureStrategy receives every failure raised by subjects built with About.
type FailureStrategy interface {
	Fail(f *Failure)
}

// FailureStrategyFunc adapts a function to a FailureStrategy.
type FailureStrategyFunc func(f *Failure)

func (fn FailureStrategyFunc) Fail(f *Failure) {
	fn(f)
}

type testingStrategy struct {
	t TB
}

func (s testingStrategy) Fail(f *Failure) {
	s.t.Helper()
	s.t.Error(f.Error())
}

// captureStrategy holds failures raised inside ExpectFailure.
type captureStrategy struct {
	failures []*Failure
}

func (c *captureStrategy) Fail(f *Failure) {
	c.failures = append(c.failures, f)
}

// ExpectFailure runs callback with a builder whose failures are captured
// instead of reported, and returns the captured failure. Exactly one failure
// is expected; t is failed when callback raises none or several.
//
// Assertions made through expect still reach the local output, marked as
// captured.
func ExpectFailure(t TB, callback func(expect *Builder)) *Failure {
	t.Helper()

	capture := &captureStrategy{}
	callback(About(capture))

	failures := capture.failures
	switch len(failures) {
	case 0:
		t.Error("expected a failure but none was reported")
		return nil
	case 1:
		return failures[0]
	}

	msgs := make([]string, len(failures))
	for i, f := range failures {
		msgs[i] = f.Error()
	}
	t.Error(fmt.Sprintf("expected exactly one failure but %d were reported:\n%s",
		len(failures), strings.Join(msgs, "\n---\n")))
	return failures[0]
}
