// Package assert provides fluent assertions about values in Go tests.
//
// A subject wraps the actual value and is checked with methods such as IsEqualTo and IsNotEqualTo:
//
//	assert.That(t, got).IsEqualTo(want)
//	assert.ThatInt(t, n).IsNotEqualTo(int64(0))
//
// Integers of different widths compare by value: int8, int16, uint16, int32, int64 and int are widened to a signed 64-bit integer before comparison, so int32(42) equals int64(42). uint16 plays the part of a char: it widens without sign extension and displays as its glyph in failure reports, so uint16(42) displays as "*". Pointers to these types are boxed values and a nil pointer is an absent value, equal only to nil.
//
// Every subject applies an explicit Comparison. That and the integer subjects use Numeric. ThatObject uses Strict, which treats its value as an opaque object: integers are then equal only when they also have the same kind, so int32(42) does not equal int64(42). Non-integer values are compared structurally under either rule.
//
// A failed assertion produces a Failure: an ordered list of labeled facts such as "expected" and "but was". The subjects returned by That and its siblings report failures through t.Error, so a test keeps running after a failed assertion. Use About to send failures to any other FailureStrategy, and ExpectFailure to capture the failure of an assertion that is meant to fail.
//
// If the environment variable TRUTH_LOCAL_OUTPUT is set, the first pass and the first failure of every assertion site are also written as JSON lines to the file it names.
package assert

// Builder creates subjects that report to one FailureStrategy.
type Builder struct {
	strategy FailureStrategy
	t        tHelper
}

// About returns a Builder whose subjects report failures to strategy.
func About(strategy FailureStrategy) *Builder {
	return &Builder{strategy: strategy}
}

func forTest(t TB) *Builder {
	return &Builder{strategy: testingStrategy{t}, t: t}
}

func (b *Builder) subject(actual any, c Comparison) *Subject {
	return &Subject{actual: actual, comparison: c, strategy: b.strategy, t: b.t}
}

// That returns a subject for actual using the Numeric comparison.
func (b *Builder) That(actual any) *Subject {
	return b.subject(actual, Numeric)
}

// ThatObject returns a subject for actual using the Strict comparison.
func (b *Builder) ThatObject(actual any) *Subject {
	return b.subject(actual, Strict)
}

// ThatInt returns an integer subject for an int32.
func (b *Builder) ThatInt(actual int32) *IntegerSubject {
	return &IntegerSubject{b.subject(actual, Numeric)}
}

// ThatLong returns an integer subject for an int64.
func (b *Builder) ThatLong(actual int64) *IntegerSubject {
	return &IntegerSubject{b.subject(actual, Numeric)}
}

// ThatBoxed returns an integer subject for a value that may be absent: nil, an
// Integral value, a numeric.Value, or a pointer to either.
func (b *Builder) ThatBoxed(actual any) *IntegerSubject {
	return &IntegerSubject{b.subject(actual, Numeric)}
}

// That returns a subject for actual using the Numeric comparison.
func That(t TB, actual any) *Subject {
	return forTest(t).That(actual)
}

// ThatObject returns a subject for actual using the Strict comparison.
func ThatObject(t TB, actual any) *Subject {
	return forTest(t).ThatObject(actual)
}

// ThatInt returns an integer subject for an int32.
func ThatInt(t TB, actual int32) *IntegerSubject {
	return forTest(t).ThatInt(actual)
}

// ThatLong returns an integer subject for an int64.
func ThatLong(t TB, actual int64) *IntegerSubject {
	return forTest(t).ThatLong(actual)
}

// ThatInteger returns an integer subject for any Integral value.
func ThatInteger[T Integral](t TB, actual T) *IntegerSubject {
	return forTest(t).ThatBoxed(actual)
}

// ThatIntegerPtr returns an integer subject for a boxed value; a nil actual is absent.
func ThatIntegerPtr[T Integral](t TB, actual *T) *IntegerSubject {
	return forTest(t).ThatBoxed(actual)
}

// ThatBoxed returns an integer subject for a value that may be absent.
func ThatBoxed(t TB, actual any) *IntegerSubject {
	return forTest(t).ThatBoxed(actual)
}
