package assert

// Integral lists the Go integer types with a numeric representation:
// int8 (byte), int16 (short), uint16 (char), int32 (int), int64 (long) and int.
type Integral interface {
	int8 | int16 | uint16 | int32 | int64 | int
}

// Comparison selects the equality rule a subject applies.
type Comparison int

const (
	// Numeric widens integer operands to 64 bits and compares their values,
	// so int32(42) equals int64(42).
	Numeric Comparison = iota
	// Strict additionally requires both integer operands to have the same
	// kind, so int32(42) does not equal int64(42).
	Strict
)

func (c Comparison) String() string {
	if c == Strict {
		return "strict"
	}
	return "numeric"
}

// Outcome is the result of comparing two values.
type Outcome int

const (
	Equal Outcome = iota
	NotEqual
)

func (o Outcome) String() string {
	if o == Equal {
		return "equal"
	}
	return "not equal"
}

func outcomeOf(equal bool) Outcome {
	if equal {
		return Equal
	}
	return NotEqual
}
