package assert

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/kr/pretty"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/antithesishq/truth-go/numeric"
)

// Fact is one labeled line of a failure report, such as "expected: 5".
type Fact struct {
	Key   string
	Value string
}

// Failure describes an assertion that did not hold.
type Failure struct {
	// Message is the optional text given through Subject.WithMessage.
	Message string
	// Facts are kept in the order they are reported.
	Facts []Fact
	// Location is the file:line of the failing assertion.
	Location string
}

// Value returns the value of the first fact labeled key.
func (f *Failure) Value(key string) (string, bool) {
	for _, fact := range f.Facts {
		if fact.Key == key {
			return fact.Value, true
		}
	}
	return "", false
}

// Keys returns the fact labels in order.
func (f *Failure) Keys() []string {
	keys := make([]string, len(f.Facts))
	for i, fact := range f.Facts {
		keys[i] = fact.Key
	}
	return keys
}

// Error renders the message followed by one "key: value" line per fact, with
// keys padded to the same width. Multi-line values start on the next line.
func (f *Failure) Error() string {
	var sb strings.Builder
	if f.Message != "" {
		sb.WriteString(f.Message)
		sb.WriteByte('\n')
	}

	width := 0
	for _, fact := range f.Facts {
		width = max(width, len(fact.Key))
	}
	for i, fact := range f.Facts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%-*s:", width, fact.Key)
		if !strings.Contains(fact.Value, "\n") {
			sb.WriteByte(' ')
			sb.WriteString(fact.Value)
			continue
		}
		for _, line := range strings.Split(fact.Value, "\n") {
			sb.WriteString("\n    ")
			sb.WriteString(line)
		}
	}
	return sb.String()
}

// display renders v the way it appears in a fact.
func display(v any) string {
	if isAbsent(v) {
		return "<nil>"
	}
	if n, ok := numeric.From(v); ok {
		return n.String()
	}
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	if isComposite(v) {
		return pretty.Sprintf("%# v", v)
	}
	return fmt.Sprint(v)
}

// displayPair renders expected and actual for an equality report. Two integers
// of different kinds that render alike are suffixed with their kinds, so a
// strict mismatch reads "42 (int)" against "42 (long)".
func displayPair(expected, actual any) (string, string) {
	e, a := display(expected), display(actual)
	if e != a {
		return e, a
	}
	ev, expectedIsNumeric := numeric.From(expected)
	av, actualIsNumeric := numeric.From(actual)
	if expectedIsNumeric && actualIsNumeric && ev.Kind() != av.Kind() {
		return fmt.Sprintf("%s (%s)", e, ev.Kind()), fmt.Sprintf("%s (%s)", a, av.Kind())
	}
	return e, a
}

func isComposite(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return true
	case reflect.Pointer:
		return rv.Elem().Kind() == reflect.Struct
	}
	return false
}

var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	DisableMethods:          true,
}

// diff returns a unified diff of expected against actual for multi-line
// strings and for composite values of the same type, and "" otherwise.
func diff(expected, actual any) string {
	if isAbsent(expected) || isAbsent(actual) {
		return ""
	}

	var e, a string
	es, expectedIsString := expected.(string)
	as, actualIsString := actual.(string)
	switch {
	case expectedIsString && actualIsString:
		if !strings.Contains(es, "\n") && !strings.Contains(as, "\n") {
			return ""
		}
		e, a = es, as
	case isComposite(expected) && reflect.TypeOf(expected) == reflect.TypeOf(actual):
		e, a = spewConfig.Sdump(expected), spewConfig.Sdump(actual)
	default:
		return ""
	}

	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(e),
		B:        difflib.SplitLines(a),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	if err != nil {
		return ""
	}
	return strings.TrimRight(d, "\n")
}
