package assert

import (
	"fmt"
	"runtime"
)

// frame counts stack frames above newLocationInfo.
type frame int

const (
	frameSelf      frame = iota // newLocationInfo
	frameAssertion              // the exported assertion asking for its location
	frameUser                   // the code that called the assertion
)

// locationInfo is the call site of an assertion. Column stays zero: the Go
// runtime reports lines only.
type locationInfo struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

func newLocationInfo(skip frame) *locationInfo {
	_, file, line, ok := runtime.Caller(int(skip))
	if !ok {
		return &locationInfo{Filename: "?"}
	}
	return &locationInfo{Filename: file, Line: line}
}

func (loc *locationInfo) String() string {
	if loc == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d", loc.Filename, loc.Line)
}

// key identifies the call site in the tracker.
func (loc *locationInfo) key() string {
	return fmt.Sprintf("%s|%d|%d", loc.Filename, loc.Line, loc.Column)
}
