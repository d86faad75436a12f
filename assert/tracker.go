package assert

import (
	"sync"

	"github.com/antithesishq/truth-go/internal"
)

type assertInfo struct {
	AssertType string            `json:"assert_type"`
	Comparison string            `json:"comparison"`
	Message    string            `json:"message"`
	Condition  bool              `json:"condition"`
	Id         string            `json:"id"`
	Captured   bool              `json:"captured"`
	Location   *locationInfo     `json:"location"`
	Details    map[string]string `json:"details"`
}

type wrappedAssertInfo struct {
	A *assertInfo `json:"truth_assert"`
}

func newAssertInfo(assertType string, c Comparison, message string, cond bool, facts []Fact, loc *locationInfo) *assertInfo {
	var details map[string]string
	if len(facts) > 0 {
		details = make(map[string]string, len(facts))
		for _, f := range facts {
			if _, seen := details[f.Key]; !seen {
				details[f.Key] = f.Value
			}
		}
	}
	return &assertInfo{
		AssertType: assertType,
		Comparison: c.String(),
		Message:    message,
		Condition:  cond,
		Id:         loc.key(),
		Location:   loc,
		Details:    details,
	}
}

type trackerInfo struct {
	PassCount int
	FailCount int
}

type emitTracker struct {
	mu      sync.Mutex
	entries map[string]*trackerInfo
}

// assertTracker (global) keeps track of the unique assertion sites evaluated
var assertTracker = newEmitTracker()

func newEmitTracker() *emitTracker {
	return &emitTracker{entries: make(map[string]*trackerInfo)}
}

func (tracker *emitTracker) getTrackerEntry(messageKey string) *trackerInfo {
	trackerEntry, ok := tracker.entries[messageKey]
	if !ok {
		trackerEntry = &trackerInfo{}
		tracker.entries[messageKey] = trackerEntry
	}
	return trackerEntry
}

// record counts ai against its location and writes the first pass and the
// first failure of each location to the local output.
func (tracker *emitTracker) record(ai *assertInfo) {
	if tracker == nil || ai == nil {
		return
	}

	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	ti := tracker.getTrackerEntry(ai.Id)

	var err error
	if ai.Condition {
		if ti.PassCount == 0 {
			err = emitAssert(ai)
		}
		if err == nil {
			ti.PassCount++
		}
		return
	}
	if ti.FailCount == 0 {
		err = emitAssert(ai)
	}
	if err == nil {
		ti.FailCount++
	}
}

func (tracker *emitTracker) counts(messageKey string) (passes, failures int) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if ti, ok := tracker.entries[messageKey]; ok {
		return ti.PassCount, ti.FailCount
	}
	return 0, 0
}

func emitAssert(ai *assertInfo) error {
	return internal.JSONData(wrappedAssertInfo{ai})
}
