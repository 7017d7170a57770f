package testutil

import (
	"fmt"
	"math/rand/v2"
)

// Call is one observed invocation of a Recorder.
type Call struct {
	Name     string
	Sequence int
	Input    string
}

// CallLog collects calls from several Recorders in the order they happened.
type CallLog struct {
	Calls []Call
}

// Recorder is a deterministic generator that logs every call and appends
// "-{sequence}-{Payload}" to its input. It ignores the random source.
type Recorder struct {
	Payload string
	Log     *CallLog
}

// NewRecorder creates a Recorder writing to log. A nil log is allowed.
func NewRecorder(payload string, log *CallLog) *Recorder {
	return &Recorder{Payload: payload, Log: log}
}

// Generate implements algorithm.Generator.
func (r *Recorder) Generate(sequence int, current string, _ *rand.Rand) string {
	if r.Log != nil {
		r.Log.Calls = append(r.Log.Calls, Call{Name: r.Payload, Sequence: sequence, Input: current})
	}
	return fmt.Sprintf("%s-%d-%s", current, sequence, r.Payload)
}

// RandomDigit appends one decimal digit drawn from the run's random source.
type RandomDigit struct{}

// Generate implements algorithm.Generator.
func (RandomDigit) Generate(_ int, current string, rnd *rand.Rand) string {
	return current + string(rune('0'+rnd.IntN(10)))
}
