package bench

import (
	"fmt"
	"time"
)

// Phase identifies one of the four timed operations.
type Phase int

const (
	PhaseSeed Phase = iota
	PhaseKeypair
	PhaseSign
	PhaseVerify
)

// Phases lists every phase in execution order.
var Phases = []Phase{PhaseSeed, PhaseKeypair, PhaseSign, PhaseVerify}

var phaseInfo = map[Phase]struct {
	name, description, unit string
}{
	PhaseSeed:    {"seed", "testing seed generation performance", "seed"},
	PhaseKeypair: {"keypair", "testing key generation performance", "keypair"},
	PhaseSign:    {"sign", "testing sign performance", "signature"},
	PhaseVerify:  {"verify", "testing verify performance", "signature"},
}

func (p Phase) String() string {
	if i, ok := phaseInfo[p]; ok {
		return i.name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Description is the human readable label printed in front of the result.
func (p Phase) Description() string { return phaseInfo[p].description }

// Unit names the operation a single iteration performs.
func (p Phase) Unit() string { return phaseInfo[p].unit }

// Result is the outcome of one phase.
type Result struct {
	Phase      Phase
	Iterations uint32
	Elapsed    time.Duration
	Failures   uint64
}

// AvgMicros returns the mean latency per iteration in microseconds, or 0 when
// no iteration ran.
func (r Result) AvgMicros() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Elapsed) / float64(time.Microsecond) / float64(r.Iterations)
}

// String renders the result as a single report line.
func (r Result) String() string {
	return fmt.Sprintf("%s: %fus per %s (%d failures)",
		r.Phase.Description(), r.AvgMicros(), r.Phase.Unit(), r.Failures)
}
