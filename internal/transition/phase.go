package transition

import "time"

// Phase is the lifecycle state of a transition.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "idle"
	}
}

// Progress returns elapsed/duration clamped to [0, 1] and the phase that
// progress implies. A non-positive duration is finished immediately.
func Progress(elapsed, duration time.Duration) (float64, Phase) {
	if duration <= 0 {
		return 1, PhaseFinished
	}
	if elapsed < 0 {
		elapsed = 0
	}
	p := elapsed.Seconds() / duration.Seconds()
	if p >= 1 {
		return 1, PhaseFinished
	}
	return p, PhaseRunning
}
