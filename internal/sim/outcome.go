package sim

// OutcomeKind is the terminal classification of a run.
type OutcomeKind uint8

const (
	OutcomeNone     OutcomeKind = iota
	OutcomeGameOver             // endless or classic, with a FailReason
	OutcomeFinished             // classic only: all rows cleared
)

// FailReason explains a game over.
type FailReason string

const (
	ReasonWrongTap     FailReason = "wrong_tap"
	ReasonMissedTarget FailReason = "missed_target"
)

// Outcome is the run's terminal state. The zero value means the run is
// still going. Once set it never changes except through Run.Reset; it is
// a normal state value surfaced via snapshots, never an error.
type Outcome struct {
	Kind   OutcomeKind
	Reason FailReason // set for OutcomeGameOver
	// TileType names the tile that ended the run: the wrongly tapped
	// type on a wrong tap, the target type on a missed crossing.
	TileType string
}

// Terminal reports whether the run has ended.
func (o Outcome) Terminal() bool {
	return o.Kind != OutcomeNone
}

// String returns a short display form of the outcome.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeGameOver:
		return "game over (" + string(o.Reason) + ")"
	case OutcomeFinished:
		return "finished"
	default:
		return "running"
	}
}
