package labelplace

// Attempt names for the debug log.
const (
	algorithmSimple = "simple"
	algorithmSweep  = "sweep"

	// NotePastLeftEdge marks a label whose anchor sits further left than
	// its own width; the sweep pass rejects it without attempting
	// placement.
	NotePastLeftEdge = "past_left_edge"
)

// Attempt records one placement try for one label. Exactly one of Mode,
// Candidate, or Note describes the attempt: the simple pass logs the mode
// it tried, the sweep pass logs the candidate point, and rejections log a
// sentinel note.
type Attempt struct {
	// Pass is 0 for the simple pass, 1 for the sweep pass.
	Pass int
	// Algorithm is "simple" or "sweep".
	Algorithm string
	// Iteration is the mode's position in the strategy's mode list on
	// simple-pass attempts (modes skipped for lack of a target band leave
	// gaps), and counts attempts within the pass on sweep-pass attempts.
	Iteration int
	// Mode is set on simple-pass attempts.
	Mode Mode
	// Candidate is set on sweep-pass attempts.
	Candidate *Point
	// Note is a sentinel such as NotePastLeftEdge.
	Note string
	// Placed reports whether the attempt produced a placement.
	Placed bool
}

// Debug carries the resolver's diagnostic output: the clusters detected over
// the input labels, the order labels were attempted in, and the per-label
// attempt trace. The log is truthful — every primitive call appears, and
// Placed mirrors the call's result.
type Debug struct {
	// Clusters groups input label indices by proximity; nil when cluster
	// detection was not requested. Informational only: clustering does
	// not alter placement order.
	Clusters [][]int
	// IndicesToTry is the simple pass's label order (input indices).
	IndicesToTry []int
	// Logs maps label ID to its ordered attempt trace.
	Logs map[string][]Attempt
}
