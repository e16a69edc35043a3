package domain

// Outcome is the result of a single planned move.
type Outcome string

const (
	OutcomeMoved     Outcome = "moved"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeSimulated Outcome = "simulated"
)

// FileEntry is a top-level file in the target directory that survived the
// exclusion filter.
type FileEntry struct {
	Name       string
	Ext        string
	SourcePath string
}

// MoveItem pairs a file with its category and the collision-free destination
// the planner resolved for it.
type MoveItem struct {
	FileEntry
	Category        string
	DestinationPath string
	Renamed         bool
}

// MovePlan is the full set of moves for one run, in deterministic name order.
type MovePlan struct {
	TargetDir      string
	Items          []MoveItem
	CategoryCounts map[string]int
	SkippedDirs    int
	Excluded       int
}

// MoveRecord describes one executed (or simulated) action. Reason is set only
// for skipped records.
type MoveRecord struct {
	Source      string
	Destination string
	Outcome     Outcome
	Reason      string
}

// RunStats aggregates record outcomes for the end-of-run summary.
type RunStats struct {
	Moved     int
	Skipped   int
	Simulated int
}

// Add counts a record into the stats.
func (s *RunStats) Add(rec MoveRecord) {
	switch rec.Outcome {
	case OutcomeMoved:
		s.Moved++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeSimulated:
		s.Simulated++
	}
}

// Processed is the number of files that reached their destination, counting
// simulated moves in dry runs.
func (s RunStats) Processed() int {
	return s.Moved + s.Simulated
}
