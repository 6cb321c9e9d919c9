package types

// OutcomeStatus classifies what happened to a single input file
type OutcomeStatus string

const (
	// OutcomeSuccess means the file was renamed to a descriptive name
	OutcomeSuccess OutcomeStatus = "success"
	// OutcomeFailure means the file was eligible but its pipeline failed
	OutcomeFailure OutcomeStatus = "failure"
	// OutcomeSkipped means the file did not match the screenshot filter
	OutcomeSkipped OutcomeStatus = "skipped"
)

// FileOutcome records the result of processing one input file
type FileOutcome struct {
	// Path is the input path as submitted to the batch
	Path string `json:"path"`
	// NewPath is the final path after renaming, empty unless Status is success
	NewPath string        `json:"new_path,omitempty"`
	Status  OutcomeStatus `json:"status"`
	// Error holds the per-file failure message, empty unless Status is failure
	Error string `json:"error,omitempty"`
}

// BatchResult aggregates outcomes for one batch invocation.
// Skipped files appear in Outcomes but are not counted in Total.
type BatchResult struct {
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Outcomes  []FileOutcome `json:"outcomes"`
}

// Record appends an outcome and updates the counters
func (r *BatchResult) Record(outcome FileOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	switch outcome.Status {
	case OutcomeSuccess:
		r.Total++
		r.Succeeded++
	case OutcomeFailure:
		r.Total++
		r.Failed++
	}
}
