// Package verify implements cross-document consistency checks for a
// worker's personal and educational records. Two matching strategies
// coexist: a strict fuzzy-ratio comparison used by the multi-document
// orchestrator, and a lenient word-overlap comparison used by the direct
// personal-vs-education check. Callers pick the strategy by entry point.
package verify

// Document is the comparison-level view of any extracted record. Absent
// fields are empty strings; a nil *Document means the document itself is
// missing.
type Document struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
}

// Comparison statuses.
const (
	StatusVerified   = "verified"
	StatusFailed     = "failed"
	StatusIncomplete = "incomplete"
)

// Field sub-match statuses.
const (
	MatchPassed  = "PASSED"
	MatchFailed  = "FAILED"
	MatchSkipped = "SKIPPED"
	MatchNoData  = "No data"
)

// Comparison pair types, in the fixed order they run.
const (
	PairPersonalVs10th = "personal_vs_10th"
	PairPersonalVs12th = "personal_vs_12th"
	Pair10thVs12th     = "10th_vs_12th"
)

// FieldMatch records the outcome of one field comparison inside a
// pairwise document comparison.
type FieldMatch struct {
	Doc1Value  string   `json:"doc1_value,omitempty"`
	Doc2Value  string   `json:"doc2_value,omitempty"`
	Similarity *float64 `json:"similarity,omitempty"`
	Threshold  float64  `json:"threshold,omitempty"`
	Status     string   `json:"status"`
	Reason     string   `json:"reason,omitempty"`
	Passed     bool     `json:"passed"`
}

// ComparisonResult is the outcome of comparing two documents. It is
// constructed fresh per comparison and never mutated afterwards.
type ComparisonResult struct {
	Status    string     `json:"status"`
	NameMatch FieldMatch `json:"name_match"`
	DOBMatch  FieldMatch `json:"dob_match"`
	Issues    []string   `json:"issues"`
}

// Comparison wraps a ComparisonResult with the pair it belongs to.
type Comparison struct {
	Type    string           `json:"type"`
	Status  string           `json:"status"`
	Details ComparisonResult `json:"details"`
}

// VerificationResult aggregates all pairwise comparisons for a worker.
type VerificationResult struct {
	OverallStatus  string       `json:"overall_status"`
	DocumentsCount int          `json:"documents_count"`
	Comparisons    []Comparison `json:"comparisons"`
	Errors         []string     `json:"errors"`
}

// FailedComparison is the per-pair slice of an ErrorSummary.
type FailedComparison struct {
	Type   string   `json:"type"`
	Issues []string `json:"issues"`
}

// ErrorSummary is the persisted digest of a failed verification.
type ErrorSummary struct {
	Status      string             `json:"status"`
	Comparisons []FailedComparison `json:"comparisons"`
}
