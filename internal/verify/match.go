package verify

import (
	"strings"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// DefaultNameThreshold is the similarity a fuzzy name comparison must
// reach (inclusive) to pass.
const DefaultNameThreshold = 0.85

// FuzzyMatchName computes a normalized Levenshtein similarity between two
// names and compares it against threshold. Either name being empty yields
// (0, false). Identical names yield exactly 1.0.
func FuzzyMatchName(name1, name2 string, threshold float64) (float64, bool) {
	if strings.TrimSpace(name1) == "" || strings.TrimSpace(name2) == "" {
		return 0, false
	}
	n1 := strings.Join(strings.Fields(strings.ToLower(name1)), " ")
	n2 := strings.Join(strings.Fields(strings.ToLower(name2)), " ")

	similarity := strutil.Similarity(n1, n2, metrics.NewLevenshtein())
	return similarity, similarity >= threshold
}

// ExactMatchDOB reports whether two dates of birth are the same calendar
// day. Both inputs must parse strictly as YYYY-MM-DD; any parse failure
// yields false rather than an error.
func ExactMatchDOB(dob1, dob2 string) bool {
	d1, err := time.Parse("2006-01-02", strings.TrimSpace(dob1))
	if err != nil {
		return false
	}
	d2, err := time.Parse("2006-01-02", strings.TrimSpace(dob2))
	if err != nil {
		return false
	}
	return d1.Equal(d2)
}
