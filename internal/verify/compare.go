package verify

import (
	"fmt"
	"math"
	"strings"
)

// CompareDocuments runs the strict pairwise comparison between two
// documents: fuzzy name similarity against nameThreshold and exact DOB
// equality. A field missing on either side is SKIPPED and counts as
// passed; the overall status is failed iff a non-skipped sub-match
// failed. Labels are only used in skip diagnostics.
func CompareDocuments(doc1, doc2 *Document, label1, label2, comparisonType string, nameThreshold float64) ComparisonResult {
	if doc1 == nil || doc2 == nil {
		return ComparisonResult{
			Status:    StatusFailed,
			NameMatch: FieldMatch{Status: MatchNoData, Passed: false},
			DOBMatch:  FieldMatch{Status: MatchNoData, Passed: false},
			Issues:    []string{"Missing document data for comparison"},
		}
	}

	result := ComparisonResult{Status: StatusVerified, Issues: []string{}}

	name1 := strings.TrimSpace(doc1.Name)
	name2 := strings.TrimSpace(doc2.Name)
	if name1 != "" && name2 != "" {
		similarity, ok := FuzzyMatchName(name1, name2, nameThreshold)
		rounded := math.Round(similarity*1000) / 1000
		result.NameMatch = FieldMatch{
			Doc1Value:  name1,
			Doc2Value:  name2,
			Similarity: &rounded,
			Threshold:  nameThreshold,
			Status:     passFail(ok),
			Passed:     ok,
		}
		if !ok {
			result.Status = StatusFailed
			result.Issues = append(result.Issues,
				fmt.Sprintf("Name mismatch: '%s' vs '%s' (similarity: %.2f%%)", name1, name2, similarity*100))
		}
	} else {
		result.NameMatch = FieldMatch{
			Status: MatchSkipped,
			Reason: fmt.Sprintf("Missing names in one or both documents (%s/%s)", label1, label2),
			Passed: true,
		}
	}

	dob1 := strings.TrimSpace(doc1.DateOfBirth)
	dob2 := strings.TrimSpace(doc2.DateOfBirth)
	if dob1 != "" && dob2 != "" {
		ok := ExactMatchDOB(dob1, dob2)
		result.DOBMatch = FieldMatch{
			Doc1Value: dob1,
			Doc2Value: dob2,
			Status:    passFail(ok),
			Passed:    ok,
		}
		if !ok {
			result.Status = StatusFailed
			result.Issues = append(result.Issues,
				fmt.Sprintf("DOB mismatch: %s vs %s", dob1, dob2))
		}
	} else {
		result.DOBMatch = FieldMatch{
			Status: MatchSkipped,
			Reason: fmt.Sprintf("Missing DOB in one or both documents (%s/%s)", label1, label2),
			Passed: true,
		}
	}

	return result
}

func passFail(ok bool) string {
	if ok {
		return MatchPassed
	}
	return MatchFailed
}
