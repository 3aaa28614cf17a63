package verify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareDocumentsMissingDocument(t *testing.T) {
	result := CompareDocuments(nil, &Document{Name: "Ravi"}, "Personal", "10th", PairPersonalVs10th, DefaultNameThreshold)

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, MatchNoData, result.NameMatch.Status)
	assert.False(t, result.NameMatch.Passed)
	assert.Equal(t, MatchNoData, result.DOBMatch.Status)
	assert.False(t, result.DOBMatch.Passed)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "Missing document data")
}

func TestCompareDocumentsBothFieldsMatch(t *testing.T) {
	doc1 := &Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"}
	doc2 := &Document{Name: "ravi kumar", DateOfBirth: "1998-05-02"}

	result := CompareDocuments(doc1, doc2, "Personal", "10th", PairPersonalVs10th, DefaultNameThreshold)

	assert.Equal(t, StatusVerified, result.Status)
	assert.Equal(t, MatchPassed, result.NameMatch.Status)
	assert.True(t, result.NameMatch.Passed)
	require.NotNil(t, result.NameMatch.Similarity)
	assert.Equal(t, 1.0, *result.NameMatch.Similarity)
	assert.Equal(t, DefaultNameThreshold, result.NameMatch.Threshold)
	assert.Equal(t, MatchPassed, result.DOBMatch.Status)
	assert.Empty(t, result.Issues)
}

func TestCompareDocumentsNameMismatch(t *testing.T) {
	doc1 := &Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"}
	doc2 := &Document{Name: "Totally Different", DateOfBirth: "1998-05-02"}

	result := CompareDocuments(doc1, doc2, "Personal", "10th", PairPersonalVs10th, DefaultNameThreshold)

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, MatchFailed, result.NameMatch.Status)
	assert.False(t, result.NameMatch.Passed)
	assert.Equal(t, MatchPassed, result.DOBMatch.Status)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "Ravi Kumar")
	assert.Contains(t, result.Issues[0], "Totally Different")
	assert.Contains(t, result.Issues[0], "similarity")
}

func TestCompareDocumentsDOBMismatch(t *testing.T) {
	doc1 := &Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"}
	doc2 := &Document{Name: "Ravi Kumar", DateOfBirth: "1999-01-01"}

	result := CompareDocuments(doc1, doc2, "Personal", "10th", PairPersonalVs10th, DefaultNameThreshold)

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, MatchFailed, result.DOBMatch.Status)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "DOB mismatch")
	assert.Contains(t, result.Issues[0], "1998-05-02")
	assert.Contains(t, result.Issues[0], "1999-01-01")
}

func TestCompareDocumentsSkipsAbsentName(t *testing.T) {
	tests := []struct {
		name string
		doc1 *Document
		doc2 *Document
	}{
		{
			"both names absent",
			&Document{DateOfBirth: "1998-05-02"},
			&Document{DateOfBirth: "1998-05-02"},
		},
		{
			"first name absent",
			&Document{DateOfBirth: "1998-05-02"},
			&Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"},
		},
		{
			"second name absent",
			&Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"},
			&Document{DateOfBirth: "1998-05-02"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompareDocuments(tt.doc1, tt.doc2, "Personal", "10th", PairPersonalVs10th, DefaultNameThreshold)

			assert.Equal(t, MatchSkipped, result.NameMatch.Status)
			assert.True(t, result.NameMatch.Passed)
			assert.NotEqual(t, MatchFailed, result.NameMatch.Status)
			assert.Equal(t, StatusVerified, result.Status)
			assert.Empty(t, result.Issues)
		})
	}
}

func TestCompareDocumentsSkipsAbsentDOB(t *testing.T) {
	doc1 := &Document{Name: "Ravi Kumar"}
	doc2 := &Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"}

	result := CompareDocuments(doc1, doc2, "Personal", "10th", PairPersonalVs10th, DefaultNameThreshold)

	assert.Equal(t, MatchSkipped, result.DOBMatch.Status)
	assert.True(t, result.DOBMatch.Passed)
	assert.Equal(t, StatusVerified, result.Status)
}

func TestCompareDocumentsSimilarityRounded(t *testing.T) {
	doc1 := &Document{Name: "Ravi Kumar"}
	doc2 := &Document{Name: "Ravi Kumarr"}

	result := CompareDocuments(doc1, doc2, "Personal", "10th", PairPersonalVs10th, DefaultNameThreshold)

	require.NotNil(t, result.NameMatch.Similarity)
	sim := *result.NameMatch.Similarity
	// Three decimal places at most.
	assert.Equal(t, math.Round(sim*1000)/1000, sim)
}
