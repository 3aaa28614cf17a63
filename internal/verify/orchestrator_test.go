package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyWorkerDocumentsTooFewDocuments(t *testing.T) {
	tests := []struct {
		name     string
		personal *Document
		edu10th  *Document
		edu12th  *Document
	}{
		{"no documents", nil, nil, nil},
		{"only personal", &Document{Name: "Ravi Kumar"}, nil, nil},
		{"only 10th", nil, &Document{Name: "Ravi Kumar"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := VerifyWorkerDocuments(tt.personal, tt.edu10th, tt.edu12th, DefaultNameThreshold)

			assert.Equal(t, StatusIncomplete, result.OverallStatus)
			assert.Empty(t, result.Comparisons)
			require.Len(t, result.Errors, 1)
			assert.Contains(t, result.Errors[0], "at least 2 documents")
		})
	}
}

func TestVerifyWorkerDocumentsAllThreeMatching(t *testing.T) {
	personal := &Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"}
	edu10th := &Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"}
	edu12th := &Document{Name: "ravi kumar", DateOfBirth: "1998-05-02"}

	result := VerifyWorkerDocuments(personal, edu10th, edu12th, DefaultNameThreshold)

	assert.Equal(t, StatusVerified, result.OverallStatus)
	assert.Equal(t, 3, result.DocumentsCount)
	require.Len(t, result.Comparisons, 3)
	assert.Equal(t, PairPersonalVs10th, result.Comparisons[0].Type)
	assert.Equal(t, PairPersonalVs12th, result.Comparisons[1].Type)
	assert.Equal(t, Pair10thVs12th, result.Comparisons[2].Type)
	for _, comp := range result.Comparisons {
		assert.Equal(t, StatusVerified, comp.Status)
	}
	assert.Empty(t, result.Errors)
}

func TestVerifyWorkerDocumentsSkipsAbsentPairs(t *testing.T) {
	personal := &Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"}
	edu10th := &Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"}

	result := VerifyWorkerDocuments(personal, edu10th, nil, DefaultNameThreshold)

	assert.Equal(t, StatusVerified, result.OverallStatus)
	assert.Equal(t, 2, result.DocumentsCount)
	require.Len(t, result.Comparisons, 1)
	assert.Equal(t, PairPersonalVs10th, result.Comparisons[0].Type)
}

func TestVerifyWorkerDocumentsNameMismatchFails(t *testing.T) {
	personal := &Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"}
	edu10th := &Document{Name: "Totally Different", DateOfBirth: "1998-05-02"}
	edu12th := &Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"}

	result := VerifyWorkerDocuments(personal, edu10th, edu12th, DefaultNameThreshold)

	assert.Equal(t, StatusFailed, result.OverallStatus)
	require.Len(t, result.Comparisons, 3)

	first := result.Comparisons[0]
	assert.Equal(t, PairPersonalVs10th, first.Type)
	assert.Equal(t, StatusFailed, first.Status)
	require.NotEmpty(t, first.Details.Issues)
	assert.Contains(t, first.Details.Issues[0], "Ravi Kumar")
	assert.Contains(t, first.Details.Issues[0], "Totally Different")

	// personal vs 12th still verifies independently.
	assert.Equal(t, StatusVerified, result.Comparisons[1].Status)
}

func TestVerifyWorkerDocumentsNearIdenticalNamePasses(t *testing.T) {
	personal := &Document{Name: "Ravi Kumar", DateOfBirth: "1998-05-02"}
	edu10th := &Document{Name: "Ravi Kumarr", DateOfBirth: "1998-05-02"}

	result := VerifyWorkerDocuments(personal, edu10th, nil, DefaultNameThreshold)

	assert.Equal(t, StatusVerified, result.OverallStatus)
	require.Len(t, result.Comparisons, 1)
	assert.Equal(t, StatusVerified, result.Comparisons[0].Status)
}

func TestExtractVerificationErrors(t *testing.T) {
	t.Run("nil unless failed", func(t *testing.T) {
		assert.Nil(t, ExtractVerificationErrors(VerificationResult{OverallStatus: StatusVerified}))
		assert.Nil(t, ExtractVerificationErrors(VerificationResult{OverallStatus: StatusIncomplete}))
	})

	t.Run("collects failed comparison issues", func(t *testing.T) {
		result := VerificationResult{
			OverallStatus: StatusFailed,
			Comparisons: []Comparison{
				{
					Type:   PairPersonalVs10th,
					Status: StatusFailed,
					Details: ComparisonResult{
						Status: StatusFailed,
						Issues: []string{"Name mismatch: 'a' vs 'b' (similarity: 10.00%)"},
					},
				},
				{
					Type:    PairPersonalVs12th,
					Status:  StatusVerified,
					Details: ComparisonResult{Status: StatusVerified},
				},
			},
		}

		summary := ExtractVerificationErrors(result)
		require.NotNil(t, summary)
		assert.Equal(t, StatusFailed, summary.Status)
		require.Len(t, summary.Comparisons, 1)
		assert.Equal(t, PairPersonalVs10th, summary.Comparisons[0].Type)
		assert.Len(t, summary.Comparisons[0].Issues, 1)
	})

	t.Run("nil when failed comparisons carry no issues", func(t *testing.T) {
		result := VerificationResult{
			OverallStatus: StatusFailed,
			Comparisons: []Comparison{
				{
					Type:    PairPersonalVs10th,
					Status:  StatusFailed,
					Details: ComparisonResult{Status: StatusFailed, Issues: []string{}},
				},
			},
		}
		assert.Nil(t, ExtractVerificationErrors(result))
	})
}
