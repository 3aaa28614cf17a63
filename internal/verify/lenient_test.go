package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareNamesLenient(t *testing.T) {
	tests := []struct {
		name         string
		personalName string
		eduName      string
		wantMatch    bool
		wantContains string
	}{
		{"both empty acceptable", "", "", true, "both documents"},
		{"one empty acceptable", "Ravi Kumar", "", true, "one document"},
		{"exact after normalization", "Mr. Ravi Kumar", "RAVI  KUMAR", true, "Names match"},
		{"word subset", "Ravi Kumar Sharma", "Ravi Sharma", true, "partially match"},
		{"reverse word subset", "Ravi Sharma", "Ravi Kumar Sharma", true, "partially match"},
		{"first name matches", "Ravi Prasad", "Ravi Verma", true, "First or last name"},
		{"last name matches", "Anil Kumar", "Sunil Kumar", true, "First or last name"},
		{"no overlap mismatch", "Ravi Kumar", "Anita Sharma", false, "Name MISMATCH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, message := CompareNamesLenient(tt.personalName, tt.eduName)
			assert.Equal(t, tt.wantMatch, match)
			assert.Contains(t, message, tt.wantContains)
		})
	}
}

func TestCompareDOBsLenient(t *testing.T) {
	tests := []struct {
		name        string
		personalDOB string
		eduDOB      string
		wantMatch   bool
	}{
		{"both empty acceptable", "", "", true},
		{"one empty acceptable", "02-05-1998", "", true},
		{"equal canonical", "02-05-1998", "02-05-1998", true},
		{"equal after normalization", "2/5/1998", "02051998", true},
		{"different dates", "02-05-1998", "03-05-1998", false},
		{"unrecognized formats compared verbatim", "May 2 1998", "May 2 1998", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, _ := CompareDOBsLenient(tt.personalDOB, tt.eduDOB)
			assert.Equal(t, tt.wantMatch, match)
		})
	}
}

func TestVerifyPersonalVsEducation(t *testing.T) {
	t.Run("missing personal document", func(t *testing.T) {
		result := VerifyPersonalVsEducation(nil, &Document{Name: "Ravi Kumar"})
		assert.False(t, result.Verified)
		assert.Equal(t, DirectNotApplicable, result.VerificationStatus)
		assert.Contains(t, result.ErrorMessage, "Personal data not available")
	})

	t.Run("missing educational document", func(t *testing.T) {
		result := VerifyPersonalVsEducation(&Document{Name: "Ravi Kumar"}, nil)
		assert.True(t, result.Verified)
		assert.Equal(t, DirectNotApplicable, result.VerificationStatus)
	})

	t.Run("educational document with no comparable fields", func(t *testing.T) {
		result := VerifyPersonalVsEducation(&Document{Name: "Ravi Kumar"}, &Document{})
		assert.True(t, result.Verified)
		assert.Equal(t, DirectNotApplicable, result.VerificationStatus)
	})

	t.Run("matching documents", func(t *testing.T) {
		personal := &Document{Name: "Ravi Kumar", DateOfBirth: "02-05-1998"}
		edu := &Document{Name: "Ravi Kumar", DateOfBirth: "2/5/1998"}

		result := VerifyPersonalVsEducation(personal, edu)
		assert.True(t, result.Verified)
		assert.Equal(t, DirectMatched, result.VerificationStatus)
		assert.True(t, result.NameMatch)
		assert.True(t, result.DOBMatch)
		assert.False(t, result.ReuploadRequired)
	})

	t.Run("mismatched documents", func(t *testing.T) {
		personal := &Document{Name: "Ravi Kumar", DateOfBirth: "02-05-1998"}
		edu := &Document{Name: "Anita Sharma", DateOfBirth: "09-09-1999"}

		result := VerifyPersonalVsEducation(personal, edu)
		assert.False(t, result.Verified)
		assert.Equal(t, DirectMismatched, result.VerificationStatus)
		assert.True(t, result.ReuploadRequired)
		assert.Contains(t, result.ErrorMessage, "Name MISMATCH")
		assert.Contains(t, result.ErrorMessage, "DOB MISMATCH")
		assert.Contains(t, result.ErrorMessage, " | ")
	})

	t.Run("name mismatch only", func(t *testing.T) {
		personal := &Document{Name: "Ravi Kumar", DateOfBirth: "02-05-1998"}
		edu := &Document{Name: "Anita Sharma", DateOfBirth: "02-05-1998"}

		result := VerifyPersonalVsEducation(personal, edu)
		assert.False(t, result.Verified)
		assert.False(t, result.NameMatch)
		assert.True(t, result.DOBMatch)
		assert.NotContains(t, result.ErrorMessage, "DOB MISMATCH")
	})
}
