package verify

import (
	"fmt"
	"strings"
)

// Direct verification statuses for the lenient personal-vs-education
// path. "not_applicable" means there was nothing to compare against,
// which is distinct from a real conflict.
const (
	DirectMatched       = "matched"
	DirectMismatched    = "mismatched"
	DirectNotApplicable = "not_applicable"
)

// DirectResult is the outcome of the lenient two-document check.
type DirectResult struct {
	Verified           bool   `json:"verified"`
	NameMatch          bool   `json:"name_match,omitempty"`
	NameMessage        string `json:"name_message,omitempty"`
	DOBMatch           bool   `json:"dob_match,omitempty"`
	DOBMessage         string `json:"dob_message,omitempty"`
	VerificationStatus string `json:"verification_status"`
	ErrorMessage       string `json:"error_message,omitempty"`
	ReuploadRequired   bool   `json:"reupload_required,omitempty"`
}

// CompareNamesLenient applies the word-overlap strategy: names match if
// equal after normalization, if one name's words are a subset of the
// other's, or if the first or last token matches. A name missing on
// either side is always acceptable.
func CompareNamesLenient(personalName, eduName string) (bool, string) {
	personalName = strings.TrimSpace(personalName)
	eduName = strings.TrimSpace(eduName)

	if personalName == "" && eduName == "" {
		return true, "Name not present in both documents (acceptable)"
	}
	if personalName == "" || eduName == "" {
		return true, "Name not present in one document (acceptable)"
	}

	personalNorm := NormalizeName(personalName)
	eduNorm := NormalizeName(eduName)

	if personalNorm == eduNorm {
		return true, fmt.Sprintf("Names match: '%s' == '%s'", personalName, eduName)
	}

	if wordsSubset(personalNorm, eduNorm) || wordsSubset(eduNorm, personalNorm) {
		return true, fmt.Sprintf("Names partially match: '%s' ~ '%s'", personalName, eduName)
	}

	personalFirst, personalLast := FirstLastName(personalNorm)
	eduFirst, eduLast := FirstLastName(eduNorm)
	if (personalFirst != "" && personalFirst == eduFirst) || (personalLast != "" && personalLast == eduLast) {
		return true, fmt.Sprintf("First or last name matches: '%s' ~ '%s'", personalName, eduName)
	}

	return false, fmt.Sprintf("Name MISMATCH: Personal='%s' vs Educational='%s'", personalName, eduName)
}

// CompareDOBsLenient matches dates of birth by string equality after
// NormalizeDOB. A DOB missing on either side is always acceptable.
func CompareDOBsLenient(personalDOB, eduDOB string) (bool, string) {
	personalDOB = strings.TrimSpace(personalDOB)
	eduDOB = strings.TrimSpace(eduDOB)

	if personalDOB == "" && eduDOB == "" {
		return true, "DOB not present in both documents (acceptable)"
	}
	if personalDOB == "" || eduDOB == "" {
		return true, "DOB not present in one document (acceptable)"
	}

	if NormalizeDOB(personalDOB) == NormalizeDOB(eduDOB) {
		return true, fmt.Sprintf("DOBs match: %s", personalDOB)
	}
	return false, fmt.Sprintf("DOB MISMATCH: Personal='%s' vs Educational='%s'", personalDOB, eduDOB)
}

// VerifyPersonalVsEducation is the lenient direct check between a
// personal document and a single educational document. It never fails on
// missing fields; a missing personal document or an educational document
// with no comparable fields is reported as not_applicable.
func VerifyPersonalVsEducation(personal, educational *Document) DirectResult {
	if personal == nil {
		return DirectResult{
			VerificationStatus: DirectNotApplicable,
			ErrorMessage:       "Personal data not available for verification",
		}
	}
	if educational == nil {
		return DirectResult{Verified: true, VerificationStatus: DirectNotApplicable}
	}

	eduName := strings.TrimSpace(educational.Name)
	eduDOB := strings.TrimSpace(educational.DateOfBirth)
	if eduName == "" && eduDOB == "" {
		return DirectResult{Verified: true, VerificationStatus: DirectNotApplicable}
	}

	nameMatch, nameMessage := CompareNamesLenient(personal.Name, eduName)
	dobMatch, dobMessage := CompareDOBsLenient(personal.DateOfBirth, eduDOB)

	if nameMatch && dobMatch {
		return DirectResult{
			Verified:           true,
			NameMatch:          nameMatch,
			NameMessage:        nameMessage,
			DOBMatch:           dobMatch,
			DOBMessage:         dobMessage,
			VerificationStatus: DirectMatched,
		}
	}

	var errorParts []string
	if !nameMatch {
		errorParts = append(errorParts, nameMessage)
	}
	if !dobMatch {
		errorParts = append(errorParts, dobMessage)
	}
	return DirectResult{
		Verified:           false,
		NameMatch:          nameMatch,
		NameMessage:        nameMessage,
		DOBMatch:           dobMatch,
		DOBMessage:         dobMessage,
		VerificationStatus: DirectMismatched,
		ErrorMessage:       strings.Join(errorParts, " | "),
		ReuploadRequired:   true,
	}
}

func wordsSubset(sub, super string) bool {
	superWords := make(map[string]struct{})
	for _, w := range strings.Fields(super) {
		superWords[w] = struct{}{}
	}
	for _, w := range strings.Fields(sub) {
		if _, ok := superWords[w]; !ok {
			return false
		}
	}
	return true
}
