package verify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	spaceRe     = regexp.MustCompile(`\s+`)
	honorificRe = regexp.MustCompile(`\b(mr|mrs|ms|dr|prof|sr|jr)\b\.?`)

	dobCanonicalRe = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	dobSeparatedRe = regexp.MustCompile(`(\d{1,2})[/.\s]+(\d{1,2})[/.\s]+(\d{4})`)
	dobCompactRe   = regexp.MustCompile(`^(\d{2})(\d{2})(\d{4})$`)
)

// NormalizeName lowercases a name, collapses internal whitespace, and
// strips common honorifics so two independently OCR'd spellings can be
// compared. Empty input normalizes to "".
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	n := strings.ToLower(spaceRe.ReplaceAllString(name, " "))
	n = strings.TrimSpace(honorificRe.ReplaceAllString(n, ""))
	return n
}

// NormalizeDOB canonicalizes a date of birth to DD-MM-YYYY. It accepts
// already-canonical input, day/month/year separated by '/', '.', or
// whitespace (zero-padding 1-digit components), and compact DDMMYYYY.
// Anything else is returned unchanged; unexpected formats simply fail to
// match downstream instead of erroring here.
func NormalizeDOB(dob string) string {
	dob = strings.TrimSpace(dob)
	if dob == "" {
		return ""
	}
	if dobCanonicalRe.MatchString(dob) {
		return dob
	}
	if m := dobSeparatedRe.FindStringSubmatch(dob); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%02d-%02d-%s", day, month, m[3])
	}
	if m := dobCompactRe.FindStringSubmatch(dob); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3]
	}
	return dob
}

// FirstLastName splits a name into its first and last tokens. One token
// yields (token, ""); no tokens yield ("", "").
func FirstLastName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[len(parts)-1]
	}
}
