package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"lowercases", "RAVI KUMAR", "ravi kumar"},
		{"collapses internal whitespace", "Ravi   Kumar", "ravi kumar"},
		{"strips leading honorific with period", "Mr. Ravi Kumar", "ravi kumar"},
		{"strips honorific without period", "mrs Anita Sharma", "anita sharma"},
		{"strips dr", "Dr. A P J Abdul Kalam", "a p j abdul kalam"},
		{"honorific embedded as whole word only", "Drake Prof", "drake"},
		{"keeps non-honorific prefixes", "Mister Kumar", "mister kumar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeDOB(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already canonical", "02-05-1998", "02-05-1998"},
		{"slash separated", "2/5/1998", "02-05-1998"},
		{"slash separated two digit", "02/05/1998", "02-05-1998"},
		{"dot separated", "2.5.1998", "02-05-1998"},
		{"space separated", "2 5 1998", "02-05-1998"},
		{"mixed repeated separators", "2 / 5 / 1998", "02-05-1998"},
		{"compact eight digits", "02051998", "02-05-1998"},
		{"surrounding whitespace", "  02-05-1998  ", "02-05-1998"},
		{"unrecognized returned unchanged", "May 2, 1998", "May 2, 1998"},
		{"iso format returned unchanged", "1998-05-02", "1998-05-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDOB(tt.input))
		})
	}
}

func TestNormalizeDOBIdempotent(t *testing.T) {
	inputs := []string{
		"", "02-05-1998", "2/5/1998", "2.5.1998", "2 5 1998",
		"02051998", "May 2, 1998", "1998-05-02", "not a date",
	}
	for _, in := range inputs {
		once := NormalizeDOB(in)
		assert.Equal(t, once, NormalizeDOB(once), "input %q", in)
	}
}

func TestFirstLastName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{"empty", "", "", ""},
		{"single token", "ravi", "ravi", ""},
		{"two tokens", "ravi kumar", "ravi", "kumar"},
		{"three tokens", "ravi kumar sharma", "ravi", "sharma"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := FirstLastName(tt.input)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
