package remapfilter

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReadName(t *testing.T) {
	tests := []struct {
		qname string
		sep   string
		want  ReadName
	}{
		{"readA.100.1.2", ".", ReadName{Orig: "readA", Coord: "100", Num: 1, Total: 2}},
		// The separator may occur inside the original name; only the
		// trailing three fields are positional.
		{"read.with.dots.100.1.2", ".", ReadName{Orig: "read.with.dots", Coord: "100", Num: 1, Total: 2}},
		{"r2.50-80.1.1", ".", ReadName{Orig: "r2", Coord: "50-80", Num: 1, Total: 1}},
		{"a_b_101_2_4", "_", ReadName{Orig: "a_b", Coord: "101", Num: 2, Total: 4}},
	}
	for _, tt := range tests {
		got, err := ParseReadName(tt.qname, tt.sep)
		require.NoError(t, err, "qname %q", tt.qname)
		assert.Equal(t, tt.want, got, "qname %q", tt.qname)
	}
}

func TestParseReadNameMalformed(t *testing.T) {
	for _, qname := range []string{
		"r1",
		"r1.100.1",      // only three fields
		"r1.100.x.2",    // non-integer read number
		"r1.100.1.x",    // non-integer read total
		"r1.100.1.2e1",  // no scientific notation either
		"...",           // empty fields are not integers
	} {
		_, err := ParseReadName(qname, ".")
		require.Error(t, err, "qname %q", qname)
		assert.Equal(t, ErrMalformedName, errors.Cause(err), "qname %q", qname)
	}
}

func TestParseReadNameCoordUnparsed(t *testing.T) {
	// The coordinate field is not validated at decode time; the verifier
	// parses it according to single- or paired-end form.
	got, err := ParseReadName("r1.not-a-number.1.1", ".")
	require.NoError(t, err)
	assert.Equal(t, "not-a-number", got.Coord)
}
