package remapfilter

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultSeparator separates the fields packed into a remapped read name.
const DefaultSeparator = "."

// ErrMalformedName indicates a read name that does not follow the
// <orig_name>.<coordinate>.<read_number>.<total_read_number> convention
// produced by the allele-flipping step. The naming contract is load bearing
// for the whole verification, so this error is always fatal to a run.
var ErrMalformedName = errors.New("malformed remap read name")

// ReadName is a remapped read name decoded into its fields. Coord is left
// unparsed: it holds either a single 1-based position ("101") or one
// position per mate ("50-80"), and the verifier decides which form applies.
type ReadName struct {
	Orig  string
	Coord string
	Num   int
	Total int
}

// ParseReadName splits qname on sep and decodes the trailing coordinate,
// read number, and read total. The separator may also occur inside the
// original read name, so only the trailing three fields are positional and
// everything before them is rejoined into Orig.
func ParseReadName(qname, sep string) (ReadName, error) {
	fields := strings.Split(qname, sep)
	if len(fields) < 4 {
		return ReadName{}, errors.Wrapf(ErrMalformedName,
			"expected <orig_name>%s<coordinate>%s<read_number>%s<total_read_number>, got %q",
			sep, sep, sep, qname)
	}
	n := len(fields)
	num, err := strconv.Atoi(fields[n-2])
	if err != nil {
		return ReadName{}, errors.Wrapf(ErrMalformedName, "read number %q in %q", fields[n-2], qname)
	}
	total, err := strconv.Atoi(fields[n-1])
	if err != nil {
		return ReadName{}, errors.Wrapf(ErrMalformedName, "read total %q in %q", fields[n-1], qname)
	}
	return ReadName{
		Orig:  strings.Join(fields[:n-3], sep),
		Coord: fields[n-3],
		Num:   num,
		Total: total,
	}, nil
}
