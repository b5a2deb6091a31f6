package remapfilter

import (
	"strconv"
	"strings"

	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
	"v.io/x/lib/vlog"
)

// ErrDuplicateRead indicates that the remap stream contained more correctly
// mapped copies of a read than its names declared. A correct upstream
// generator cannot produce this, so it signals corrupt or mismatched inputs
// and is always fatal.
var ErrDuplicateRead = errors.New("read remapped correctly more times than declared")

type verdict int8

const (
	// pending: some copies seen, all correct so far, total not yet reached.
	// The zero value, so reads never seen are pending too.
	pending verdict = iota
	// keepRead: all declared copies mapped back to the original position.
	keepRead
	// badRead: at least one copy mapped elsewhere. Absorbing.
	badRead
)

type readState struct {
	verdict verdict
	// hits counts correct copies. Cleared on promotion to keepRead so that
	// memory is bounded by the unresolved reads; for a keepRead it counts
	// the extra copies seen since, to catch duplicate resolution.
	hits int
}

// Verdicts holds the per-original-read outcome of a verification pass over
// the remapped reads. A read is in exactly one of three states: kept, bad,
// or unresolved; kept and bad never overlap.
type Verdicts struct {
	sep   string
	reads map[string]readState
}

// Kept reports whether every remapped copy of origName mapped back to the
// position recorded in its name.
func (v *Verdicts) Kept(origName string) bool {
	return v.reads[origName].verdict == keepRead
}

// Bad reports whether some remapped copy of origName mapped elsewhere, was
// improperly paired, or otherwise failed verification.
func (v *Verdicts) Bad(origName string) bool {
	return v.reads[origName].verdict == badRead
}

// Verify drains the remapped-read stream and decides, per original read,
// whether all of its allele-flipped copies re-aligned to the original
// position. Secondary alignments are ignored. One incorrect copy condemns
// the read permanently, even if it had already accumulated all its correct
// copies. Names that do not follow the remap naming convention are fatal.
func Verify(src RecordSource, sep string) (*Verdicts, error) {
	v := &Verdicts{sep: sep, reads: map[string]readState{}}
	nrecs := 0
	for src.Scan() {
		rec := src.Record()
		nrecs++
		if rec.Flags&sam.Secondary != 0 {
			continue
		}
		name, err := ParseReadName(rec.Name, sep)
		if err != nil {
			return nil, err
		}
		correct, skip, err := remappedCorrectly(rec, name.Coord)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		if !correct {
			v.reads[name.Orig] = readState{verdict: badRead}
			continue
		}
		st := v.reads[name.Orig]
		switch st.verdict {
		case badRead:
			// Already condemned, later correct copies change nothing.
		case keepRead:
			st.hits++
			if st.hits == name.Total {
				return nil, errors.Wrapf(ErrDuplicateRead, "read %q", name.Orig)
			}
			v.reads[name.Orig] = st
		default:
			st.hits++
			if st.hits == name.Total {
				st = readState{verdict: keepRead}
			}
			v.reads[name.Orig] = st
		}
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	vlog.VI(1).Infof("verified %d remapped records, %d reads tracked", nrecs, len(v.reads))
	return v, nil
}

// remappedCorrectly reports whether rec re-aligned to the position its name
// records. skip is true when rec is the right mate of a proper pair: the
// left mate alone decides for the pair, checking both encoded positions, so
// the right mate contributes nothing either way.
func remappedCorrectly(rec *sam.Record, coord string) (correct, skip bool, err error) {
	dash := strings.IndexByte(coord, '-')
	if dash < 0 {
		pos, perr := strconv.Atoi(coord)
		if perr != nil {
			return false, false, errors.Wrapf(ErrMalformedName, "coordinate %q in read %q", coord, rec.Name)
		}
		return rec.Pos+1 == pos, false, nil
	}

	// Paired end, one expected 1-based position per mate.
	pos1, err1 := strconv.Atoi(coord[:dash])
	pos2, err2 := strconv.Atoi(coord[dash+1:])
	if err1 != nil || err2 != nil {
		return false, false, errors.Wrapf(ErrMalformedName, "coordinate %q in read %q", coord, rec.Name)
	}
	if rec.Flags&sam.Paired == 0 || rec.Flags&sam.ProperPair == 0 {
		return false, false, nil
	}
	left, right := pos1, pos2
	if right < left {
		left, right = right, left
	}
	if rec.Pos > rec.MatePos || (rec.Pos == rec.MatePos && !isRead1(rec)) {
		return false, true, nil
	}
	return rec.Pos+1 == left && rec.MatePos+1 == right, false, nil
}

func isRead1(rec *sam.Record) bool {
	return rec.Flags&sam.Read1 != 0 && rec.Flags&sam.Read2 == 0
}
