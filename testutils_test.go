package remapfilter

import (
	"github.com/grailbio/hts/sam"
)

const (
	sgl  = sam.Flags(0)
	p1   = sam.Paired | sam.ProperPair | sam.Read1
	p2   = sam.Paired | sam.ProperPair | sam.Read2
	u1   = sam.Paired | sam.Read1 // paired but not a proper pair
	sec1 = sam.Secondary
)

var testRef, _ = sam.NewReference("chr1", "", "", 1000000, nil, nil)

func newRecord(name string, pos int, flags sam.Flags, matePos int) *sam.Record {
	r := sam.GetFromFreePool()
	r.Name = name
	r.Ref = testRef
	r.Pos = pos
	r.Flags = flags
	if flags&sam.Paired != 0 {
		r.MateRef = testRef
		r.MatePos = matePos
	}
	return r
}

// sliceSource yields a fixed record slice, optionally failing with err once
// the slice is drained.
type sliceSource struct {
	recs []*sam.Record
	rec  *sam.Record
	err  error
}

func (s *sliceSource) Scan() bool {
	if len(s.recs) == 0 {
		return false
	}
	s.rec = s.recs[0]
	s.recs = s.recs[1:]
	return true
}

func (s *sliceSource) Record() *sam.Record { return s.rec }

func (s *sliceSource) Err() error { return s.err }

type sliceSink struct {
	recs []*sam.Record
	err  error
}

func (s *sliceSink) Write(r *sam.Record) error {
	if s.err != nil {
		return s.err
	}
	s.recs = append(s.recs, r)
	return nil
}

func (s *sliceSink) names() []string {
	names := []string{}
	for _, r := range s.recs {
		names = append(names, r.Name)
	}
	return names
}
