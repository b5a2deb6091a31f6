package remapfilter

import (
	"io"

	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
)

// RecordSource is a finite, non-restartable stream of alignment records in
// file order. Thread compatible.
type RecordSource interface {
	// Scan advances to the next record. It returns false when the stream is
	// exhausted or an error occurred; the two are distinguished by Err.
	Scan() bool

	// Record returns the current record. It must be called only after a
	// call to Scan returns true.
	Record() *sam.Record

	// Err returns the error that terminated the stream, or nil. An io.EOF
	// is translated to nil.
	Err() error
}

// RecordSink accepts records for writing, preserving call order.
// *bam.Writer satisfies it.
type RecordSink interface {
	Write(r *sam.Record) error
}

// NewBAMSource returns a RecordSource yielding r's records in file order.
func NewBAMSource(r *bam.Reader) RecordSource {
	return &bamSource{r: r}
}

type bamSource struct {
	r   *bam.Reader
	rec *sam.Record
	err error
}

func (s *bamSource) Scan() bool {
	if s.err != nil {
		return false
	}
	rec, err := s.r.Read()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return false
	}
	s.rec = rec
	return true
}

func (s *bamSource) Record() *sam.Record { return s.rec }

func (s *bamSource) Err() error { return s.err }
