package remapfilter

// Counts summarizes one filtering pass over the original reads. Paired
// reads contribute one count per record, not per pair.
type Counts struct {
	// Kept records were written to the sink: every flipped copy of the
	// read remapped to the original position.
	Kept int64
	// Bad records belong to reads with at least one copy mapping
	// elsewhere.
	Bad int64
	// Discarded records belong to reads that were never resolved, e.g.
	// because their flipped copies failed to align at all and so never
	// appeared in the remap stream.
	Discarded int64
}

// WriteKept replays the original (pre-flip) reads against the verdicts from
// Verify, writing the kept ones to sink in input order. Original reads carry
// the same encoded names as their remapped copies, so each name is decoded
// with the verdicts' separator before the lookup; a bad verdict takes
// priority over a kept one, though with the absorbing bad state both can
// never hold at once.
func WriteKept(src RecordSource, v *Verdicts, sink RecordSink) (Counts, error) {
	var c Counts
	for src.Scan() {
		rec := src.Record()
		name, err := ParseReadName(rec.Name, v.sep)
		if err != nil {
			return c, err
		}
		switch {
		case v.Bad(name.Orig):
			c.Bad++
		case v.Kept(name.Orig):
			if err := sink.Write(rec); err != nil {
				return c, err
			}
			c.Kept++
		default:
			c.Discarded++
		}
	}
	return c, src.Err()
}
