package remapfilter

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/bam"
)

// Opts selects the inputs and output of a filtering run. The paths may be
// local or S3.
type Opts struct {
	// ToRemapBAM is the BAM of original reads that overlapped variants and
	// had flipped copies submitted for remapping.
	ToRemapBAM string
	// RemapBAM is the BAM of allele-flipped copies after re-alignment.
	RemapBAM string
	// KeepBAM is the output BAM receiving the reads that survive
	// verification. Its header is copied from ToRemapBAM.
	KeepBAM string
	// Separator is the field separator used in the remapped read names.
	// Empty means DefaultSeparator.
	Separator string
}

// Run verifies the remapped reads and writes the surviving originals to the
// output BAM, returning the kept/bad/discarded record counts. The remap
// stream is fully drained before the original stream is opened; any
// malformed name, duplicate resolution, or IO failure aborts the run.
func Run(ctx context.Context, opts Opts) (Counts, error) {
	sep := opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	verdicts, err := verifyBAM(ctx, opts.RemapBAM, sep)
	if err != nil {
		return Counts{}, err
	}
	counts, err := writeKeptBAM(ctx, opts.ToRemapBAM, opts.KeepBAM, verdicts)
	if err != nil {
		return Counts{}, err
	}
	log.Debug.Printf("%s: kept %d, bad %d, discarded %d records",
		opts.ToRemapBAM, counts.Kept, counts.Bad, counts.Discarded)
	return counts, nil
}

// Filter is the stream-level equivalent of Run for callers that own the
// record streams: it drains remapSrc to build the verdicts, then replays
// origSrc into sink. An empty sep means DefaultSeparator.
func Filter(remapSrc, origSrc RecordSource, sink RecordSink, sep string) (Counts, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	verdicts, err := Verify(remapSrc, sep)
	if err != nil {
		return Counts{}, err
	}
	return WriteKept(origSrc, verdicts, sink)
}

func verifyBAM(ctx context.Context, path, sep string) (v *Verdicts, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "couldn't open remap BAM:", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	r, err := bam.NewReader(in.Reader(ctx), 1)
	if err != nil {
		return nil, errors.E(err, "couldn't read remap BAM:", path)
	}
	defer func() {
		if err2 := r.Close(); err == nil && err2 != nil {
			err = err2
		}
	}()
	return Verify(NewBAMSource(r), sep)
}

func writeKeptBAM(ctx context.Context, toRemapPath, keepPath string, v *Verdicts) (c Counts, err error) {
	in, err := file.Open(ctx, toRemapPath)
	if err != nil {
		return Counts{}, errors.E(err, "couldn't open to-remap BAM:", toRemapPath)
	}
	defer file.CloseAndReport(ctx, in, &err)
	r, err := bam.NewReader(in.Reader(ctx), 1)
	if err != nil {
		return Counts{}, errors.E(err, "couldn't read to-remap BAM:", toRemapPath)
	}
	defer func() {
		if err2 := r.Close(); err == nil && err2 != nil {
			err = err2
		}
	}()

	out, err := file.Create(ctx, keepPath)
	if err != nil {
		return Counts{}, errors.E(err, "couldn't create keep BAM:", keepPath)
	}
	defer file.CloseAndReport(ctx, out, &err)
	// The output inherits the to-remap header so downstream tools see the
	// same references.
	w, err := bam.NewWriter(out.Writer(ctx), r.Header(), 1)
	if err != nil {
		return Counts{}, errors.E(err, "couldn't write keep BAM:", keepPath)
	}
	c, err = WriteKept(NewBAMSource(r), v, w)
	if err2 := w.Close(); err == nil && err2 != nil {
		err = err2
	}
	return c, err
}
