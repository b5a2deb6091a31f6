package main

// bio-remap-filter checks reads whose alleles were flipped and re-aligned
// against the mapping positions encoded in their names. See doc.go.

import (
	"flag"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/remapfilter"
)

var (
	toRemapFile = flag.String("to-remap-bam", "", "Input BAM containing the original reads that overlapped variants and were submitted for remapping")
	remapFile   = flag.String("remap-bam", "", "Input BAM containing the allele-flipped reads after re-alignment")
	outputPath  = flag.String("output", "", "Output BAM for reads whose flipped copies all remapped to the original position")
	separator   = flag.String("name-separator", remapfilter.DefaultSeparator, "Field separator used in the remapped read names")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	// Validate parameters.
	if flag.NArg() > 0 {
		a := flag.Args()
		log.Fatalf("unparsed flags, please check flag syntax: '%s'", strings.Join(a[len(a)-flag.NArg():], " "))
	}
	if *toRemapFile == "" || *remapFile == "" || *outputPath == "" {
		log.Fatalf("-to-remap-bam, -remap-bam and -output are all required")
	}

	ctx := vcontext.Background()
	counts, err := remapfilter.Run(ctx, remapfilter.Opts{
		ToRemapBAM: *toRemapFile,
		RemapBAM:   *remapFile,
		KeepBAM:    *outputPath,
		Separator:  *separator,
	})
	if err != nil {
		log.Fatalf(err.Error())
	}
	log.Printf("keep_reads: %d", counts.Kept)
	log.Printf("bad_reads: %d", counts.Bad)
	log.Printf("discard_reads: %d", counts.Discarded)
}
