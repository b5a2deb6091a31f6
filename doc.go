/*Package remapfilter verifies remapped reads for allele-specific mapping
  bias correction.

  Upstream in the pipeline, reads that overlap variants have their alleles
  flipped and are re-aligned. Each flipped copy carries a name of the form

    <orig_name>.<coordinate>.<read_number>.<total_read_number>

  where <coordinate> is the 1-based position the original read mapped to
  (or "<pos1>-<pos2>", one position per mate, for paired reads). This
  package replays the re-aligned copies, checks each one against the
  position packed into its name, and keeps an original read only if every
  one of its declared copies mapped back to the same place. Reads with any
  copy mapping elsewhere carry allele-dependent mapping bias and are
  dropped, as are reads whose copies never showed up in the remap output.

  Processing is two sequential passes: Verify drains the remapped BAM and
  produces a verdict per original read, then WriteKept streams the original
  reads in file order, writing the survivors and counting the rest.
*/
package remapfilter
