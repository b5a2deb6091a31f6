/*
bio-remap-filter checks whether reads that overlap variants map back to the
same location as the original reads after their alleles are flipped and
re-aligned. Reads where one or more allelic copies map to a different
location, or fail to map, are discarded; the reads that survive are written
to the output BAM.

Reads in the remap BAM are expected to have names encoding the original map
location and the number of allelic copies, delimited with the '.' character:

    <orig_name>.<coordinate>.<read_number>.<total_read_number>

as produced by the allele-flipping step of the pipeline. The count of kept,
bad, and discarded reads is reported on exit.

Sample usage:
bio-remap-filter \
    --to-remap-bam to.remap.bam \
    --remap-bam remapped.bam \
    --output keep.bam
*/
package main
