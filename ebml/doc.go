// Package ebml decodes the EBML structure of a single Matroska fragment
// held in memory, as produced by Amazon Kinesis Video Streams GetMedia.
//
// Parse builds an element tree over an immutable fragment buffer. Leaf
// elements reference their content as zero-copy subslices of that buffer
// and record the (offset, size) of the content within it, so callers can
// slice the raw fragment themselves when they need undecoded bytes.
package ebml
