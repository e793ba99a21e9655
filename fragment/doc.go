// Package fragment post-processes one parsed KVS MKV fragment: it
// extracts the fragment metadata tags, resolves the two Amazon Connect
// audio tracks, and demuxes the per-track audio payloads out of the
// fragment's SimpleBlock elements.
//
// All functions are synchronous and side-effect free over their inputs.
// A typical caller holds the raw fragment bytes and the tree parsed from
// them by ebml.Parse:
//
//	tracks, _ := fragment.ResolveAudioTracks(doc, logger)
//	refs, err := fragment.SimpleBlocks(doc)
//	if err != nil {
//	    return err
//	}
//	for _, ref := range refs {
//	    blk, err := fragment.DecodeBlock(raw[ref.Offset : ref.Offset+ref.Size])
//	    if err != nil {
//	        return err
//	    }
//	    switch blk.TrackNumber {
//	    case tracks.FromCustomer:
//	        fromCustomer = append(fromCustomer, blk.Payload...)
//	    case tracks.ToCustomer:
//	        toCustomer = append(toCustomer, blk.Payload...)
//	    }
//	}
//
// Failures are always scoped to the fragment at hand; retry and stream
// restart decisions belong to the delivery pipeline (see package kvs).
package fragment
