package fragment

import "github.com/heushreck/kvsaudio/ebml"

// BlockRef addresses one undecoded SimpleBlock inside the raw fragment
// buffer the tree was parsed from.
type BlockRef struct {
	Offset int
	Size   int
}

// Block is one demuxed SimpleBlock: the track it belongs to and its
// payload. Payload aliases the input buffer; it is not a copy.
type Block struct {
	TrackNumber uint64
	Payload     []byte
}

// SimpleBlocks enumerates the byte ranges of the SimpleBlock elements in
// the fragment's first Cluster, in fragment order. A fragment without a
// Cluster or without blocks yields an empty slice. Additional sibling
// Clusters are not scanned; KVS emits one Cluster per fragment and the
// behavior for more is deliberately left at the first one.
// Returns ErrMissingSegment if the fragment has no Segment element.
func SimpleBlocks(doc *ebml.Document) ([]BlockRef, error) {
	seg, err := segment(doc)
	if err != nil {
		return nil, err
	}

	var refs []BlockRef
	for _, el := range seg.Children {
		if el.ID != ebml.ElementCluster.ID {
			continue
		}
		for _, blk := range el.Children {
			if blk.ID == ebml.ElementSimpleBlock.ID {
				refs = append(refs, BlockRef{Offset: blk.Offset, Size: blk.Size})
			}
		}
		break
	}

	return refs, nil
}

// DecodeBlock demuxes one SimpleBlock. raw is exactly the block's content
// as addressed by a BlockRef. The payload is everything after the track
// number vint, the two timestamp bytes and the flags byte; lacing is not
// supported, every block is treated as a single frame.
//
// Returns ErrTruncatedBlock when raw is too short to hold the header, or
// a vint error when the track number itself is malformed.
func DecodeBlock(raw []byte) (Block, error) {
	number, n, err := ebml.DecodeVint(raw, 0)
	if err != nil {
		return Block{}, err
	}
	if len(raw) < n+3 {
		return Block{}, ErrTruncatedBlock
	}

	return Block{TrackNumber: number, Payload: raw[n+3:]}, nil
}
