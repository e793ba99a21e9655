package fragment

import "github.com/heushreck/kvsaudio/ebml"

// segment returns the fragment's Segment element. Every fragment carries
// exactly one; the first occurrence wins if a malformed fragment has more.
func segment(doc *ebml.Document) (*ebml.Element, error) {
	if seg := doc.FindID(ebml.ElementSegment.ID); seg != nil {
		return seg, nil
	}
	return nil, ErrMissingSegment
}
