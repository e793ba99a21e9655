package fragment

import "errors"

var (
	// ErrMissingSegment means the fragment tree holds no Segment element.
	// Fatal for the fragment, not for the stream.
	ErrMissingSegment = errors.New("fragment: no segment element in fragment")
	// ErrTruncatedBlock means a SimpleBlock is shorter than its track
	// number vint plus the fixed timestamp and flags header.
	ErrTruncatedBlock = errors.New("fragment: truncated simple block")
)
