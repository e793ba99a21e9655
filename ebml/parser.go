package ebml

import "errors"

var (
	ErrParse         = errors.New("ebml: parse error")
	ErrUnexpectedEOF = errors.New("ebml: unexpected end of fragment")
)

// Parse builds the element tree of one complete fragment. The buffer is
// not copied: leaf elements reference it directly. The caller must not
// mutate buf while the returned document is in use.
func Parse(buf []byte) (*Document, error) {
	els, err := parseRange(buf, 0, len(buf))
	if err != nil {
		return nil, err
	}

	return &Document{Elements: els}, nil
}

// parseRange parses the run of sibling elements occupying buf[pos:end).
func parseRange(buf []byte, pos, end int) ([]*Element, error) {
	var els []*Element

	for pos < end {
		el, next, err := parseElement(buf, pos, end)
		if err != nil {
			return nil, err
		}

		els = append(els, el)
		pos = next
	}

	return els, nil
}

// parseElement parses the element starting at buf[pos] and returns it
// together with the offset of the next sibling.
func parseElement(buf []byte, pos, end int) (*Element, int, error) {
	id, n, err := readElementID(buf[:end], pos)
	if err != nil {
		return nil, 0, err
	}
	pos += n

	size, n, unknown, err := readElementSize(buf[:end], pos)
	if err != nil {
		return nil, 0, err
	}
	pos += n

	reg := GetElementRegister(id)
	reg.ID = id // keep the real ID for elements outside the registry

	contentEnd := pos + size
	if unknown {
		// The unknown-size sentinel is only legal on master elements.
		// KVS GetMedia emits it on the Segment, which then extends to
		// the end of the enclosing range.
		if reg.Type != ElementTypeMaster {
			return nil, 0, ErrParse
		}
		contentEnd = end
	}
	if contentEnd > end {
		return nil, 0, ErrUnexpectedEOF
	}

	el := &Element{
		ElementRegister: reg,
		Offset:          pos,
		Size:            contentEnd - pos,
	}

	if reg.Type == ElementTypeMaster {
		children, err := parseRange(buf, pos, contentEnd)
		if err != nil {
			return nil, 0, err
		}
		el.Children = children
	} else {
		el.Content = buf[pos:contentEnd]
	}

	return el, contentEnd, nil
}

// readElementID parses an element ID at buf[pos]. Unlike data-size vints
// the marker bit stays part of the value, and IDs are at most 4 bytes.
func readElementID(buf []byte, pos int) (uint32, int, error) {
	if pos >= len(buf) {
		return 0, 0, ErrUnexpectedEOF
	}

	var n int
	switch b := buf[pos]; {
	case b&0x80 != 0: // Class A ID (on 1 byte)
		n = 1
	case b&0x40 != 0: // Class B ID (on 2 bytes)
		n = 2
	case b&0x20 != 0: // Class C ID (on 3 bytes)
		n = 3
	case b&0x10 != 0: // Class D ID (on 4 bytes)
		n = 4
	default:
		return 0, 0, ErrParse
	}
	if pos+n > len(buf) {
		return 0, 0, ErrUnexpectedEOF
	}

	return uint32(pack(n, buf[pos:pos+n])), n, nil
}

// readElementSize parses a data-size vint at buf[pos]. A size with every
// value bit set is the "unknown size" sentinel.
func readElementSize(buf []byte, pos int) (int, int, bool, error) {
	v, n, err := DecodeVint(buf, pos)
	if err != nil {
		if errors.Is(err, ErrOutOfRange) {
			err = ErrUnexpectedEOF
		}
		return 0, 0, false, err
	}

	unknown := v == 1<<(7*n)-1
	if !unknown && v > uint64(len(buf)) {
		// Cannot possibly fit in the fragment, and conversion to int
		// must not overflow on 32 bit platforms.
		return 0, 0, false, ErrUnexpectedEOF
	}

	return int(v), n, unknown, nil
}
