package ebml

import "errors"

var (
	// ErrInvalidVarint means the first byte of a vint has no marker bit,
	// which would imply a length over the 8 byte maximum.
	ErrInvalidVarint = errors.New("ebml: invalid varint")
	// ErrOutOfRange means a vint declares more bytes than the buffer holds.
	ErrOutOfRange = errors.New("ebml: varint exceeds buffer")
)

// DecodeVint decodes one EBML variable length integer from buf starting at
// offset. It returns the decoded value and the total byte length of the
// vint (1 to 8). The marker bit is not part of the returned value.
//
// The input is network-derived and may be truncated anywhere, so the
// declared length is checked against the bytes actually present.
func DecodeVint(buf []byte, offset int) (uint64, int, error) {
	if offset < 0 || offset >= len(buf) {
		return 0, 0, ErrOutOfRange
	}

	first := buf[offset]
	mask := byte(0x80)
	n := 1

	for n <= 8 && first&mask == 0 {
		mask >>= 1
		n++
	}
	if n > 8 {
		return 0, 0, ErrInvalidVarint
	}
	if offset+n > len(buf) {
		return 0, 0, ErrOutOfRange
	}

	v := uint64(first & (mask - 1))
	for i := 1; i < n; i++ {
		v = v<<8 | uint64(buf[offset+i])
	}

	return v, n, nil
}
