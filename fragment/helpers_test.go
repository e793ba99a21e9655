package fragment

import (
	"bytes"
	"testing"

	"github.com/heushreck/kvsaudio/ebml"
)

// Hand-rolled EBML encoding for malformed and minimal fixtures that the
// marshaling fixture in fixture_test.go cannot produce.

func appendElementID(b []byte, id uint32) []byte {
	switch {
	case id <= 0xff:
		return append(b, byte(id))
	case id <= 0xffff:
		return append(b, byte(id>>8), byte(id))
	case id <= 0xffffff:
		return append(b, byte(id>>16), byte(id>>8), byte(id))
	default:
		return append(b, byte(id>>24), byte(id>>16), byte(id>>8), byte(id))
	}
}

func appendSize(b []byte, size int) []byte {
	n := 1
	for uint64(size) >= uint64(1)<<(7*n)-1 {
		n++
	}
	v := uint64(size)
	enc := make([]byte, n)
	for i := n - 1; i > 0; i-- {
		enc[i] = byte(v)
		v >>= 8
	}
	enc[0] = byte(0x80>>(n-1)) | byte(v)
	return append(b, enc...)
}

func leaf(id uint32, content []byte) []byte {
	b := appendElementID(nil, id)
	b = appendSize(b, len(content))
	return append(b, content...)
}

func master(id uint32, children ...[]byte) []byte {
	body := bytes.Join(children, nil)
	b := appendElementID(nil, id)
	b = appendSize(b, len(body))
	return append(b, body...)
}

func uintContent(v uint64) []byte {
	var b []byte
	for v > 0 {
		b = append([]byte{byte(v)}, b...)
		v >>= 8
	}
	if b == nil {
		b = []byte{0}
	}
	return b
}

func mustParse(t *testing.T, buf []byte) *ebml.Document {
	t.Helper()
	doc, err := ebml.Parse(buf)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

// segmentDoc wraps the encoded children in a Segment and parses the result.
func segmentDoc(t *testing.T, children ...[]byte) *ebml.Document {
	t.Helper()
	return mustParse(t, master(ebml.ElementSegment.ID, children...))
}

// headerOnlyDoc is a fragment without any Segment element.
func headerOnlyDoc(t *testing.T) *ebml.Document {
	t.Helper()
	return mustParse(t, master(ebml.ElementEBML.ID, leaf(ebml.ElementDocType.ID, []byte("matroska"))))
}
