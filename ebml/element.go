package ebml

// Element is a Matroska/WebM/EBML element inside one fragment.
//
// Master elements carry their ordered Children and no Content. All other
// elements carry Content, a subslice of the fragment buffer the tree was
// parsed from. Offset and Size address the same content relative to that
// buffer. Elements are immutable once parsed.
type Element struct {
	ElementRegister

	Offset   int
	Size     int
	Content  []byte
	Children []*Element
}

// FindID returns the first direct child with the given element ID,
// or nil if the element has no such child.
func (el *Element) FindID(id uint32) *Element {
	for _, c := range el.Children {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Uint decodes the element content as a big-endian unsigned integer.
func (el *Element) Uint() uint64 {
	return pack(len(el.Content), el.Content)
}

// Text decodes the element content as a string. Matroska permits zero
// padding at the end of string elements, so trailing NUL bytes are
// stripped before comparison-sensitive uses such as track name matching.
func (el *Element) Text() string {
	b := el.Content
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return string(b)
}

// Document represents one parsed MKV/WebM fragment.
type Document struct {
	Elements []*Element // top level elements in fragment order
}

// FindID returns the first top level element with the given element ID,
// or nil if the fragment has no such element.
func (doc *Document) FindID(id uint32) *Element {
	for _, el := range doc.Elements {
		if el.ID == id {
			return el
		}
	}
	return nil
}

func pack(n int, b []byte) uint64 {
	var v uint64

	for i := 0; i < n; i++ {
		v = v<<8 | uint64(b[i])
	}

	return v
}
