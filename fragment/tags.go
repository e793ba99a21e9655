package fragment

import "github.com/heushreck/kvsaudio/ebml"

// Well-known KVS tag names. KVS sets these on every fragment; the
// extractor does not require them, they are listed for callers.
const (
	TagContinuationToken = "AWS_KINESISVIDEO_CONTINUATION_TOKEN"
	TagMillisBehindNow   = "AWS_KINESISVIDEO_MILLIS_BEHIND_NOW"
	TagProducerTimestamp = "AWS_KINESISVIDEO_PRODUCER_TIMESTAMP"
	TagServerTimestamp   = "AWS_KINESISVIDEO_SERVER_TIMESTAMP"
)

// TagValue is the value of one SimpleTag. The format makes TagString and
// TagBinary mutually exclusive, so at most one of the fields is set.
type TagValue struct {
	Text   string
	Binary []byte
}

// Tags maps tag names to their values, in fragment traversal order with
// later duplicates overwriting earlier ones.
type Tags map[string]TagValue

// Get returns the text value of the named tag, or "" if absent.
func (t Tags) Get(name string) string {
	return t[name].Text
}

// ExtractTags collects every SimpleTag of the fragment into a map.
// A fragment without a Tags element yields an empty map; a SimpleTag
// without a resolvable TagName is dropped. Returns ErrMissingSegment if
// the fragment has no Segment element.
func ExtractTags(doc *ebml.Document) (Tags, error) {
	seg, err := segment(doc)
	if err != nil {
		return nil, err
	}

	tags := Tags{}
	for _, el := range seg.Children {
		if el.ID != ebml.ElementTags.ID {
			continue
		}
		for _, tag := range el.Children {
			if tag.ID != ebml.ElementTag.ID {
				continue
			}
			for _, st := range tag.Children {
				if st.ID != ebml.ElementSimpleTag.ID {
					continue
				}
				if name, value, ok := simpleTag(st); ok {
					tags[name] = value
				}
			}
		}
	}

	return tags, nil
}

func simpleTag(st *ebml.Element) (string, TagValue, bool) {
	var name string
	var value TagValue

	for _, el := range st.Children {
		switch el.ID {
		case ebml.ElementTagName.ID:
			name = el.Text()
		case ebml.ElementTagString.ID:
			value = TagValue{Text: el.Text()}
		case ebml.ElementTagBinary.ID:
			value = TagValue{Binary: el.Content}
		}
	}

	return name, value, name != ""
}
