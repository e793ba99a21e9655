package fragment

import (
	"bytes"
	"testing"

	watebml "github.com/at-wat/ebml-go"
)

// Realistic KVS fragment fixtures, marshaled with at-wat/ebml-go. The
// struct shapes mirror the container KVS GetMedia actually emits: EBML
// header, then an unknown-size Segment with Info, Tracks, Cluster, Tags.

type fixtureHeader struct {
	EBMLVersion            uint64
	EBMLReadVersion        uint64
	EBMLMaxIDLength        uint64
	EBMLMaxSizeLength      uint64
	EBMLDocType            string
	EBMLDocTypeVersion     uint64
	EBMLDocTypeReadVersion uint64
}

type fixtureInfo struct {
	TimecodeScale uint64
	MuxingApp     string
	WritingApp    string
}

type fixtureTrackEntry struct {
	Name        string
	TrackNumber uint64
	TrackUID    uint64
}

type fixtureTracks struct {
	TrackEntry []fixtureTrackEntry
}

type fixtureCluster struct {
	Timecode    uint64
	SimpleBlock []watebml.Block
}

type fixtureSimpleTag struct {
	TagName   string
	TagString string `ebml:",omitempty"`
}

type fixtureTag struct {
	SimpleTag []fixtureSimpleTag
}

type fixtureTags struct {
	Tag []fixtureTag
}

type fixtureSegment struct {
	Info    fixtureInfo
	Tracks  fixtureTracks
	Cluster fixtureCluster
	Tags    fixtureTags
}

type fixtureContainer struct {
	Header  fixtureHeader  `ebml:"EBML"`
	Segment fixtureSegment `ebml:",size=unknown"`
}

func defaultHeader() fixtureHeader {
	return fixtureHeader{
		EBMLVersion:            1,
		EBMLReadVersion:        1,
		EBMLMaxIDLength:        4,
		EBMLMaxSizeLength:      8,
		EBMLDocType:            "matroska",
		EBMLDocTypeVersion:     2,
		EBMLDocTypeReadVersion: 2,
	}
}

func connectTracks(from, to uint64) fixtureTracks {
	return fixtureTracks{TrackEntry: []fixtureTrackEntry{
		{Name: TrackNameFromCustomer, TrackNumber: from, TrackUID: 10},
		{Name: TrackNameToCustomer, TrackNumber: to, TrackUID: 20},
	}}
}

func simpleBlock(track uint64, timecode int16, payload []byte) watebml.Block {
	return watebml.Block{
		TrackNumber: track,
		Timecode:    timecode,
		Keyframe:    true,
		Data:        [][]byte{payload},
	}
}

func kvsTags() fixtureTags {
	return fixtureTags{Tag: []fixtureTag{{SimpleTag: []fixtureSimpleTag{
		{TagName: TagContinuationToken, TagString: "91343852333181432392682062972817690621"},
		{TagName: TagMillisBehindNow, TagString: "0"},
		{TagName: TagProducerTimestamp, TagString: "1693216800.500"},
		{TagName: TagServerTimestamp, TagString: "1693216800.734"},
	}}}}
}

func marshalFragment(t *testing.T, c fixtureContainer) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := watebml.Marshal(&c, &buf); err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return buf.Bytes()
}

// kvsFragment is a complete two-track fragment with audio in both
// directions and the well-known KVS tags.
func kvsFragment(t *testing.T, from, to uint64) []byte {
	t.Helper()
	return marshalFragment(t, fixtureContainer{
		Header: defaultHeader(),
		Segment: fixtureSegment{
			Info:   fixtureInfo{TimecodeScale: 1000000, MuxingApp: "kvssink", WritingApp: "kvssink"},
			Tracks: connectTracks(from, to),
			Cluster: fixtureCluster{
				Timecode: 0,
				SimpleBlock: []watebml.Block{
					simpleBlock(from, 0, []byte{0x01, 0x02, 0x03, 0x04}),
					simpleBlock(to, 0, []byte{0x11, 0x12, 0x13, 0x14}),
					simpleBlock(from, 20, []byte{0x05, 0x06}),
					simpleBlock(to, 20, []byte{0x15, 0x16}),
				},
			},
			Tags: kvsTags(),
		},
	})
}
