package ebml

const (
	ElementTypeUnknown uint8 = 0x0
	ElementTypeMaster  uint8 = 0x1
	ElementTypeUint    uint8 = 0x2
	ElementTypeInt     uint8 = 0x3
	ElementTypeString  uint8 = 0x4
	ElementTypeUnicode uint8 = 0x5
	ElementTypeBinary  uint8 = 0x6
	ElementTypeFloat   uint8 = 0x7
	ElementTypeDate    uint8 = 0x8
)

// ElementRegister contains the ID, type and name of the standard
// WebM/Matroska elements a KVS fragment can carry.
type ElementRegister struct {
	ID   uint32
	Type uint8
	Name string
}

var (
	ElementUnknown = ElementRegister{0x0, ElementTypeUnknown, "Unknown"}

	ElementEBML               = ElementRegister{0x1a45dfa3, ElementTypeMaster, "EBML"}
	ElementEBMLVersion        = ElementRegister{0x4286, ElementTypeUint, "EBMLVersion"}
	ElementEBMLReadVersion    = ElementRegister{0x42f7, ElementTypeUint, "EBMLReadVersion"}
	ElementEBMLMaxIDLength    = ElementRegister{0x42f2, ElementTypeUint, "EBMLMaxIDLength"}
	ElementEBMLMaxSizeLength  = ElementRegister{0x42f3, ElementTypeUint, "EBMLMaxSizeLength"}
	ElementDocType            = ElementRegister{0x4282, ElementTypeString, "DocType"}
	ElementDocTypeVersion     = ElementRegister{0x4287, ElementTypeUint, "DocTypeVersion"}
	ElementDocTypeReadVersion = ElementRegister{0x4285, ElementTypeUint, "DocTypeReadVersion"}

	ElementVoid  = ElementRegister{0xec, ElementTypeBinary, "Void"}
	ElementCRC32 = ElementRegister{0xbf, ElementTypeBinary, "CRC-32"}

	ElementSegment         = ElementRegister{0x18538067, ElementTypeMaster, "Segment"}
	ElementInfo            = ElementRegister{0x1549a966, ElementTypeMaster, "Info"}
	ElementTimecodeScale   = ElementRegister{0x2ad7b1, ElementTypeUint, "TimecodeScale"}
	ElementSegmentUID      = ElementRegister{0x73a4, ElementTypeBinary, "SegmentUID"}
	ElementSegmentFilename = ElementRegister{0x7384, ElementTypeUnicode, "SegmentFilename"}
	ElementDuration        = ElementRegister{0x4489, ElementTypeFloat, "Duration"}
	ElementDateUTC         = ElementRegister{0x4461, ElementTypeDate, "DateUTC"}
	ElementTitle           = ElementRegister{0x7ba9, ElementTypeUnicode, "Title"}
	ElementMuxingApp       = ElementRegister{0x4d80, ElementTypeUnicode, "MuxingApp"}
	ElementWritingApp      = ElementRegister{0x5741, ElementTypeUnicode, "WritingApp"}

	ElementTracks                  = ElementRegister{0x1654ae6b, ElementTypeMaster, "Tracks"}
	ElementTrackEntry              = ElementRegister{0xae, ElementTypeMaster, "TrackEntry"}
	ElementTrackNumber             = ElementRegister{0xd7, ElementTypeUint, "TrackNumber"}
	ElementTrackUID                = ElementRegister{0x73c5, ElementTypeUint, "TrackUID"}
	ElementTrackType               = ElementRegister{0x83, ElementTypeUint, "TrackType"}
	ElementFlagLacing              = ElementRegister{0x9c, ElementTypeUint, "FlagLacing"}
	ElementName                    = ElementRegister{0x536e, ElementTypeUnicode, "Name"}
	ElementLanguage                = ElementRegister{0x22b59c, ElementTypeString, "Language"}
	ElementCodecID                 = ElementRegister{0x86, ElementTypeString, "CodecID"}
	ElementCodecPrivate            = ElementRegister{0x63a2, ElementTypeBinary, "CodecPrivate"}
	ElementCodecName               = ElementRegister{0x258688, ElementTypeUnicode, "CodecName"}
	ElementAudio                   = ElementRegister{0xe1, ElementTypeMaster, "Audio"}
	ElementSamplingFrequency       = ElementRegister{0xb5, ElementTypeFloat, "SamplingFrequency"}
	ElementOutputSamplingFrequency = ElementRegister{0x78b5, ElementTypeFloat, "OutputSamplingFrequency"}
	ElementChannels                = ElementRegister{0x9f, ElementTypeUint, "Channels"}
	ElementBitDepth                = ElementRegister{0x6264, ElementTypeUint, "BitDepth"}

	ElementCluster       = ElementRegister{0x1f43b675, ElementTypeMaster, "Cluster"}
	ElementTimecode      = ElementRegister{0xe7, ElementTypeUint, "Timecode"}
	ElementPosition      = ElementRegister{0xa7, ElementTypeUint, "Position"}
	ElementPrevSize      = ElementRegister{0xab, ElementTypeUint, "PrevSize"}
	ElementSimpleBlock   = ElementRegister{0xa3, ElementTypeBinary, "SimpleBlock"}
	ElementBlockGroup    = ElementRegister{0xa0, ElementTypeMaster, "BlockGroup"}
	ElementBlock         = ElementRegister{0xa1, ElementTypeBinary, "Block"}
	ElementBlockDuration = ElementRegister{0x9b, ElementTypeUint, "BlockDuration"}

	ElementTags            = ElementRegister{0x1254c367, ElementTypeMaster, "Tags"}
	ElementTag             = ElementRegister{0x7373, ElementTypeMaster, "Tag"}
	ElementTargets         = ElementRegister{0x63c0, ElementTypeMaster, "Targets"}
	ElementTargetTypeValue = ElementRegister{0x68ca, ElementTypeUint, "TargetTypeValue"}
	ElementSimpleTag       = ElementRegister{0x67c8, ElementTypeMaster, "SimpleTag"}
	ElementTagName         = ElementRegister{0x45a3, ElementTypeUnicode, "TagName"}
	ElementTagLanguage     = ElementRegister{0x447a, ElementTypeString, "TagLanguage"}
	ElementTagDefault      = ElementRegister{0x4484, ElementTypeUint, "TagDefault"}
	ElementTagString       = ElementRegister{0x4487, ElementTypeUnicode, "TagString"}
	ElementTagBinary       = ElementRegister{0x4485, ElementTypeBinary, "TagBinary"}
)

var registry = map[uint32]ElementRegister{
	ElementEBML.ID:               ElementEBML,
	ElementEBMLVersion.ID:        ElementEBMLVersion,
	ElementEBMLReadVersion.ID:    ElementEBMLReadVersion,
	ElementEBMLMaxIDLength.ID:    ElementEBMLMaxIDLength,
	ElementEBMLMaxSizeLength.ID:  ElementEBMLMaxSizeLength,
	ElementDocType.ID:            ElementDocType,
	ElementDocTypeVersion.ID:     ElementDocTypeVersion,
	ElementDocTypeReadVersion.ID: ElementDocTypeReadVersion,

	ElementVoid.ID:  ElementVoid,
	ElementCRC32.ID: ElementCRC32,

	ElementSegment.ID:         ElementSegment,
	ElementInfo.ID:            ElementInfo,
	ElementTimecodeScale.ID:   ElementTimecodeScale,
	ElementSegmentUID.ID:      ElementSegmentUID,
	ElementSegmentFilename.ID: ElementSegmentFilename,
	ElementDuration.ID:        ElementDuration,
	ElementDateUTC.ID:         ElementDateUTC,
	ElementTitle.ID:           ElementTitle,
	ElementMuxingApp.ID:       ElementMuxingApp,
	ElementWritingApp.ID:      ElementWritingApp,

	ElementTracks.ID:                  ElementTracks,
	ElementTrackEntry.ID:              ElementTrackEntry,
	ElementTrackNumber.ID:             ElementTrackNumber,
	ElementTrackUID.ID:                ElementTrackUID,
	ElementTrackType.ID:               ElementTrackType,
	ElementFlagLacing.ID:              ElementFlagLacing,
	ElementName.ID:                    ElementName,
	ElementLanguage.ID:                ElementLanguage,
	ElementCodecID.ID:                 ElementCodecID,
	ElementCodecPrivate.ID:            ElementCodecPrivate,
	ElementCodecName.ID:               ElementCodecName,
	ElementAudio.ID:                   ElementAudio,
	ElementSamplingFrequency.ID:       ElementSamplingFrequency,
	ElementOutputSamplingFrequency.ID: ElementOutputSamplingFrequency,
	ElementChannels.ID:                ElementChannels,
	ElementBitDepth.ID:                ElementBitDepth,

	ElementCluster.ID:       ElementCluster,
	ElementTimecode.ID:      ElementTimecode,
	ElementPosition.ID:      ElementPosition,
	ElementPrevSize.ID:      ElementPrevSize,
	ElementSimpleBlock.ID:   ElementSimpleBlock,
	ElementBlockGroup.ID:    ElementBlockGroup,
	ElementBlock.ID:         ElementBlock,
	ElementBlockDuration.ID: ElementBlockDuration,

	ElementTags.ID:            ElementTags,
	ElementTag.ID:             ElementTag,
	ElementTargets.ID:         ElementTargets,
	ElementTargetTypeValue.ID: ElementTargetTypeValue,
	ElementSimpleTag.ID:       ElementSimpleTag,
	ElementTagName.ID:         ElementTagName,
	ElementTagLanguage.ID:     ElementTagLanguage,
	ElementTagDefault.ID:      ElementTagDefault,
	ElementTagString.ID:       ElementTagString,
	ElementTagBinary.ID:       ElementTagBinary,
}

// GetElementRegister returns the infos concerning the provided element ID.
// IDs outside the registry resolve to ElementUnknown and are treated as
// opaque binary leaves by the parser.
func GetElementRegister(id uint32) ElementRegister {
	if reg, ok := registry[id]; ok {
		return reg
	}
	return ElementUnknown
}
