package fragment

import (
	"log/slog"

	"github.com/heushreck/kvsaudio/ebml"
)

// Track names Amazon Connect assigns to the two audio directions of a
// contact. Matching is exact and case sensitive.
const (
	TrackNameFromCustomer = "AUDIO_FROM_CUSTOMER"
	TrackNameToCustomer   = "AUDIO_TO_CUSTOMER"
)

// Fallback track numbers used when the fragment does not name its tracks.
const (
	fallbackFromCustomer = 1
	fallbackToCustomer   = 2
)

// AudioTracks holds the resolved track numbers for the two audio roles.
type AudioTracks struct {
	FromCustomer uint64
	ToCustomer   uint64
}

// ResolveAudioTracks reads the fragment's track definitions and resolves
// the AUDIO_FROM_CUSTOMER and AUDIO_TO_CUSTOMER track numbers. Track
// definitions are stable for the lifetime of a stream, so callers may
// resolve once and reuse the result across fragments.
//
// When either role is missing the resolver logs one warning through log
// and substitutes the conventional numbers 1 and 2. This is degraded-mode
// recovery, not an error. Returns ErrMissingSegment if the fragment has
// no Segment element.
func ResolveAudioTracks(doc *ebml.Document, log *slog.Logger) (AudioTracks, error) {
	seg, err := segment(doc)
	if err != nil {
		return AudioTracks{}, err
	}
	if log == nil {
		log = slog.Default()
	}

	var tracks AudioTracks
	for _, el := range seg.Children {
		if el.ID != ebml.ElementTracks.ID {
			continue
		}
		for _, entry := range el.Children {
			if entry.ID != ebml.ElementTrackEntry.ID {
				continue
			}
			name, number := trackEntry(entry)
			switch name {
			case TrackNameFromCustomer:
				tracks.FromCustomer = number
			case TrackNameToCustomer:
				tracks.ToCustomer = number
			}
		}
	}

	if tracks.FromCustomer == 0 || tracks.ToCustomer == 0 {
		log.Warn("audio tracks not named in fragment, using fallback numbers",
			"from_customer", fallbackFromCustomer,
			"to_customer", fallbackToCustomer)
		tracks.FromCustomer = fallbackFromCustomer
		tracks.ToCustomer = fallbackToCustomer
	}

	return tracks, nil
}

func trackEntry(entry *ebml.Element) (string, uint64) {
	var name string
	var number uint64

	for _, el := range entry.Children {
		switch el.ID {
		case ebml.ElementName.ID:
			name = el.Text()
		case ebml.ElementTrackNumber.ID:
			number = el.Uint()
		}
	}

	return name, number
}
