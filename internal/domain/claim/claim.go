// Package claim defines the closed set of listening-history claims the
// oracle can verify and the time-range enumeration shared by the "top N"
// claims.
package claim

import "fmt"

// Function discriminator values. These are an external contract with the
// calling circuit and must not change.
const (
	FuncTopTracks           = "can_claim_top_tracks"
	FuncTopArtists          = "can_claim_top_artists"
	FuncRecentlyPlayedTrack = "can_claim_recently_played_track"
)

// Kind identifies one of the supported claim verifications.
type Kind int

const (
	// KindUnknown is the zero value; no handler exists for it.
	KindUnknown Kind = iota
	KindTopTracks
	KindTopArtists
	KindRecentlyPlayedTrack
)

// KindFromFunction maps a function discriminator string to its Kind.
// The boolean is false for any string outside the closed set.
func KindFromFunction(fn string) (Kind, bool) {
	switch fn {
	case FuncTopTracks:
		return KindTopTracks, true
	case FuncTopArtists:
		return KindTopArtists, true
	case FuncRecentlyPlayedTrack:
		return KindRecentlyPlayedTrack, true
	default:
		return KindUnknown, false
	}
}

// String returns the wire-level function name for k.
func (k Kind) String() string {
	switch k {
	case KindTopTracks:
		return FuncTopTracks
	case KindTopArtists:
		return FuncTopArtists
	case KindRecentlyPlayedTrack:
		return FuncRecentlyPlayedTrack
	default:
		return "unknown"
	}
}

// TimeRange is the closed enumeration of historical windows supported by
// the top-tracks and top-artists claims. There is no tolerated "unknown"
// member: an unrecognized byte is a hard error.
type TimeRange uint8

const (
	ShortTerm TimeRange = iota
	MediumTerm
	LongTerm
)

// TimeRangeFromByte maps a decoded range byte to its TimeRange member.
func TimeRangeFromByte(b uint8) (TimeRange, error) {
	switch b {
	case 0:
		return ShortTerm, nil
	case 1:
		return MediumTerm, nil
	case 2:
		return LongTerm, nil
	default:
		return 0, fmt.Errorf("invalid time range: %d", b)
	}
}

// String returns the upstream API's query-parameter spelling.
func (t TimeRange) String() string {
	switch t {
	case ShortTerm:
		return "short_term"
	case MediumTerm:
		return "medium_term"
	case LongTerm:
		return "long_term"
	default:
		return "short_term"
	}
}
