package domain

import (
	"fmt"
	"strings"
)

// Band is a bit set of radio bands.
type Band uint8

const (
	// BandUnspecified means an explicit frequency list is used instead of a band.
	BandUnspecified Band = 0
	// Band24GHz is the 2.4 GHz band.
	Band24GHz Band = 1 << 0
	// Band5GHz is the 5 GHz band without DFS channels.
	Band5GHz Band = 1 << 1
	// Band5GHzDFS is the DFS-only part of the 5 GHz band.
	Band5GHzDFS Band = 1 << 2

	Band5GHzWithDFS = Band5GHz | Band5GHzDFS
	BandBoth        = Band24GHz | Band5GHz
	BandBothWithDFS = Band24GHz | Band5GHz | Band5GHzDFS
)

var bandNames = map[Band]string{ //nolint: gochecknoglobals
	BandUnspecified: "unspecified",
	Band24GHz:       "24ghz",
	Band5GHz:        "5ghz",
	Band5GHzDFS:     "5ghz-dfs",
	Band5GHzWithDFS: "5ghz-with-dfs",
	BandBoth:        "both",
	BandBothWithDFS: "both-with-dfs",
}

func (b Band) String() string {
	if name, ok := bandNames[b]; ok {
		return name
	}

	return fmt.Sprintf("band(%d)", uint8(b))
}

// ParseBand converts a band name as produced by Band.String back into a Band.
func ParseBand(s string) (Band, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for b, name := range bandNames {
		if name == s {
			return b, nil
		}
	}

	return BandUnspecified, fmt.Errorf("unknown band %q", s)
}

// ChannelSpec selects what to scan: either a band or, when Band is
// BandUnspecified, an explicit list of frequencies in MHz.
type ChannelSpec struct {
	Band        Band
	Frequencies []int
}

// IsEmpty reports whether the spec selects nothing at all.
func (c ChannelSpec) IsEmpty() bool {
	return c.Band == BandUnspecified && len(c.Frequencies) == 0
}
