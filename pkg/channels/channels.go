// Package channels resolves bands and explicit frequency lists into concrete
// sets of frequencies and builds channel-limit-aware bucket descriptors.
package channels

import (
	"slices"

	"wifiscan/pkg/domain"
)

var (
	band24GHz = []int{ //nolint: gochecknoglobals
		2412, 2417, 2422, 2427, 2432, 2437, 2442, 2447, 2452, 2457, 2462, 2467, 2472,
	}
	band5GHz = []int{ //nolint: gochecknoglobals
		5180, 5200, 5220, 5240, 5745, 5765, 5785, 5805, 5825,
	}
	band5GHzDFS = []int{ //nolint: gochecknoglobals
		5260, 5280, 5300, 5320, 5500, 5520, 5540, 5560, 5580, 5600, 5620, 5640, 5660, 5680, 5700, 5720,
	}
)

// BandFrequencies returns all known frequencies of the given band set in
// ascending order.
func BandFrequencies(band domain.Band) []int {
	var out []int
	if band&domain.Band24GHz != 0 {
		out = append(out, band24GHz...)
	}
	if band&domain.Band5GHz != 0 {
		out = append(out, band5GHz...)
	}
	if band&domain.Band5GHzDFS != 0 {
		out = append(out, band5GHzDFS...)
	}
	slices.Sort(out)

	return out
}

// BandOf returns the single band a frequency belongs to, or
// domain.BandUnspecified for frequencies outside the known tables.
func BandOf(freq int) domain.Band {
	switch {
	case slices.Contains(band24GHz, freq):
		return domain.Band24GHz
	case slices.Contains(band5GHz, freq):
		return domain.Band5GHz
	case slices.Contains(band5GHzDFS, freq):
		return domain.Band5GHzDFS
	default:
		return domain.BandUnspecified
	}
}

// Collection accumulates channels from bands and explicit frequencies.
// The zero value is not usable; use New.
type Collection struct {
	freqs map[int]struct{}
	// exactBands are bands added as a whole.
	exactBands domain.Band
	// allBands are bands touched by any added channel.
	allBands domain.Band
}

// New returns an empty Collection.
func New() *Collection {
	return &Collection{freqs: make(map[int]struct{})}
}

// AddFrequency adds a single frequency.
func (c *Collection) AddFrequency(freq int) {
	c.freqs[freq] = struct{}{}
	c.allBands |= BandOf(freq)
}

// AddBand adds every frequency of band.
func (c *Collection) AddBand(band domain.Band) {
	c.exactBands |= band
	c.allBands |= band
	for _, f := range BandFrequencies(band) {
		c.freqs[f] = struct{}{}
	}
}

// AddSpec adds the channels selected by spec.
func (c *Collection) AddSpec(spec domain.ChannelSpec) {
	if spec.Band != domain.BandUnspecified {
		c.AddBand(spec.Band)

		return
	}
	for _, f := range spec.Frequencies {
		c.AddFrequency(f)
	}
}

// Contains reports whether freq is part of the collection.
func (c *Collection) Contains(freq int) bool {
	_, ok := c.freqs[freq]

	return ok
}

// IsEmpty reports whether no channel has been added.
func (c *Collection) IsEmpty() bool { return len(c.freqs) == 0 }

// Len returns the number of distinct frequencies.
func (c *Collection) Len() int { return len(c.freqs) }

// Frequencies returns the collected frequencies in ascending order.
func (c *Collection) Frequencies() []int {
	out := make([]int, 0, len(c.freqs))
	for f := range c.freqs {
		out = append(out, f)
	}
	slices.Sort(out)

	return out
}

// BucketChannels describes the collection as a bucket channel spec that
// respects a per-bucket channel ceiling. When the explicit list would exceed
// maxChannels, or the collection consists of whole bands only, the covering
// band is used instead of a list. A non-positive maxChannels means no ceiling.
func (c *Collection) BucketChannels(maxChannels int) domain.ChannelSpec {
	tooMany := maxChannels > 0 && len(c.freqs) > maxChannels
	if (tooMany || c.allBands == c.exactBands) && c.allBands != domain.BandUnspecified {
		return domain.ChannelSpec{Band: c.allBands}
	}

	return domain.ChannelSpec{Frequencies: c.Frequencies()}
}

// Resolve returns the concrete frequencies selected by spec.
func Resolve(spec domain.ChannelSpec) []int {
	c := New()
	c.AddSpec(spec)

	return c.Frequencies()
}
