package domain

import "time"

// ScanResult is a single raw observation reported by the radio.
type ScanResult struct {
	// BSSID is the hardware address of the access point.
	BSSID string
	// SSID is the advertised network name.
	SSID string
	// Frequency is the primary channel frequency in MHz.
	Frequency int
	// Level is the received signal strength in dBm.
	Level int
	// Timestamp is when the radio observed the access point.
	Timestamp time.Time
}

// ScanData is one completed scan generation.
type ScanData struct {
	// ID is the executor-assigned scan identifier.
	ID int
	// BucketsScanned is a bit mask of schedule bucket indexes that were due
	// in the cycle that produced this data. Zero means unknown.
	BucketsScanned uint32
	// Results are sorted by descending signal level.
	Results []ScanResult
}

// HotlistNetwork is a tracked identity together with its low signal threshold.
type HotlistNetwork struct {
	// BSSID is matched case-insensitively against scan results.
	BSSID string
	// Low is the signal level in dBm below which the network counts as unseen.
	Low int
}

// HotlistSettings describe the set of tracked networks and debounce parameters.
type HotlistSettings struct {
	Networks []HotlistNetwork
	// LostThreshold is the number of consecutive misses before a network is lost.
	LostThreshold int
	// MinEvents is the minimum number of pending events required to fire.
	MinEvents int
}
