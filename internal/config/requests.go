package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"wifiscan/pkg/domain"
)

// RequestFile is the YAML document listing the background scan requests and
// the hotlist to install at startup.
type RequestFile struct {
	Requests []RequestEntry `yaml:"requests"`
	Hotlist  *HotlistEntry  `yaml:"hotlist"`
}

// RequestEntry is one background scan request.
type RequestEntry struct {
	Name            string        `yaml:"name"`
	Period          time.Duration `yaml:"period"`
	MaxPeriod       time.Duration `yaml:"maxPeriod"`
	StepCount       int           `yaml:"stepCount"`
	Band            string        `yaml:"band"`
	Frequencies     []int         `yaml:"frequencies"`
	ReportEvents    []string      `yaml:"reportEvents"`
	MaxBSSIDs       int           `yaml:"maxBssids"`
	MaxScansToCache int           `yaml:"maxScansToCache"`
}

// HotlistEntry lists the tracked networks.
type HotlistEntry struct {
	LostThreshold int `yaml:"lostThreshold"`
	MinEvents     int `yaml:"minEvents"`
	Networks      []struct {
		BSSID string `yaml:"bssid"`
		Low   int    `yaml:"low"`
	} `yaml:"networks"`
}

// LoadRequests reads and parses the request file at path.
func LoadRequests(path string) (*RequestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read requests file: %w", err)
	}

	var f RequestFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse requests file: %w", err)
	}

	return &f, nil
}

// ScanRequest converts the entry into a domain request with a fresh ID.
func (e RequestEntry) ScanRequest() (domain.ScanRequest, error) {
	events, err := domain.ParseReportEvents(e.ReportEvents)
	if err != nil {
		return domain.ScanRequest{}, fmt.Errorf("request %q: %w", e.Name, err)
	}

	spec := domain.ChannelSpec{Frequencies: e.Frequencies}
	if e.Band != "" {
		if spec.Band, err = domain.ParseBand(e.Band); err != nil {
			return domain.ScanRequest{}, fmt.Errorf("request %q: %w", e.Name, err)
		}
		spec.Frequencies = nil
	}

	return domain.ScanRequest{
		ID:              domain.NewRequestID(),
		Period:          e.Period,
		MaxPeriod:       e.MaxPeriod,
		StepCount:       e.StepCount,
		Channels:        spec,
		ReportEvents:    events,
		MaxBSSIDs:       e.MaxBSSIDs,
		MaxScansToCache: e.MaxScansToCache,
	}, nil
}

// ScanRequests converts every entry of the file.
func (f *RequestFile) ScanRequests() ([]domain.ScanRequest, error) {
	out := make([]domain.ScanRequest, 0, len(f.Requests))
	for _, e := range f.Requests {
		r, err := e.ScanRequest()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// HotlistSettings converts the hotlist section. ok is false when the file has none.
func (f *RequestFile) HotlistSettings() (settings domain.HotlistSettings, ok bool) {
	if f.Hotlist == nil {
		return domain.HotlistSettings{}, false
	}

	settings.LostThreshold = f.Hotlist.LostThreshold
	settings.MinEvents = f.Hotlist.MinEvents
	for _, n := range f.Hotlist.Networks {
		settings.Networks = append(settings.Networks, domain.HotlistNetwork{BSSID: n.BSSID, Low: n.Low})
	}

	return settings, true
}
