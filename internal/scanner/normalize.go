package scanner

import (
	"fmt"
	"net"

	"wifiscan/pkg/domain"
	"wifiscan/pkg/serrors"
)

const bssidLen = 6

// NormalizeBSSID returns the canonical lower-case, colon separated form of a
// BSSID.
//
// Any notation accepted by net.ParseMAC is allowed (colons, hyphens or
// dotted groups of four hex digits), but only 48-bit addresses are valid
// access point identifiers.
func NormalizeBSSID(raw string) (string, error) {
	mac, err := net.ParseMAC(raw)
	if err != nil {
		return "", fmt.Errorf("could not parse BSSID: %w", err)
	}
	if len(mac) != bssidLen {
		return "", fmt.Errorf("BSSID %q is not a 48-bit address", raw)
	}

	return mac.String(), nil
}

// normalizeHotlist validates settings and returns a copy whose BSSIDs are
// in canonical form. The same network listed twice is rejected.
func normalizeHotlist(settings domain.HotlistSettings) (domain.HotlistSettings, error) {
	if len(settings.Networks) == 0 {
		return settings, serrors.With(serrors.ErrInvalidArgument, "hotlist has no networks")
	}
	if settings.MinEvents < 0 {
		return settings, serrors.With(serrors.ErrInvalidArgument, "negative minimum events")
	}
	if settings.LostThreshold < 0 {
		return settings, serrors.With(serrors.ErrInvalidArgument, "negative lost threshold")
	}

	seen := make(map[string]struct{}, len(settings.Networks))
	networks := make([]domain.HotlistNetwork, 0, len(settings.Networks))
	for _, n := range settings.Networks {
		bssid, err := NormalizeBSSID(n.BSSID)
		if err != nil {
			return settings, serrors.Wrap(serrors.ErrInvalidArgument, err, "invalid hotlist network")
		}
		if _, ok := seen[bssid]; ok {
			return settings, serrors.With(serrors.ErrInvalidArgument, "duplicate hotlist network %s", bssid)
		}
		seen[bssid] = struct{}{}
		networks = append(networks, domain.HotlistNetwork{BSSID: bssid, Low: n.Low})
	}
	settings.Networks = networks

	return settings, nil
}
