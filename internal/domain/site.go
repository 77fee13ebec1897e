package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// NewDamageSite constructs a DamageSite with its derived fields filled
// in: the deterministic ID and the severity label. Severity values
// outside 1-3 are clamped into range.
func NewDamageSite(name string, geo Geo, coast Coast, severity int, condition, impact string) DamageSite {
	if severity < 1 {
		severity = 1
	}
	if severity > 3 {
		severity = 3
	}
	return DamageSite{
		ID:            siteID(name, geo),
		Name:          name,
		Geo:           geo,
		Coast:         coast,
		Severity:      severity,
		SeverityLabel: severityLabel(severity),
		Condition:     condition,
		Impact:        impact,
	}
}

// siteID produces a deterministic ID from the site's name and position.
// Regenerating the compiled-in table always yields the same IDs, so
// downstream consumers can key on them safely.
func siteID(name string, geo Geo) string {
	input := fmt.Sprintf("%s|%.4f|%.4f", name, geo.Lat, geo.Lon)
	hash := sha256.Sum256([]byte(input))
	return "site-" + hex.EncodeToString(hash[:8])
}

// severityLabel maps the three-level damage scale to its label.
func severityLabel(severity int) string {
	switch severity {
	case 3:
		return "severe"
	case 2:
		return "warning"
	default:
		return "advisory"
	}
}
