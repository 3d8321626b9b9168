package meta

import "strings"

// Threat is the privacy sensitivity of a tag
type Threat string

// Threat levels, most sensitive first
const (
	ThreatCritical Threat = "critical"
	ThreatWarning  Threat = "warning"
	ThreatSafe     Threat = "safe"
)

// Rank orders threats for reporting: critical 0, warning 1, safe 2.
func (t Threat) Rank() int {
	switch t {
	case ThreatCritical:
		return 0
	case ThreatWarning:
		return 1
	}
	return 2
}

// Policy holds the substring markers that classify tag names. Build it once
// at startup and pass it to whatever classifies; it is never mutated.
type Policy struct {
	Critical []string
	Warning  []string
}

// DefaultPolicy returns the built-in markers. GPS position, device serials
// and personal identity are critical; device identifiers and capture times
// are warnings.
func DefaultPolicy() Policy {
	return Policy{
		Critical: []string{
			"GPSInfo", "GPSLatitude", "GPSLongitude", "GPSAltitude",
			"GPSLatitudeRef", "GPSLongitudeRef", "GPSDateStamp", "GPSImgDirection",
			"GPSDestLatitude", "GPSDestLongitude",
			"SerialNumber", "LensSerialNumber", "CameraSerialNumber",
			"OwnerName", "Artist", "Copyright",
		},
		Warning: []string{
			"Make", "Model", "LensModel", "Software",
			"DateTime", "DateTimeOriginal", "DateTimeDigitized",
			"ModifyDate", "CreateDate",
		},
	}
}

// Classify returns the threat of a tag name. A marker matches when it is a
// case-sensitive substring of name; critical markers are checked first.
func (p Policy) Classify(name string) Threat {
	if containsAny(name, p.Critical) {
		return ThreatCritical
	}
	if containsAny(name, p.Warning) {
		return ThreatWarning
	}
	return ThreatSafe
}

func containsAny(name string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}
