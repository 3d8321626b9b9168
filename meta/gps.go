package meta

import (
	"greg-hacke/stripclean/exif"
	"greg-hacke/stripclean/tags"
)

// GPS tag names the coordinate resolver reads
const (
	gpsLatitude     = "GPSLatitude"
	gpsLatitudeRef  = "GPSLatitudeRef"
	gpsLongitude    = "GPSLongitude"
	gpsLongitudeRef = "GPSLongitudeRef"
	gpsAltitude     = "GPSAltitude"
	gpsAltitudeRef  = "GPSAltitudeRef"
)

// Coordinate is a location reconstructed from the GPS sub-mapping. Each
// field is nil when the mapping does not yield a usable value.
type Coordinate struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

// Empty reports whether no component resolved
func (c Coordinate) Empty() bool {
	return c.Latitude == nil && c.Longitude == nil && c.Altitude == nil
}

// ResolveGPS names the entries of a GPS sub-mapping. A nil mapping gives nil.
func ResolveGPS(ifd *exif.IFD) map[string]any {
	if ifd == nil {
		return nil
	}
	named := make(map[string]any, ifd.Len())
	for _, e := range ifd.Entries {
		named[tags.Resolve(tags.NamespaceGPS, e.ID)] = e.Value
	}
	return named
}

// Coordinates converts the degree/minute/second triples of a named GPS
// mapping to signed decimal degrees.
func Coordinates(gps map[string]any) Coordinate {
	return Coordinate{
		Latitude:  axis(gps, gpsLatitude, gpsLatitudeRef, "S", "South"),
		Longitude: axis(gps, gpsLongitude, gpsLongitudeRef, "W", "West"),
		Altitude:  altitude(gps),
	}
}

// axis resolves one coordinate. It needs the triple and its reference; the
// reference negates the value when it equals one of negative.
func axis(gps map[string]any, valueKey, refKey string, negative ...string) *float64 {
	raw, ok := gps[valueKey]
	if !ok {
		return nil
	}
	ref, ok := gps[refKey]
	if !ok {
		return nil
	}

	dms, ok := raw.([]exif.Rational)
	if !ok || len(dms) < 3 {
		return nil
	}
	deg, ok1 := dms[0].Float()
	mins, ok2 := dms[1].Float()
	secs, ok3 := dms[2].Float()
	if !ok1 || !ok2 || !ok3 {
		return nil
	}

	decimal := deg + mins/60 + secs/3600
	if s, ok := ref.(string); ok {
		for _, n := range negative {
			if s == n {
				decimal = -decimal
				break
			}
		}
	}
	return &decimal
}

// altitude resolves metres above sea level; reference 1 means below.
func altitude(gps map[string]any) *float64 {
	raw, ok := gps[gpsAltitude].(exif.Rational)
	if !ok {
		return nil
	}
	alt, ok := raw.Float()
	if !ok {
		return nil
	}

	switch ref := gps[gpsAltitudeRef].(type) {
	case int:
		if ref == 1 {
			alt = -alt
		}
	case []byte:
		if len(ref) > 0 && ref[0] == 1 {
			alt = -alt
		}
	}
	return &alt
}
