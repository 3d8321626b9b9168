package meta

import (
	"fmt"
	"sort"

	"greg-hacke/stripclean/exif"
	"greg-hacke/stripclean/formats"
	"greg-hacke/stripclean/tags"
)

// BasicInfo describes the image itself, taken from its header
type BasicInfo struct {
	Format string `json:"format"`
	Size   string `json:"size"`
	Mode   string `json:"mode"`
}

// DisplayTag is one classified tag as shown to callers
type DisplayTag struct {
	Tag    string `json:"tag"`
	Value  string `json:"value"`
	Threat Threat `json:"threat"`

	// Placeholder is set when Value stands in for a value that could not be rendered
	Placeholder bool `json:"-"`
}

// Summary counts tags per threat level
type Summary struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Safe     int `json:"safe"`
}

// Total returns the number of counted tags
func (s Summary) Total() int {
	return s.Critical + s.Warning + s.Safe
}

// Report is the privacy report for one image
type Report struct {
	BasicInfo BasicInfo    `json:"basic_info"`
	Metadata  []DisplayTag `json:"metadata"`
	Summary   Summary      `json:"summary"`
	Location  *Coordinate  `json:"location,omitempty"`
}

// Assemble builds the report: one DisplayTag per entry, ordered critical,
// warning, safe, keeping decoder order within each level.
func Assemble(header formats.Header, entries []exif.Entry, policy Policy) *Report {
	format := string(header.Format)
	if format == "" {
		format = "Unknown"
	}

	report := &Report{
		BasicInfo: BasicInfo{
			Format: format,
			Size:   fmt.Sprintf("%d×%d", header.Width, header.Height),
			Mode:   header.Mode,
		},
		Metadata: make([]DisplayTag, 0, len(entries)),
	}

	for _, e := range entries {
		name := tags.Resolve(tags.NamespaceExif, e.ID)
		threat := policy.Classify(name)
		value := Normalize(e.Value)
		report.Metadata = append(report.Metadata, DisplayTag{
			Tag:         name,
			Value:       value.Text,
			Threat:      threat,
			Placeholder: value.Fallback,
		})

		switch threat {
		case ThreatCritical:
			report.Summary.Critical++
		case ThreatWarning:
			report.Summary.Warning++
		default:
			report.Summary.Safe++
		}

		if gps, ok := e.Value.(*exif.IFD); ok && e.ID == exif.TagGPSIFD {
			if c := Coordinates(ResolveGPS(gps)); !c.Empty() {
				report.Location = &c
			}
		}
	}

	sort.SliceStable(report.Metadata, func(i, j int) bool {
		return report.Metadata[i].Threat.Rank() < report.Metadata[j].Threat.Rank()
	})

	return report
}
