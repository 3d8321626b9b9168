package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"greg-hacke/stripclean/meta"
)

// maxValueLen bounds values printed in the tag table
const maxValueLen = 100

// fileReport is one analyzed file, as printed or emitted as JSON
type fileReport struct {
	File   string       `json:"file"`
	Size   int64        `json:"size"`
	Report *meta.Report `json:"report,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type palette struct {
	critical, warning, safe, heading *color.Color
}

func newPalette(colorize bool) palette {
	p := palette{
		critical: color.New(color.FgRed, color.Bold),
		warning:  color.New(color.FgYellow),
		safe:     color.New(color.FgGreen),
		heading:  color.New(color.FgBlue, color.Bold),
	}
	for _, c := range []*color.Color{p.critical, p.warning, p.safe, p.heading} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) threat(t meta.Threat) string {
	label := strings.ToUpper(string(t))
	switch t {
	case meta.ThreatCritical:
		return p.critical.Sprint(label)
	case meta.ThreatWarning:
		return p.warning.Sprint(label)
	}
	return p.safe.Sprint(label)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// truncate shortens long values for display
func truncate(s string) string {
	if len(s) <= maxValueLen {
		return s
	}
	cut := maxValueLen
	// Don't split a UTF-8 sequence
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut] + "... (truncated)"
}

func renderFileReport(w io.Writer, fr fileReport, colorize bool) {
	p := newPalette(colorize)

	heading := fmt.Sprintf("== %s ==", fr.File)
	fmt.Fprintln(w, p.heading.Sprint(heading))
	if fr.Error != "" {
		fmt.Fprintf(w, "  error: %s\n\n", fr.Error)
		return
	}

	r := fr.Report
	fmt.Fprintf(w, "  File size: %s\n", humanize.Bytes(uint64(fr.Size)))
	fmt.Fprintf(w, "  Format:    %s\n", r.BasicInfo.Format)
	fmt.Fprintf(w, "  Size:      %s\n", r.BasicInfo.Size)
	fmt.Fprintf(w, "  Mode:      %s\n", r.BasicInfo.Mode)

	if len(r.Metadata) == 0 {
		fmt.Fprintln(w, "\n  No EXIF metadata found.")
		fmt.Fprintln(w)
		return
	}

	reportColumns := []column{{title: "Threat"}, {title: "Tag"}, {title: "Value"}}
	rows := make([][]string, 0, len(r.Metadata))
	for _, tag := range r.Metadata {
		rows = append(rows, []string{p.threat(tag.Threat), tag.Tag, truncate(tag.Value)})
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, renderTable(reportColumns, rows))

	fmt.Fprintf(w, "  %s critical, %s warning, %s safe\n",
		p.critical.Sprint(r.Summary.Critical),
		p.warning.Sprint(r.Summary.Warning),
		p.safe.Sprint(r.Summary.Safe))

	if loc := r.Location; loc != nil {
		if loc.Latitude != nil && loc.Longitude != nil {
			fmt.Fprintf(w, "  Location:  %.6f, %.6f\n", *loc.Latitude, *loc.Longitude)
		}
		if loc.Altitude != nil {
			fmt.Fprintf(w, "  Altitude:  %.1f m\n", *loc.Altitude)
		}
		fmt.Fprintln(w, p.critical.Sprint("  WARNING: this image reveals where it was taken. Strip its metadata before sharing."))
	} else if r.Summary.Critical > 0 {
		fmt.Fprintln(w, p.critical.Sprint("  WARNING: this image carries personal or device-identifying metadata."))
	}
	fmt.Fprintln(w)
}
