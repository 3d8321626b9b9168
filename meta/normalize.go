package meta

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"greg-hacke/stripclean/exif"
)

// BinaryPlaceholder stands in for byte values that do not decode to text
const BinaryPlaceholder = "<binary data>"

// Normalized is the display form of a raw tag value. Fallback is set when
// the raw value could not be rendered and Text holds a placeholder.
type Normalized struct {
	Text     string
	Fallback bool
}

// dropIllFormed removes bytes that are not valid UTF-8
var dropIllFormed = runes.Remove(runes.Predicate(func(r rune) bool {
	return r == utf8.RuneError
}))

// Normalize converts a decoded tag value to a display string. It never fails:
// values that cannot be rendered come back as a Fallback placeholder.
func Normalize(v any) Normalized {
	switch x := v.(type) {
	case []byte:
		return decodeBytes(x)
	case string:
		return Normalized{Text: x}
	case *exif.IFD:
		return Normalized{Text: formatIFD(x)}
	case []int:
		return Normalized{Text: formatList(x, strconv.Itoa)}
	case exif.Rational:
		return Normalized{Text: formatRational(x)}
	case []exif.Rational:
		return Normalized{Text: formatList(x, formatRational)}
	case []float64:
		return Normalized{Text: formatList(x, formatFloat)}
	case []string:
		return Normalized{Text: formatList(x, func(s string) string { return s })}
	case float64:
		return Normalized{Text: formatFloat(x)}
	case nil:
		return Normalized{Text: "None"}
	default:
		return Normalized{Text: fmt.Sprint(x)}
	}
}

// decodeBytes decodes b as UTF-8, dropping what does not decode
func decodeBytes(b []byte) Normalized {
	text, _, err := transform.Bytes(dropIllFormed, b)
	if err != nil || (len(b) > 0 && len(text) == 0) {
		return Normalized{Text: BinaryPlaceholder, Fallback: true}
	}
	return Normalized{Text: string(text)}
}

// formatList renders a sequence as a list of quoted strings: ['a', 'b']
func formatList[T any](vals []T, str func(T) string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = quote(str(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatIFD renders a nested mapping as {id: value, ...} in decoder order
func formatIFD(d *exif.IFD) string {
	if d == nil {
		return "{}"
	}
	parts := make([]string, 0, d.Len())
	for _, e := range d.Entries {
		n := Normalize(e.Value)
		text := n.Text
		switch e.Value.(type) {
		case string, []byte:
			if !n.Fallback {
				text = quote(text)
			}
		}
		parts = append(parts, fmt.Sprintf("%d: %s", e.ID, text))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// quote wraps s in single quotes, or double quotes when s holds only single ones
func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// formatRational prints the rational's float value; a zero denominator is nan
func formatRational(r exif.Rational) string {
	f, ok := r.Float()
	if !ok {
		return "nan"
	}
	return formatFloat(f)
}

// formatFloat prints whole numbers with a trailing .0
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
