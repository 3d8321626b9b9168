package clean

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

	// NFKD then drop what is left outside ASCII
	asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))

	windowsDevices = map[string]bool{
		"CON": true, "PRN": true, "AUX": true, "NUL": true,
		"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
		"COM6": true, "COM7": true, "COM8": true, "COM9": true,
		"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
		"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
	}
)

// SafeFilename reduces an uploaded file name to something safe to put in a
// path or header: ASCII only, no separators, whitespace as underscores.
// The result may be empty.
func SafeFilename(name string) string {
	folded, _, err := transform.String(asciiFold, name)
	if err != nil {
		return ""
	}

	folded = strings.NewReplacer("/", " ", `\`, " ").Replace(folded)
	folded = strings.Join(strings.Fields(folded), "_")
	folded = unsafeChars.ReplaceAllString(folded, "")
	folded = strings.Trim(folded, "._")

	if folded != "" && windowsDevices[strings.ToUpper(strings.SplitN(folded, ".", 2)[0])] {
		folded = "_" + folded
	}
	return folded
}
