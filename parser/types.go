// Package parser extracts tag tables from ExifTool Perl modules and renders
// them as Go source for the tags package.
package parser

// TagTable represents the Main tag table of a single PM module
type TagTable struct {
	ModuleName  string             // e.g. "Exif", "GPS"
	PackageName string             // Full Perl package name
	Tags        map[string]*TagDef // Tag ID -> definition
}

// TagDef represents a single tag definition
type TagDef struct {
	ID     string // Tag ID as "0x%04X"
	Name   string // Human-readable name
	Format string // Writable format, or the read format when not writable
}
