package tags

import (
	"fmt"
	"sort"
)

// Namespaces of the two identifier spaces an EXIF block uses.
const (
	NamespaceExif = "EXIF" // IFD0 plus the merged Exif sub-IFD
	NamespaceGPS  = "GPS"  // GPS sub-IFD
)

// TagDef represents a metadata tag definition
type TagDef struct {
	ID     string // Tag identifier as "0x%04X"
	Name   string // Human-readable name
	Format string // Writable format from the source table (e.g. "int16u", "string")
}

// TagTable represents tags from a single ExifTool module/table
type TagTable struct {
	ModuleName string            // e.g. "Exif", "GPS"
	Tags       map[string]TagDef // Tag ID -> definition
}

// Key formats a numeric tag identifier the way the tables are keyed.
func Key(id uint16) string {
	return fmt.Sprintf("0x%04X", id)
}

// GetTag retrieves a tag definition by namespace and ID
func GetTag(namespace, id string) (TagDef, bool) {
	if table, ok := AllTags[namespace]; ok {
		tag, found := table.Tags[id]
		return tag, found
	}
	return TagDef{}, false
}

// Lookup retrieves a tag definition by namespace and numeric ID.
func Lookup(namespace string, id uint16) (TagDef, bool) {
	return GetTag(namespace, Key(id))
}

// Resolve returns the name of a tag. Identifiers missing from the table get
// a placeholder embedding the decimal id, so distinct unknown ids never
// collapse onto the same name.
func Resolve(namespace string, id uint16) string {
	if tag, ok := Lookup(namespace, id); ok && tag.Name != "" {
		return tag.Name
	}
	return fmt.Sprintf("Unknown_%d", id)
}

// Sorted returns the definitions of a namespace ordered by identifier.
func Sorted(namespace string) []TagDef {
	table, ok := AllTags[namespace]
	if !ok {
		return nil
	}
	defs := make([]TagDef, 0, len(table.Tags))
	for _, def := range table.Tags {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}
