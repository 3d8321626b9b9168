package parser

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"sort"
	"strings"
)

// GenerateTable writes table as a gofmt'ed source file of package tags.
func GenerateTable(table *TagTable, w io.Writer) error {
	varName := VarName(table.ModuleName + "::Main")

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by gen-tags. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package tags\n\n")
	fmt.Fprintf(&buf, "// %s contains tag definitions from %s\n", varName, table.PackageName)
	fmt.Fprintf(&buf, "var %s = TagTable{\n", varName)
	fmt.Fprintf(&buf, "\tModuleName: %q,\n", table.ModuleName)
	fmt.Fprintf(&buf, "\tTags: map[string]TagDef{\n")

	ids := make([]string, 0, len(table.Tags))
	for id := range table.Tags {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		tag := table.Tags[id]
		fmt.Fprintf(&buf, "\t\t%q: {ID: %q, Name: %q", id, tag.ID, tag.Name)
		if tag.Format != "" {
			fmt.Fprintf(&buf, ", Format: %q", tag.Format)
		}
		buf.WriteString("},\n")
	}

	buf.WriteString("\t},\n}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// FileName returns the generated file name for a module, e.g. "gps_main.go".
func FileName(moduleName string) string {
	return strings.ToLower(moduleName) + "_main.go"
}

// VarName generates the variable name for a table name
// e.g. "GPS::Main" -> "GPS_Main_Tags"
func VarName(tableName string) string {
	parts := strings.Split(tableName, "::")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		result = append(result, strings.ToUpper(part[:1])+part[1:])
	}
	return strings.Join(result, "_") + "_Tags"
}
