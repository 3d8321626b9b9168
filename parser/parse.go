package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoMainTable is returned when a module has no %...::Main tag table.
var ErrNoMainTable = errors.New("no Main tag table found")

var (
	tagTableRe    = regexp.MustCompile(`^\s*%([A-Za-z0-9_:]+)\s*=\s*\(`)
	tagDefStartRe = regexp.MustCompile(`^\s*0x([0-9a-fA-F]+)\s*=>\s*[\[{]`)
	tagInlineRe   = regexp.MustCompile(`^\s*0x([0-9a-fA-F]+)\s*=>\s*'([^']+)'`)
	nameRe        = regexp.MustCompile(`\bName\s*=>\s*'([^']+)'`)
	formatRe      = regexp.MustCompile(`\bFormat\s*=>\s*'([^']+)'`)
	writableRe    = regexp.MustCompile(`\bWritable\s*=>\s*'([^']+)'`)
)

// ParsePMFile parses the Main tag table of the ExifTool module at path.
// The module name is taken from the file name.
func ParsePMFile(path string) (*TagTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// e.g., .../Image/ExifTool/GPS.pm -> GPS
	moduleName := strings.TrimSuffix(filepath.Base(path), ".pm")

	table, err := ParsePM(file, moduleName)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return table, nil
}

// ParsePM reads an ExifTool module and returns its Main tag table. Only
// numeric (0x) tag ids are collected; for conditional tag lists the first
// definition wins.
func ParsePM(r io.Reader, moduleName string) (*TagTable, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var (
		table      *TagTable
		parenDepth int
		current    *TagDef
		writable   bool
		defDepth   int
	)

	commit := func() {
		if current != nil && current.Name != "" {
			if _, exists := table.Tags[current.ID]; !exists {
				table.Tags[current.ID] = current
			}
		}
		current = nil
	}

	for scanner.Scan() {
		line := scanner.Text()

		// Skip comments
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		if table == nil {
			matches := tagTableRe.FindStringSubmatch(line)
			if matches == nil || !strings.HasSuffix(matches[1], "::Main") {
				continue
			}
			table = &TagTable{
				ModuleName:  moduleName,
				PackageName: matches[1],
				Tags:        make(map[string]*TagDef),
			}
			parenDepth = 1
			continue
		}

		parens := strings.Count(line, "(") - strings.Count(line, ")")
		braces := strings.Count(line, "{") + strings.Count(line, "[") -
			strings.Count(line, "}") - strings.Count(line, "]")

		if current == nil {
			if parenDepth+parens <= 0 {
				break
			}
			parenDepth += parens

			if matches := tagInlineRe.FindStringSubmatch(line); matches != nil {
				current = &TagDef{ID: tagID(matches[1]), Name: matches[2]}
				commit()
				continue
			}
			matches := tagDefStartRe.FindStringSubmatch(line)
			if matches == nil {
				continue
			}
			current = &TagDef{ID: tagID(matches[1])}
			writable = false
			defDepth = 0
		} else {
			parenDepth += parens
		}

		if current.Name == "" {
			if matches := nameRe.FindStringSubmatch(line); matches != nil {
				current.Name = matches[1]
			}
		}
		if matches := writableRe.FindStringSubmatch(line); matches != nil && !writable {
			current.Format = matches[1]
			writable = true
		} else if matches := formatRe.FindStringSubmatch(line); matches != nil && current.Format == "" {
			current.Format = matches[1]
		}

		defDepth += braces
		if defDepth <= 0 {
			commit()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrNoMainTable
	}
	return table, nil
}

func tagID(hex string) string {
	n, err := strconv.ParseUint(hex, 16, 16)
	if err != nil {
		return "0x" + strings.ToUpper(hex)
	}
	return fmt.Sprintf("0x%04X", n)
}
