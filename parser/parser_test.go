package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gpsModule = `#------------------------------------------------------------------------------
# File:         GPS.pm
#------------------------------------------------------------------------------

package Image::ExifTool::GPS;

use strict;

%Image::ExifTool::GPS::Main = (
    GROUPS => { 0 => 'EXIF', 1 => 'GPS', 2 => 'Location' },
    WRITE_PROC => \&Image::ExifTool::Exif::WriteExif,
    WRITABLE => 1,
    0x0000 => {
        Name => 'GPSVersionID',
        Writable => 'int8u',
        Count => 4,
        PrintConv => '$val =~ tr/ /./; $val',
    },
    0x0001 => {
        Name => 'GPSLatitudeRef',
        Writable => 'string',
        Count => 2,
        PrintConv => {
            # extract N/S
            N => 'North',
            S => 'South',
        },
    },
    0x2 => { Name => 'GPSLatitude', Writable => 'rational64u', Count => 3 },
    0x001b => {
        Name => 'GPSProcessingMethod',
        Format => 'undef',
    },
    0x1f => 'GPSHPositioningError',
);

%Image::ExifTool::GPS::Composite = (
    0x0099 => { Name => 'NotInMain' },
);

1;
`

const conditionalModule = `package Image::ExifTool::Exif;

%Image::ExifTool::Exif::Main = (
    0x0111 => [
        {
            Condition => '$$self{TIFF_TYPE} eq "MRW"',
            Name => 'StripOffsets',
            Writable => 'int32u',
        },
        {
            Name => 'OtherImageStart',
            Writable => 'int16u',
        },
    ],
    0x0112 => {
        Name => 'Orientation',
        Writable => 'int16u',
        PrintConv => \%orientation,
    },
);
`

func TestParsePM(t *testing.T) {
	table, err := ParsePM(strings.NewReader(gpsModule), "GPS")
	require.NoError(t, err)

	assert.Equal(t, "GPS", table.ModuleName)
	assert.Equal(t, "Image::ExifTool::GPS::Main", table.PackageName)
	assert.Len(t, table.Tags, 5)

	assert.Equal(t, &TagDef{ID: "0x0000", Name: "GPSVersionID", Format: "int8u"}, table.Tags["0x0000"])
	assert.Equal(t, &TagDef{ID: "0x0001", Name: "GPSLatitudeRef", Format: "string"}, table.Tags["0x0001"])
	assert.Equal(t, &TagDef{ID: "0x0002", Name: "GPSLatitude", Format: "rational64u"}, table.Tags["0x0002"])
	assert.Equal(t, &TagDef{ID: "0x001B", Name: "GPSProcessingMethod", Format: "undef"}, table.Tags["0x001B"])
	assert.Equal(t, &TagDef{ID: "0x001F", Name: "GPSHPositioningError"}, table.Tags["0x001F"])
	assert.NotContains(t, table.Tags, "0x0099")
}

func TestParsePM_ConditionalList(t *testing.T) {
	table, err := ParsePM(strings.NewReader(conditionalModule), "Exif")
	require.NoError(t, err)

	require.Len(t, table.Tags, 2)
	assert.Equal(t, "StripOffsets", table.Tags["0x0111"].Name)
	assert.Equal(t, "int32u", table.Tags["0x0111"].Format)
	assert.Equal(t, "Orientation", table.Tags["0x0112"].Name)
}

func TestParsePM_NoMainTable(t *testing.T) {
	_, err := ParsePM(strings.NewReader("package Image::ExifTool::Foo;\n1;\n"), "Foo")
	assert.ErrorIs(t, err, ErrNoMainTable)
}

func TestParsePMFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "GPS.pm")
	require.NoError(t, os.WriteFile(path, []byte(gpsModule), 0o644))

	table, err := ParsePMFile(path)
	require.NoError(t, err)
	assert.Equal(t, "GPS", table.ModuleName)

	_, err = ParsePMFile(filepath.Join(t.TempDir(), "Missing.pm"))
	assert.Error(t, err)
}

func TestGenerateTable(t *testing.T) {
	table, err := ParsePM(strings.NewReader(gpsModule), "GPS")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, GenerateTable(table, &buf))
	src := buf.String()

	assert.True(t, strings.HasPrefix(src, "// Code generated by gen-tags. DO NOT EDIT.\n\npackage tags\n"))
	assert.Contains(t, src, "// GPS_Main_Tags contains tag definitions from Image::ExifTool::GPS::Main\n")
	assert.Contains(t, src, "var GPS_Main_Tags = TagTable{\n\tModuleName: \"GPS\",\n")
	assert.Contains(t, src, "\t\t\"0x0000\": {ID: \"0x0000\", Name: \"GPSVersionID\", Format: \"int8u\"},\n")
	assert.Contains(t, src, "\t\t\"0x001F\": {ID: \"0x001F\", Name: \"GPSHPositioningError\"},\n")

	// entries are sorted by id
	assert.Less(t, strings.Index(src, `"0x0002"`), strings.Index(src, `"0x001B"`))
}

func TestVarName(t *testing.T) {
	assert.Equal(t, "GPS_Main_Tags", VarName("GPS::Main"))
	assert.Equal(t, "Exif_Main_Tags", VarName("Exif::Main"))
	assert.Equal(t, "exif_main.go", FileName("Exif"))
}
