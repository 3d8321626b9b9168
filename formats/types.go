// Package formats identifies image files, decodes their headers and finds
// the EXIF payload inside each supported container.
package formats

import (
	"errors"
	"strings"
)

// Format is an image container format, named the way imaging libraries
// report it.
type Format string

// Supported formats
const (
	FormatUnknown Format = ""
	FormatJPEG    Format = "JPEG"
	FormatPNG     Format = "PNG"
	FormatGIF     Format = "GIF"
	FormatTIFF    Format = "TIFF"
	FormatWEBP    Format = "WEBP"
	FormatBMP     Format = "BMP"
)

// ErrUnknownFormat is returned when the magic bytes match no supported format
var ErrUnknownFormat = errors.New("cannot identify image file")

// MIMEType returns the image/* media type for the format
func (f Format) MIMEType() string {
	if f == FormatUnknown {
		return "image/jpeg"
	}
	return "image/" + strings.ToLower(string(f))
}

// Extension returns the canonical file extension, including the dot
func (f Format) Extension() string {
	switch f {
	case FormatJPEG, FormatUnknown:
		return ".jpg"
	case FormatTIFF:
		return ".tif"
	}
	return "." + strings.ToLower(string(f))
}

// Header is the parsed image header
type Header struct {
	Format Format
	Width  int
	Height int
	Mode   string // Colour mode: RGB, RGBA, L, I;16, P, CMYK, A
}
