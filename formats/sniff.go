package formats

import (
	"bytes"
	"fmt"
	"io"
)

// Sniff determines the format of the data from its magic bytes and leaves
// r positioned at the start.
func Sniff(r io.ReadSeeker) (Format, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return FormatUnknown, fmt.Errorf("failed to seek: %w", err)
	}

	// Read first 16 bytes for magic number detection
	header := make([]byte, 16)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return FormatUnknown, err
	}
	header = header[:n]

	// Reset position
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return FormatUnknown, fmt.Errorf("failed to seek: %w", err)
	}

	return sniffBytes(header), nil
}

// sniffBytes checks magic numbers
func sniffBytes(header []byte) Format {
	switch {
	case len(header) >= 3 && header[0] == 0xFF && header[1] == 0xD8 && header[2] == 0xFF:
		return FormatJPEG

	case bytes.HasPrefix(header, []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG

	case bytes.HasPrefix(header, []byte("GIF87a")) || bytes.HasPrefix(header, []byte("GIF89a")):
		return FormatGIF

	case bytes.HasPrefix(header, []byte("II*\x00")) || bytes.HasPrefix(header, []byte("MM\x00*")):
		return FormatTIFF

	case len(header) >= 12 && string(header[:4]) == "RIFF" && string(header[8:12]) == "WEBP":
		return FormatWEBP

	case bytes.HasPrefix(header, []byte("BM")):
		return FormatBMP

	default:
		return FormatUnknown
	}
}
