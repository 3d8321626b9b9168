// Package clean produces metadata-free copies of images by decoding the
// pixels and encoding them again. Encoders here write no EXIF, XMP or
// text chunks, so nothing from the original metadata survives.
package clean

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"greg-hacke/stripclean/formats"
	"greg-hacke/stripclean/meta"
)

// DefaultJPEGQuality is used when Options.JPEGQuality is unset
const DefaultJPEGQuality = 95

// Options controls re-encoding
type Options struct {
	JPEGQuality int
}

// Result is a stripped image
type Result struct {
	Data     []byte
	Format   formats.Format // format written
	Source   formats.Format // format read
	MIMEType string
}

// Strip decodes the image in r and encodes it again without metadata.
// Input that is not a supported image fails with a *meta.DecodeError.
// WebP has no encoder and comes back as PNG.
func Strip(r io.Reader, opts Options) (*Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	src := bytes.NewReader(raw)
	format, err := formats.Sniff(src)
	if err != nil {
		return nil, &meta.DecodeError{Err: err}
	}
	if format == formats.FormatUnknown {
		return nil, &meta.DecodeError{Err: formats.ErrUnknownFormat}
	}

	var out bytes.Buffer
	written, err := encode(&out, src, format, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Data:     out.Bytes(),
		Format:   written,
		Source:   format,
		MIMEType: written.MIMEType(),
	}, nil
}

// encode re-encodes src, returning the format actually written
func encode(w io.Writer, src io.Reader, format formats.Format, opts Options) (formats.Format, error) {
	// GIF keeps every frame and its timing
	if format == formats.FormatGIF {
		anim, err := gif.DecodeAll(src)
		if err != nil {
			return format, &meta.DecodeError{Err: err}
		}
		if err := gif.EncodeAll(w, anim); err != nil {
			return format, fmt.Errorf("encode GIF: %w", err)
		}
		return format, nil
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return format, &meta.DecodeError{Err: err}
	}

	switch format {
	case formats.FormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case formats.FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Uncompressed})
	case formats.FormatBMP:
		err = bmp.Encode(w, img)
	default:
		format = formats.FormatPNG
		err = png.Encode(w, img)
	}
	if err != nil {
		return format, fmt.Errorf("encode %s: %w", format, err)
	}
	return format, nil
}

// DownloadName is the attachment name for the cleaned copy of original
func (r *Result) DownloadName(original string) string {
	name := SafeFilename(original)
	switch {
	case name == "":
		name = "image" + r.Format.Extension()
	case r.Format != r.Source:
		name = strings.TrimSuffix(name, filepath.Ext(name)) + r.Format.Extension()
	}
	return "cleaned_" + name
}
