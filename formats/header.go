package formats

import (
	"fmt"
	"image"
	"image/color"
	"io"

	// Registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeHeader identifies the image and parses its header. An error means
// the bytes are not a supported image; r is left at the start either way.
func DecodeHeader(r io.ReadSeeker) (Header, error) {
	format, err := Sniff(r)
	if err != nil {
		return Header{}, err
	}
	if format == FormatUnknown {
		return Header{}, ErrUnknownFormat
	}

	cfg, _, err := image.DecodeConfig(r)
	if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil && err == nil {
		err = seekErr
	}
	if err != nil {
		return Header{}, fmt.Errorf("decode %s header: %w", format, err)
	}

	return Header{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Mode:   modeOf(cfg.ColorModel),
	}, nil
}

// modeOf names a colour model the way imaging tools usually do
func modeOf(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "P"
	}
	switch m {
	case color.YCbCrModel, color.RGBAModel, color.RGBA64Model:
		return "RGB"
	case color.NRGBAModel, color.NRGBA64Model, color.NYCbCrAModel:
		return "RGBA"
	case color.GrayModel:
		return "L"
	case color.Gray16Model:
		return "I;16"
	case color.CMYKModel:
		return "CMYK"
	case color.AlphaModel, color.Alpha16Model:
		return "A"
	}
	return "Unknown"
}
