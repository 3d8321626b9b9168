package formats_test

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/gif"
	"image/jpeg"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"greg-hacke/stripclean/exif/exiftest"
	"greg-hacke/stripclean/formats"
)

func payload() []byte {
	b := exiftest.NewBuilder(binary.BigEndian)
	b.IFD0().ASCII(0x010F, "Nikon")
	return b.Bytes()
}

func encode(t *testing.T, fn func(*bytes.Buffer) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(&buf))
	return buf.Bytes()
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want formats.Format
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, formats.FormatJPEG},
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00"), formats.FormatPNG},
		{"gif87", []byte("GIF87a...."), formats.FormatGIF},
		{"gif89", []byte("GIF89a...."), formats.FormatGIF},
		{"tiff le", []byte("II*\x00\x08\x00\x00\x00"), formats.FormatTIFF},
		{"tiff be", []byte("MM\x00*\x00\x00\x00\x08"), formats.FormatTIFF},
		{"webp", []byte("RIFF\x10\x00\x00\x00WEBPVP8 "), formats.FormatWEBP},
		{"riff wave", []byte("RIFF\x10\x00\x00\x00WAVEfmt "), formats.FormatUnknown},
		{"bmp", []byte("BM\x00\x00"), formats.FormatBMP},
		{"text", []byte("hello, world"), formats.FormatUnknown},
		{"empty", nil, formats.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.data)
			got, err := formats.Sniff(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			pos, _ := r.Seek(0, io.SeekCurrent)
			assert.Zero(t, pos)
		})
	}
}

func TestFormat_MIMEType(t *testing.T) {
	assert.Equal(t, "image/jpeg", formats.FormatJPEG.MIMEType())
	assert.Equal(t, "image/png", formats.FormatPNG.MIMEType())
	assert.Equal(t, "image/webp", formats.FormatWEBP.MIMEType())
	assert.Equal(t, ".jpg", formats.FormatJPEG.Extension())
	assert.Equal(t, ".tif", formats.FormatTIFF.Extension())
	assert.Equal(t, ".png", formats.FormatPNG.Extension())
}

func TestDecodeHeader(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 5, 2))

	tests := []struct {
		name   string
		data   []byte
		format formats.Format
		mode   string
		w, h   int
	}{
		{"jpeg", exiftest.JPEG(payload(), 4, 3), formats.FormatJPEG, "RGB", 4, 3},
		{"jpeg gray", encode(t, func(b *bytes.Buffer) error { return jpeg.Encode(b, gray, nil) }), formats.FormatJPEG, "L", 5, 2},
		{"png", exiftest.PNG(payload(), 6, 7), formats.FormatPNG, "RGB", 6, 7},
		{"gif", encode(t, func(b *bytes.Buffer) error { return gif.Encode(b, exiftest.Image(3, 3), nil) }), formats.FormatGIF, "P", 3, 3},
		{"bmp", encode(t, func(b *bytes.Buffer) error { return bmp.Encode(b, exiftest.Image(2, 8)) }), formats.FormatBMP, "RGB", 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := formats.DecodeHeader(bytes.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.format, h.Format)
			assert.Equal(t, tt.mode, h.Mode)
			assert.Equal(t, tt.w, h.Width)
			assert.Equal(t, tt.h, h.Height)
		})
	}
}

func TestDecodeHeader_TIFF(t *testing.T) {
	data := encode(t, func(b *bytes.Buffer) error { return tiff.Encode(b, exiftest.Image(9, 4), nil) })
	h, err := formats.DecodeHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, formats.FormatTIFF, h.Format)
	assert.Equal(t, 9, h.Width)
	assert.Equal(t, 4, h.Height)
}

func TestDecodeHeader_Invalid(t *testing.T) {
	_, err := formats.DecodeHeader(bytes.NewReader([]byte("definitely not an image")))
	assert.ErrorIs(t, err, formats.ErrUnknownFormat)

	// Right magic, no header behind it
	_, err = formats.DecodeHeader(bytes.NewReader([]byte("\x89PNG\r\n\x1a\n")))
	require.Error(t, err)
	assert.NotErrorIs(t, err, formats.ErrUnknownFormat)
}

func TestLocate(t *testing.T) {
	exifData := payload()
	tiffData := encode(t, func(b *bytes.Buffer) error { return tiff.Encode(b, exiftest.Image(2, 2), nil) })

	tests := []struct {
		name   string
		format formats.Format
		data   []byte
		want   []byte
	}{
		{"jpeg", formats.FormatJPEG, exiftest.JPEG(exifData, 4, 4), exifData},
		{"jpeg without exif", formats.FormatJPEG, exiftest.JPEG(nil, 4, 4), nil},
		{"png", formats.FormatPNG, exiftest.PNG(exifData, 4, 4), exifData},
		{"png without exif", formats.FormatPNG, exiftest.PNG(nil, 4, 4), nil},
		{
			"webp",
			formats.FormatWEBP,
			exiftest.WebPContainer(exiftest.RIFFChunk("VP8X", make([]byte, 10)), exiftest.RIFFChunk("EXIF", exifData)),
			exifData,
		},
		{
			"webp with app1 prefix",
			formats.FormatWEBP,
			exiftest.WebPContainer(exiftest.RIFFChunk("ICCP", []byte{1, 2, 3}), exiftest.RIFFChunk("EXIF", append([]byte("Exif\x00\x00"), exifData...))),
			exifData,
		},
		{"webp without exif", formats.FormatWEBP, exiftest.WebPContainer(exiftest.RIFFChunk("VP8X", make([]byte, 10))), nil},
		{"tiff", formats.FormatTIFF, tiffData, tiffData},
		{"gif", formats.FormatGIF, []byte("GIF89a"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formats.Locate(tt.format, bytes.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocate_CorruptJPEG(t *testing.T) {
	_, err := formats.Locate(formats.FormatJPEG, bytes.NewReader([]byte{0xFF, 0xD8, 0x00, 0x12, 0x34}))
	assert.Error(t, err)
}

func TestRegisterLocator(t *testing.T) {
	custom := formats.Format("TEST")
	formats.RegisterLocator(custom, formats.LocatorFunc(func(r io.ReadSeeker) ([]byte, error) {
		return []byte("found"), nil
	}))

	got, err := formats.Locate(custom, bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, []byte("found"), got)
}
