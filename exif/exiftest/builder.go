// Package exiftest builds synthetic EXIF blocks and image files that carry
// them, for tests across the module.
package exiftest

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"greg-hacke/stripclean/exif"
)

// Field is one raw IFD entry
type Field struct {
	ID    uint16
	Type  uint16
	Count uint32
	Data  []byte
}

// Dir collects the fields of one IFD
type Dir struct {
	order  binary.ByteOrder
	fields []Field
}

// Builder assembles a TIFF payload with IFD0, an Exif sub-IFD and a GPS sub-IFD.
type Builder struct {
	order binary.ByteOrder
	ifd0  *Dir
	exif  *Dir
	gps   *Dir
}

// NewBuilder returns a builder writing in the given byte order
func NewBuilder(order binary.ByteOrder) *Builder {
	return &Builder{
		order: order,
		ifd0:  &Dir{order: order},
		exif:  &Dir{order: order},
		gps:   &Dir{order: order},
	}
}

func (b *Builder) IFD0() *Dir { return b.ifd0 }
func (b *Builder) Exif() *Dir { return b.exif }
func (b *Builder) GPS() *Dir  { return b.gps }

// Raw appends an arbitrary field
func (d *Dir) Raw(f Field) *Dir {
	d.fields = append(d.fields, f)
	return d
}

// ASCII appends a NUL-terminated string
func (d *Dir) ASCII(id uint16, s string) *Dir {
	data := append([]byte(s), 0)
	return d.Raw(Field{ID: id, Type: exif.TypeASCII, Count: uint32(len(data)), Data: data})
}

// Bytes appends a BYTE field
func (d *Dir) Bytes(id uint16, b ...byte) *Dir {
	return d.Raw(Field{ID: id, Type: exif.TypeByte, Count: uint32(len(b)), Data: b})
}

// Undefined appends an UNDEFINED field
func (d *Dir) Undefined(id uint16, b []byte) *Dir {
	return d.Raw(Field{ID: id, Type: exif.TypeUndefined, Count: uint32(len(b)), Data: b})
}

// Short appends a SHORT field
func (d *Dir) Short(id uint16, vals ...uint16) *Dir {
	data := make([]byte, 2*len(vals))
	for i, v := range vals {
		d.order.PutUint16(data[i*2:], v)
	}
	return d.Raw(Field{ID: id, Type: exif.TypeShort, Count: uint32(len(vals)), Data: data})
}

// Long appends a LONG field
func (d *Dir) Long(id uint16, vals ...uint32) *Dir {
	data := make([]byte, 4*len(vals))
	for i, v := range vals {
		d.order.PutUint32(data[i*4:], v)
	}
	return d.Raw(Field{ID: id, Type: exif.TypeLong, Count: uint32(len(vals)), Data: data})
}

// Rational appends a RATIONAL field from numerator/denominator pairs
func (d *Dir) Rational(id uint16, pairs ...[2]uint32) *Dir {
	data := make([]byte, 8*len(pairs))
	for i, p := range pairs {
		d.order.PutUint32(data[i*8:], p[0])
		d.order.PutUint32(data[i*8+4:], p[1])
	}
	return d.Raw(Field{ID: id, Type: exif.TypeRational, Count: uint32(len(pairs)), Data: data})
}

// Bytes serializes the payload: header, IFD0, then the Exif and GPS
// sub-IFDs when they have fields.
func (b *Builder) Bytes() []byte {
	ifd0 := append([]Field(nil), b.ifd0.fields...)
	exifAt, gpsAt := -1, -1
	if len(b.exif.fields) > 0 {
		exifAt = len(ifd0)
		ifd0 = append(ifd0, Field{ID: exif.TagExifIFD, Type: exif.TypeLong, Count: 1, Data: make([]byte, 4)})
	}
	if len(b.gps.fields) > 0 {
		gpsAt = len(ifd0)
		ifd0 = append(ifd0, Field{ID: exif.TagGPSIFD, Type: exif.TypeLong, Count: 1, Data: make([]byte, 4)})
	}

	// Pointer values do not change the size of IFD0, so lay it out once to
	// learn where the sub-IFDs go.
	const ifd0Start = 8
	next := uint32(ifd0Start + len(encodeIFD(b.order, ifd0, ifd0Start)))
	var tail []byte
	if exifAt >= 0 {
		b.order.PutUint32(ifd0[exifAt].Data, next)
		enc := encodeIFD(b.order, b.exif.fields, next)
		tail = append(tail, enc...)
		next += uint32(len(enc))
	}
	if gpsAt >= 0 {
		b.order.PutUint32(ifd0[gpsAt].Data, next)
		tail = append(tail, encodeIFD(b.order, b.gps.fields, next)...)
	}

	out := make([]byte, 8)
	if b.order == binary.BigEndian {
		copy(out, "MM")
	} else {
		copy(out, "II")
	}
	b.order.PutUint16(out[2:], 42)
	b.order.PutUint32(out[4:], ifd0Start)
	out = append(out, encodeIFD(b.order, ifd0, ifd0Start)...)
	return append(out, tail...)
}

// encodeIFD lays out a directory at start with out-of-line data right after it
func encodeIFD(order binary.ByteOrder, fields []Field, start uint32) []byte {
	head := make([]byte, 2+12*len(fields)+4)
	order.PutUint16(head, uint16(len(fields)))
	dataOff := start + uint32(len(head))

	var extra []byte
	for i, f := range fields {
		p := 2 + 12*i
		order.PutUint16(head[p:], f.ID)
		order.PutUint16(head[p+2:], f.Type)
		order.PutUint32(head[p+4:], f.Count)
		if len(f.Data) <= 4 {
			copy(head[p+8:p+12], f.Data)
			continue
		}
		order.PutUint32(head[p+8:], dataOff+uint32(len(extra)))
		extra = append(extra, f.Data...)
		if len(extra)%2 == 1 {
			extra = append(extra, 0)
		}
	}
	return append(head, extra...)
}

// Image returns a small opaque test image
func Image(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	return img
}

// JPEG encodes a w×h JPEG and, when payload is non-nil, inserts it as an
// APP1 Exif segment right after SOI.
func JPEG(payload []byte, w, h int) []byte {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, Image(w, h), &jpeg.Options{Quality: 90}); err != nil {
		panic(err)
	}
	raw := buf.Bytes()
	if payload == nil {
		return raw
	}

	seg := []byte{0xFF, 0xE1, 0, 0}
	binary.BigEndian.PutUint16(seg[2:], uint16(2+6+len(payload)))
	seg = append(seg, "Exif\x00\x00"...)
	seg = append(seg, payload...)

	out := append([]byte{}, raw[:2]...)
	out = append(out, seg...)
	return append(out, raw[2:]...)
}

// PNG encodes a w×h PNG and, when payload is non-nil, inserts an eXIf chunk
// after IHDR.
func PNG(payload []byte, w, h int) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Image(w, h)); err != nil {
		panic(err)
	}
	raw := buf.Bytes()
	if payload == nil {
		return raw
	}

	// signature (8) + IHDR chunk (4 len + 4 type + 13 data + 4 crc)
	const ihdrEnd = 8 + 25
	out := append([]byte{}, raw[:ihdrEnd]...)
	out = append(out, Chunk("eXIf", payload)...)
	return append(out, raw[ihdrEnd:]...)
}

// Chunk encodes a PNG chunk with its CRC
func Chunk(typ string, data []byte) []byte {
	out := make([]byte, 8, 12+len(data))
	binary.BigEndian.PutUint32(out, uint32(len(data)))
	copy(out[4:], typ)
	out = append(out, data...)
	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	return binary.BigEndian.AppendUint32(out, crc.Sum32())
}

// WebPContainer wraps chunks in a RIFF/WEBP header. The result is a valid
// container, not a decodable image.
func WebPContainer(chunks ...[]byte) []byte {
	var body []byte
	body = append(body, "WEBP"...)
	for _, c := range chunks {
		body = append(body, c...)
	}
	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	return append(out, body...)
}

// RIFFChunk encodes a RIFF chunk, padded to even length
func RIFFChunk(fourcc string, data []byte) []byte {
	out := []byte(fourcc)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))
	out = append(out, data...)
	if len(data)%2 == 1 {
		out = append(out, 0)
	}
	return out
}
