package exif

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// maxEntries bounds the entry count accepted for a single IFD
const maxEntries = 512

var (
	ErrTooShort  = errors.New("exif: data too short")
	ErrByteOrder = errors.New("exif: invalid TIFF byte order")
	ErrMagic     = errors.New("exif: invalid TIFF magic")
	ErrOffset    = errors.New("exif: IFD offset out of bounds")
)

// decoder holds the state of a single Decode call
type decoder struct {
	data    []byte
	order   binary.ByteOrder
	visited map[uint32]bool
	// budget is the number of out-of-line value bytes still allowed; entries
	// sharing one data region cannot decode to more than the payload size
	budget uint64
}

// Decode parses TIFF-formatted EXIF data. IFD0 entries come first, followed
// by the entries of the Exif sub-IFD; the GPS pointer entry is replaced by
// the decoded GPS sub-IFD. A broken sub-IFD leaves its pointer value as is.
func Decode(data []byte) (*IFD, error) {
	if len(data) < 8 {
		return nil, ErrTooShort
	}

	// Check byte order
	var order binary.ByteOrder
	switch {
	case data[0] == 'I' && data[1] == 'I':
		order = binary.LittleEndian
	case data[0] == 'M' && data[1] == 'M':
		order = binary.BigEndian
	default:
		return nil, ErrByteOrder
	}
	if order.Uint16(data[2:4]) != 42 {
		return nil, ErrMagic
	}

	d := &decoder{
		data:    data,
		order:   order,
		visited: make(map[uint32]bool),
		budget:  uint64(len(data)),
	}

	main := &IFD{}
	if err := d.readIFD(order.Uint32(data[4:8]), main); err != nil {
		return nil, err
	}

	if off, ok := pointer(main, TagExifIFD); ok {
		sub := &IFD{}
		if err := d.readIFD(off, sub); err == nil {
			for _, e := range sub.Entries {
				main.Set(e)
			}
		}
	}

	if off, ok := pointer(main, TagGPSIFD); ok {
		gps := &IFD{}
		if err := d.readIFD(off, gps); err == nil {
			main.Set(Entry{ID: TagGPSIFD, Type: TypeIFD, Value: gps})
		}
	}

	return main, nil
}

// pointer reads a sub-IFD offset stored under id
func pointer(d *IFD, id uint16) (uint32, bool) {
	v, ok := d.Get(id)
	if !ok {
		return 0, false
	}
	switch off := v.(type) {
	case int:
		if off <= 0 {
			return 0, false
		}
		return uint32(off), true
	case []int:
		if len(off) == 0 || off[0] <= 0 {
			return 0, false
		}
		return uint32(off[0]), true
	}
	return 0, false
}

// readIFD parses the directory at offset into dst
func (d *decoder) readIFD(offset uint32, dst *IFD) error {
	if d.visited[offset] {
		return fmt.Errorf("exif: IFD at offset %d visited twice", offset)
	}
	d.visited[offset] = true

	if uint64(offset)+2 > uint64(len(d.data)) {
		return ErrOffset
	}

	numEntries := d.order.Uint16(d.data[offset : offset+2])
	if numEntries > maxEntries {
		return fmt.Errorf("exif: IFD at offset %d claims %d entries", offset, numEntries)
	}

	pos := uint64(offset) + 2
	for i := 0; i < int(numEntries); i++ {
		if pos+12 > uint64(len(d.data)) {
			break
		}
		entry := d.data[pos : pos+12]
		pos += 12

		tagID := d.order.Uint16(entry[0:2])
		dataType := d.order.Uint16(entry[2:4])
		count := d.order.Uint32(entry[4:8])

		value, ok := d.value(dataType, count, entry[8:12])
		if !ok {
			continue
		}
		dst.Set(Entry{ID: tagID, Type: dataType, Value: value})
	}

	return nil
}

// value extracts an entry value based on its TIFF data type. Values of four
// bytes or less live in the entry itself; larger ones at the stored offset.
func (d *decoder) value(dataType uint16, count uint32, raw []byte) (any, bool) {
	size, known := typeSizes[dataType]
	if !known {
		return nil, false
	}

	total := uint64(size) * uint64(count)
	var valueData []byte
	if total <= 4 {
		valueData = raw[:total]
	} else {
		offset := uint64(d.order.Uint32(raw))
		if offset+total > uint64(len(d.data)) || total > d.budget {
			return nil, false
		}
		d.budget -= total
		valueData = d.data[offset : offset+total]
	}

	order := d.order
	n := int(count)

	switch dataType {
	case TypeByte:
		if n == 1 {
			return int(valueData[0]), true
		}
		return bytes.Clone(valueData), true

	case TypeASCII:
		if end := bytes.IndexByte(valueData, 0); end >= 0 {
			return string(valueData[:end]), true
		}
		return string(valueData), true

	case TypeUndefined:
		return bytes.Clone(valueData), true

	case TypeShort, TypeSShort:
		vals := make([]int, n)
		for i := range vals {
			u := order.Uint16(valueData[i*2:])
			if dataType == TypeSShort {
				vals[i] = int(int16(u))
			} else {
				vals[i] = int(u)
			}
		}
		return scalarOrSlice(vals), true

	case TypeLong, TypeIFD, TypeSLong:
		vals := make([]int, n)
		for i := range vals {
			u := order.Uint32(valueData[i*4:])
			if dataType == TypeSLong {
				vals[i] = int(int32(u))
			} else {
				vals[i] = int(u)
			}
		}
		return scalarOrSlice(vals), true

	case TypeSByte:
		vals := make([]int, n)
		for i := range vals {
			vals[i] = int(int8(valueData[i]))
		}
		return scalarOrSlice(vals), true

	case TypeRational, TypeSRational:
		vals := make([]Rational, n)
		for i := range vals {
			num := order.Uint32(valueData[i*8:])
			den := order.Uint32(valueData[i*8+4:])
			if dataType == TypeSRational {
				vals[i] = Rational{Num: int64(int32(num)), Den: int64(int32(den))}
			} else {
				vals[i] = Rational{Num: int64(num), Den: int64(den)}
			}
		}
		if n == 1 {
			return vals[0], true
		}
		return vals, true

	case TypeFloat:
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = float64(math.Float32frombits(order.Uint32(valueData[i*4:])))
		}
		if n == 1 {
			return vals[0], true
		}
		return vals, true

	case TypeDouble:
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = math.Float64frombits(order.Uint64(valueData[i*8:]))
		}
		if n == 1 {
			return vals[0], true
		}
		return vals, true
	}

	return nil, false
}

func scalarOrSlice(vals []int) any {
	if len(vals) == 1 {
		return vals[0]
	}
	return vals
}
