// Package exif walks the TIFF structure of an EXIF block and produces the
// ordered tag-ID -> value mapping the rest of the module consumes.
package exif

import (
	"fmt"
	"strconv"
)

// TIFF field types
const (
	TypeByte      uint16 = 1
	TypeASCII     uint16 = 2
	TypeShort     uint16 = 3
	TypeLong      uint16 = 4
	TypeRational  uint16 = 5
	TypeSByte     uint16 = 6
	TypeUndefined uint16 = 7
	TypeSShort    uint16 = 8
	TypeSLong     uint16 = 9
	TypeSRational uint16 = 10
	TypeFloat     uint16 = 11
	TypeDouble    uint16 = 12
	TypeIFD       uint16 = 13
)

// typeSizes maps a TIFF type to the size of one component
var typeSizes = map[uint16]uint32{
	TypeByte: 1, TypeASCII: 1, TypeShort: 2, TypeLong: 4, TypeRational: 8,
	TypeSByte: 1, TypeUndefined: 1, TypeSShort: 2, TypeSLong: 4, TypeSRational: 8,
	TypeFloat: 4, TypeDouble: 8, TypeIFD: 4,
}

// Pointer tags that lead to sub-IFDs
const (
	TagExifIFD    uint16 = 0x8769
	TagGPSIFD     uint16 = 0x8825
	TagInteropIFD uint16 = 0xA005
)

// Rational is a TIFF RATIONAL or SRATIONAL value.
type Rational struct {
	Num int64
	Den int64
}

// Float converts the rational; ok is false for a zero denominator.
func (r Rational) Float() (float64, bool) {
	if r.Den == 0 {
		return 0, false
	}
	return float64(r.Num) / float64(r.Den), true
}

func (r Rational) String() string {
	if r.Den == 0 {
		return "inf"
	}
	if r.Num%r.Den == 0 {
		return strconv.FormatInt(r.Num/r.Den, 10)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Entry is one decoded tag. Value holds []byte, string, int, []int,
// Rational, []Rational, float64, []float64 or *IFD.
type Entry struct {
	ID    uint16
	Type  uint16
	Value any
}

// IFD is an ordered tag mapping. Order is the order tags were first seen.
type IFD struct {
	Entries []Entry
}

// Len returns the number of entries
func (d *IFD) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Entries)
}

// Get returns the value stored for id.
func (d *IFD) Get(id uint16) (any, bool) {
	if d == nil {
		return nil, false
	}
	for _, e := range d.Entries {
		if e.ID == id {
			return e.Value, true
		}
	}
	return nil, false
}

// GPS returns the nested GPS mapping, or nil when the block has none.
func (d *IFD) GPS() *IFD {
	v, ok := d.Get(TagGPSIFD)
	if !ok {
		return nil
	}
	gps, _ := v.(*IFD)
	return gps
}

// Set stores e, replacing the value in place when the id is already present.
func (d *IFD) Set(e Entry) {
	for i := range d.Entries {
		if d.Entries[i].ID == e.ID {
			d.Entries[i].Value = e.Value
			d.Entries[i].Type = e.Type
			return
		}
	}
	d.Entries = append(d.Entries, e)
}
