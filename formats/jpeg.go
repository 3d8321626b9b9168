package formats

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

func init() {
	RegisterLocator(FormatJPEG, LocatorFunc(findJPEGExif))
}

var exifHeader = []byte("Exif\x00\x00")

// findJPEGExif locates the EXIF APP1 segment in a JPEG
func findJPEGExif(r io.ReadSeeker) ([]byte, error) {
	// Skip SOI marker
	if _, err := r.Seek(2, io.SeekStart); err != nil {
		return nil, err
	}

	var marker [2]byte
	for {
		if _, err := io.ReadFull(r, marker[:]); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
		if marker[0] != 0xFF {
			return nil, fmt.Errorf("invalid JPEG marker 0x%02X%02X", marker[0], marker[1])
		}

		// Fill bytes
		for marker[1] == 0xFF {
			if _, err := io.ReadFull(r, marker[1:]); err != nil {
				return nil, err
			}
		}

		switch {
		case marker[1] == 0xD9 || marker[1] == 0xDA:
			// EOI or start of scan: no metadata past here
			return nil, nil
		case marker[1] == 0x01 || (marker[1] >= 0xD0 && marker[1] <= 0xD7):
			// Standalone markers carry no length
			continue
		}

		// Read segment length
		var length uint16
		if err := binary.Read(r, binary.BigEndian, &length); err != nil {
			return nil, err
		}
		if length < 2 {
			return nil, fmt.Errorf("invalid segment length %d", length)
		}

		// APP1 marker (0xFFE1) contains EXIF
		if marker[1] == 0xE1 {
			data, err := readN(r, int64(length-2))
			if err != nil {
				return nil, err
			}
			if bytes.HasPrefix(data, exifHeader) {
				return data[len(exifHeader):], nil
			}
			continue
		}

		// Skip segment
		if _, err := r.Seek(int64(length-2), io.SeekCurrent); err != nil {
			return nil, err
		}
	}
}
