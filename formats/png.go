package formats

import (
	"encoding/binary"
	"io"
)

func init() {
	RegisterLocator(FormatPNG, LocatorFunc(findPNGExif))
}

// findPNGExif walks PNG chunks looking for eXIf
func findPNGExif(r io.ReadSeeker) ([]byte, error) {
	// Skip signature
	if _, err := r.Seek(8, io.SeekStart); err != nil {
		return nil, err
	}

	var head [8]byte
	for {
		if _, err := io.ReadFull(r, head[:]); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
		length := int64(binary.BigEndian.Uint32(head[:4]))
		typ := string(head[4:8])

		switch typ {
		case "eXIf":
			return readN(r, length)
		case "IEND":
			return nil, nil
		}

		// Skip data and CRC
		if _, err := r.Seek(length+4, io.SeekCurrent); err != nil {
			return nil, err
		}
	}
}
