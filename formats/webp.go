package formats

import (
	"bytes"
	"encoding/binary"
	"io"
)

func init() {
	RegisterLocator(FormatWEBP, LocatorFunc(findWebPExif))
}

// findWebPExif walks RIFF chunks looking for EXIF
func findWebPExif(r io.ReadSeeker) ([]byte, error) {
	// Skip RIFF size WEBP
	if _, err := r.Seek(12, io.SeekStart); err != nil {
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
		size := int64(binary.LittleEndian.Uint32(head[4:8]))

		if string(head[:4]) == "EXIF" {
			data, err := readN(r, size)
			if err != nil {
				return nil, err
			}
			// Some writers keep the JPEG APP1 prefix
			return bytes.TrimPrefix(data, exifHeader), nil
		}

		// Chunks are padded to even length
		if _, err := r.Seek(size+size&1, io.SeekCurrent); err != nil {
			return nil, err
		}
	}
}
