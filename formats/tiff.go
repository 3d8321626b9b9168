package formats

import "io"

func init() {
	RegisterLocator(FormatTIFF, LocatorFunc(readTIFF))
}

// readTIFF returns the whole file: a TIFF is its own EXIF structure
func readTIFF(r io.ReadSeeker) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPayload+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxPayload {
		return nil, ErrPayloadTooLarge
	}
	return data, nil
}
