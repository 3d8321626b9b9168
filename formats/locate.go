package formats

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// maxPayload bounds how much EXIF data a locator will read
const maxPayload = 16 << 20

// ErrPayloadTooLarge is returned when an embedded EXIF block exceeds maxPayload
var ErrPayloadTooLarge = errors.New("exif payload too large")

// Locator extracts the TIFF-structured EXIF payload from a container.
// A nil slice with a nil error means the file carries no EXIF block.
type Locator interface {
	Locate(r io.ReadSeeker) ([]byte, error)
}

// LocatorFunc adapts a function to Locator
type LocatorFunc func(r io.ReadSeeker) ([]byte, error)

// Locate calls f(r)
func (f LocatorFunc) Locate(r io.ReadSeeker) ([]byte, error) { return f(r) }

var (
	locatorsMu sync.RWMutex
	locators   = make(map[Format]Locator)
)

// RegisterLocator registers the EXIF locator for a format, replacing any
// previous one.
func RegisterLocator(format Format, l Locator) {
	locatorsMu.Lock()
	defer locatorsMu.Unlock()
	locators[format] = l
}

// Locate returns the EXIF payload of the image in r. Formats without a
// registered locator carry no EXIF block.
func Locate(format Format, r io.ReadSeeker) ([]byte, error) {
	locatorsMu.RLock()
	l, ok := locators[format]
	locatorsMu.RUnlock()
	if !ok {
		return nil, nil
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek: %w", err)
	}
	data, err := l.Locate(r)
	if err != nil {
		return nil, fmt.Errorf("locate %s exif: %w", format, err)
	}
	return data, nil
}

// readN reads exactly n bytes, refusing sizes above maxPayload
func readN(r io.Reader, n int64) ([]byte, error) {
	if n < 0 || n > maxPayload {
		return nil, ErrPayloadTooLarge
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
