package meta

// DecodeError reports that the input could not be read as an image at all.
// It is the only failure that aborts an analysis.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "not a valid image: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
