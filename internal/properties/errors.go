package properties

import "errors"

var (
	// ErrUnsupportedFormat is returned by [FileSource] for files whose
	// format cannot be detected from the extension.
	ErrUnsupportedFormat = errors.New("unsupported property file format")

	// ErrMalformedProperties is returned when a .properties file contains an
	// invalid escape sequence.
	ErrMalformedProperties = errors.New("malformed properties")
)
