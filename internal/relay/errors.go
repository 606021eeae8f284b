package relay

import "errors"

// ErrInvalidEncoding is returned when the request file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("request file is not valid UTF-8")

// ErrNotRegularFile is returned when the request path exists but is a directory
// or another non-regular file.
var ErrNotRegularFile = errors.New("request path is not a regular file")
