package wire

import "errors"

// ErrMalformedFrame is returned when the bytes accumulated so far cannot be
// a valid STOMP frame, as opposed to simply being incomplete.
var ErrMalformedFrame = errors.New("wire: malformed frame")

// ErrHeaderLine is returned when a header line has no ":" separator.
var ErrHeaderLine = errors.New("wire: header line missing ':' separator")
