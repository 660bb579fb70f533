package http11

import "errors"

// Request errors
var (
	// ErrNoRequest indicates the peer sent nothing before closing.
	ErrNoRequest = errors.New("http11: no request data")

	// ErrInvalidRequestLine indicates the request line is malformed.
	// Request line format: METHOD SP target SP HTTP/x.y
	ErrInvalidRequestLine = errors.New("http11: invalid request line")

	// ErrEmptyTarget indicates the request line carries no target.
	ErrEmptyTarget = errors.New("http11: empty request target")

	// ErrRequestTooLarge indicates the head exceeded the read limit.
	ErrRequestTooLarge = errors.New("http11: request head too large")
)

// Response errors
var (
	// ErrInvalidHeader indicates a header name or value containing CR or LF.
	ErrInvalidHeader = errors.New("http11: invalid HTTP header")

	// ErrHeadersAlreadyWritten indicates headers were modified after being sent.
	ErrHeadersAlreadyWritten = errors.New("http11: headers already written")
)
