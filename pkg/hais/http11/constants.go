// Package http11 implements the HTTP/1.1 subset the file server speaks:
// a tokenizer for the request head and a response writer that emits a
// status line, ordered headers and a streamed body.
package http11

// Status codes the server emits.
const (
	StatusOK                  = 200
	StatusPartialContent      = 206
	StatusNotModified         = 304
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusRangeNotSatisfiable = 416
	StatusInternalServerError = 500
)

// Pre-compiled status lines, CRLF included.
var (
	status200Bytes = []byte("HTTP/1.1 200 OK\r\n")
	status206Bytes = []byte("HTTP/1.1 206 Partial Content\r\n")
	status304Bytes = []byte("HTTP/1.1 304 Not Modified\r\n")
	status400Bytes = []byte("HTTP/1.1 400 Bad Request\r\n")
	status404Bytes = []byte("HTTP/1.1 404 Not Found\r\n")
	status416Bytes = []byte("HTTP/1.1 416 Range Not Satisfiable\r\n")
	status500Bytes = []byte("HTTP/1.1 500 Internal Server Error\r\n")
)

// Header names.
const (
	HeaderAcceptRanges    = "Accept-Ranges"
	HeaderConnection      = "Connection"
	HeaderContentLength   = "Content-Length"
	HeaderContentRange    = "Content-Range"
	HeaderContentType     = "Content-Type"
	HeaderIfModifiedSince = "If-Modified-Since"
	HeaderLastModified    = "Last-Modified"
	HeaderRange           = "Range"
	HeaderServer          = "Server"
)

// Methods recognized on the request line. Neither changes behavior.
const (
	MethodGET  = "GET"
	MethodPOST = "POST"
)

var (
	crlfBytes      = []byte("\r\n")
	colonSpace     = []byte(": ")
	headTerminator = []byte("\r\n\r\n")
)

const protoPrefix = "HTTP/"
