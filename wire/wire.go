// Package wire implements the HTTP/1.1 request and response codec used by
// the rest of this module: parsing from a raw byte stream and serializing
// back to bytes, with no framework or stdlib net/http involved.
//
// The codec is grounded on the shape of the teacher's message package
// (parse.go's request-line-then-headers-then-body staging, one field per
// parsed piece) but the read loop itself is rewritten to match a strict
// two-phase growable-accumulator algorithm: grow a buffer 4096 bytes at a
// time until the header block parses, then keep growing until the
// Content-Length-declared body has arrived. Unlike the teacher's
// bufio.Reader.ReadString('\n') line-at-a-time approach, this tolerates a
// read landing in the middle of a header line or body byte.
package wire

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paidy/tableorders/apierr"
)

// scratchSize is the size of each individual read into the accumulator.
// It bounds per-read syscall cost, not the total size of a request or
// response -- the accumulator itself grows without limit.
const scratchSize = 4096

// maxHeaders is the largest number of headers a request or response may
// carry. Beyond this, parsing fails.
const maxHeaders = 64

// Header is a single ordered name/value pair. Names are kept exactly as
// received -- case-sensitive, no canonicalization.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered sequence of header pairs, insertion order preserved.
type Headers []Header

// Get returns the value of the first header matching name exactly
// (case-sensitive), and whether it was found.
func (h Headers) Get(name string) (string, bool) {
	for _, header := range h {
		if header.Name == name {
			return header.Value, true
		}
	}
	return "", false
}

// Request is a parsed HTTP/1.1 request.
type Request struct {
	Method  string
	Path    string
	Headers Headers
	Body    string
}

// Response is a parsed or to-be-serialized HTTP/1.1 response.
//
// StatusCode is only meaningfully absent while parsing a malformed
// response; once constructed for emission it is always set, and must be
// in [100,599].
type Response struct {
	StatusCode uint16
	Headers    Headers
	Body       string
}

// reasonPhrases is the fixed table of status code to reason phrase. Any
// status code emitted outside this table is a programming error.
var reasonPhrases = map[uint16]string{
	200: "OK",
	204: "No Content",
	400: "Bad Request",
	404: "Not Found",
	500: "Internal Server Error",
}

// ReasonPhrase looks up the reason phrase for a status code emitted by
// this module. It panics on an unlisted code -- serialization is internal
// to the core, so an unknown status is always a bug.
func ReasonPhrase(code uint16) string {
	phrase, ok := reasonPhrases[code]
	if !ok {
		panic(fmt.Sprintf("wire: no reason phrase for status code %d", code))
	}
	return phrase
}

// head is the parsed result of a request-line-plus-headers block, shared
// by the request and response parsers.
type head struct {
	firstLine []string // request-line or status-line, split into 3 parts
	headers   Headers
	length    int // byte length of the head, including the trailing blank line
}

// tryParseHead scans acc for a complete CRLF-terminated header block
// ("\r\n\r\n"). It reports ok=false (not an error) when the block hasn't
// arrived yet -- the caller should read more and retry.
func tryParseHead(acc []byte) (h head, ok bool, err error) {
	idx := bytes.Index(acc, []byte("\r\n\r\n"))
	if idx < 0 {
		return head{}, false, nil
	}

	block := acc[:idx]
	lines := bytes.Split(block, []byte("\r\n"))
	if len(lines) == 0 || len(lines[0]) == 0 {
		return head{}, false, &apierr.BadRequest{Reason: "empty request/status line"}
	}

	firstLine := strings.SplitN(string(lines[0]), " ", 3)
	if len(firstLine) != 3 {
		return head{}, false, &apierr.BadRequest{Reason: fmt.Sprintf("malformed request/status line %q", lines[0])}
	}

	headerLines := lines[1:]
	if len(headerLines) > maxHeaders {
		return head{}, false, &apierr.BadRequest{Reason: fmt.Sprintf("too many headers (max %d)", maxHeaders)}
	}

	headers := make(Headers, 0, len(headerLines))
	for _, line := range headerLines {
		sep := bytes.IndexByte(line, ':')
		if sep < 0 {
			return head{}, false, &apierr.BadRequest{Reason: fmt.Sprintf("malformed header line %q", line)}
		}
		name := string(line[:sep])
		value := strings.TrimSpace(string(line[sep+1:]))
		headers = append(headers, Header{Name: name, Value: value})
	}

	return head{firstLine: firstLine, headers: headers, length: idx + 4}, true, nil
}

// contentLength returns the parsed Content-Length header, or 0 if absent
// or unparseable as an unsigned integer.
func contentLength(headers Headers) int {
	raw, ok := headers.Get("Content-Length")
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return int(n)
}

// readUntilHead grows acc by reading from r until a complete header block
// is present, returning the parsed head alongside the accumulator.
func readUntilHead(r io.Reader) (acc []byte, h head, err error) {
	acc = make([]byte, 0, scratchSize)
	scratch := make([]byte, scratchSize)

	for {
		n, readErr := r.Read(scratch)
		if n == 0 {
			return nil, head{}, &apierr.ConnectionReset{}
		}
		acc = append(acc, scratch[:n]...)

		parsed, ok, parseErr := tryParseHead(acc)
		if parseErr != nil {
			return nil, head{}, parseErr
		}
		if ok {
			return acc, parsed, nil
		}
		if readErr != nil && readErr != io.EOF {
			return nil, head{}, readErr
		}
	}
}

// readUntilLength grows acc (already containing at least the header
// block) by reading from r until it holds at least total bytes.
func readUntilLength(r io.Reader, acc []byte, total int) ([]byte, error) {
	scratch := make([]byte, scratchSize)
	for len(acc) < total {
		n, readErr := r.Read(scratch)
		if n == 0 {
			return nil, &apierr.ConnectionReset{}
		}
		acc = append(acc, scratch[:n]...)
		if readErr != nil && readErr != io.EOF && len(acc) < total {
			return nil, readErr
		}
	}
	return acc, nil
}

// ParseRequest parses a single HTTP/1.1 request from r using the two-phase
// growable-accumulator algorithm: grow until the header block parses, then
// grow until the declared Content-Length body has fully arrived.
func ParseRequest(r io.Reader) (*Request, error) {
	acc, h, err := readUntilHead(r)
	if err != nil {
		return nil, err
	}

	length := contentLength(h.headers)
	acc, err = readUntilLength(r, acc, h.length+length)
	if err != nil {
		return nil, err
	}

	body := acc[h.length : h.length+length]
	return &Request{
		Method:  h.firstLine[0],
		Path:    h.firstLine[1],
		Headers: h.headers,
		Body:    string(body),
	}, nil
}

// ParseResponse parses a single HTTP/1.1 response from r using the same
// two-phase algorithm as ParseRequest, against a status-line grammar
// instead of a request-line grammar.
func ParseResponse(r io.Reader) (*Response, error) {
	acc, h, err := readUntilHead(r)
	if err != nil {
		return nil, err
	}

	code, err := strconv.ParseUint(h.firstLine[1], 10, 16)
	if err != nil {
		return nil, &apierr.BadRequest{Reason: fmt.Sprintf("malformed status code %q", h.firstLine[1])}
	}

	length := contentLength(h.headers)
	acc, err = readUntilLength(r, acc, h.length+length)
	if err != nil {
		return nil, err
	}

	body := acc[h.length : h.length+length]
	return &Response{
		StatusCode: uint16(code),
		Headers:    h.headers,
		Body:       string(body),
	}, nil
}

// Encode serializes a response to its wire representation:
//
//	HTTP/1.1 <code> <reason>\r\n
//	Content-Length: <body-byte-length>\r\n
//	<each extra header as "Name:Value\r\n">
//	\r\n
//	<body>
//
// No Content-Length supplied by the caller is honored -- it is always
// recomputed from the body's byte length, and any caller-supplied
// Content-Length header is dropped to avoid emitting it twice.
func (resp *Response) Encode() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "HTTP/1.1 %d %s\r\n", resp.StatusCode, ReasonPhrase(resp.StatusCode))
	fmt.Fprintf(&buf, "Content-Length: %d\r\n", len(resp.Body))
	for _, header := range resp.Headers {
		if header.Name == "Content-Length" {
			continue
		}
		fmt.Fprintf(&buf, "%s:%s\r\n", header.Name, header.Value)
	}
	buf.WriteString("\r\n")
	buf.WriteString(resp.Body)
	return buf.Bytes()
}

// EncodeRequest serializes a client-side request to its wire
// representation:
//
//	<method> <endpoint> HTTP/1.1\r\n
//	Content-Length: <body-byte-length>\r\n\r\n
//	<body>
func EncodeRequest(method, endpoint, body string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s HTTP/1.1\r\n", method, endpoint)
	fmt.Fprintf(&buf, "Content-Length: %d\r\n\r\n", len(body))
	buf.WriteString(body)
	return buf.Bytes()
}
