package json

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// *********************************************************************************************************************
// JSON
// *********************************************************************************************************************
// Unmarshal parses the JSON-encoded data and stores the result in the value pointed to by v.
func Unmarshal(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

// MarshalIndent is like Marshal but applies Indent to format the output.
func MarshalIndent(v any) ([]byte, error) {
	return gojson.MarshalIndent(v, "", "  ")
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *gojson.Decoder {
	return gojson.NewDecoder(r)
}

// Decode decodes r into v.
func Decode(r io.Reader, v any) error {
	return NewDecoder(r).Decode(v)
}
