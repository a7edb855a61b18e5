// Package json provides a JSON codec for haxxor.
package json

import (
	"encoding/json"

	"github.com/zoobzio/haxxor"
)

// Name is the format name used to select this codec.
const Name = "json"

// jsonCodec implements haxxor.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() haxxor.Codec {
	return &jsonCodec{}
}

// Name returns the short format name.
func (c *jsonCodec) Name() string {
	return Name
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
