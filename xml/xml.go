// Package xml provides a XML codec for haxxor.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/haxxor"
)

// Name is the format name used to select this codec.
const Name = "xml"

// xmlCodec implements haxxor.Codec for XML.
type xmlCodec struct{}

// New returns a XML codec.
func New() haxxor.Codec {
	return &xmlCodec{}
}

// Name returns the short format name.
func (c *xmlCodec) Name() string {
	return Name
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
