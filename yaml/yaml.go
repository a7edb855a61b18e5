// Package yaml provides a YAML codec for haxxor.
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/haxxor"
)

// Name is the format name used to select this codec.
const Name = "yaml"

// yamlCodec implements haxxor.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() haxxor.Codec {
	return &yamlCodec{}
}

// Name returns the short format name.
func (c *yamlCodec) Name() string {
	return Name
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
