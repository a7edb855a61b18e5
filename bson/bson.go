// Package bson provides a BSON codec for haxxor.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zoobzio/haxxor"
)

// Name is the format name used to select this codec.
const Name = "bson"

// bsonCodec implements haxxor.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() haxxor.Codec {
	return &bsonCodec{}
}

// Name returns the short format name.
func (c *bsonCodec) Name() string {
	return Name
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
