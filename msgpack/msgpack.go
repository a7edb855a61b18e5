// Package msgpack provides a MessagePack codec for haxxor.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/haxxor"
)

// Name is the format name used to select this codec.
const Name = "msgpack"

// msgpackCodec implements haxxor.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() haxxor.Codec {
	return &msgpackCodec{}
}

// Name returns the short format name.
func (c *msgpackCodec) Name() string {
	return Name
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
