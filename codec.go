package haxxor

// Codec provides content-type aware marshaling.
// Codecs serialize the structs handled by Processor and the CLI's structured output.
type Codec interface {
	// Name returns the short format name (e.g., "json") used to select the codec.
	Name() string

	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
