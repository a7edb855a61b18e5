package haxxor

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Hash layer separators.
const (
	// TagSeparator splits the optional module tag from the rest of a hash.
	TagSeparator = "|"

	// KeySeparator joins the key, IV and ciphertext of a reversible hash.
	KeySeparator = ";"
)

// keyedFields is the number of fields in a key layer: key, IV, ciphertext.
const keyedFields = 3

// Keyed is the decoded key layer of a reversible hash.
type Keyed struct {
	Key     []byte
	IV      []byte
	Payload []byte
}

// FormatTag prefixes body with a module tag.
func FormatTag(tag, body string) string {
	return tag + TagSeparator + body
}

// FormatKeyed joins base64 key, IV and ciphertext into a key layer.
func FormatKeyed(key, iv, payload string) string {
	return key + KeySeparator + iv + KeySeparator + payload
}

// HasTag reports whether hash carries a tag layer.
func HasTag(hash string) bool {
	return strings.Contains(hash, TagSeparator)
}

// StripTag splits hash on the first tag separator.
// When no separator is present the tag is empty and rest is the whole input.
func StripTag(hash string) (tag, rest string) {
	tag, rest, ok := strings.Cut(hash, TagSeparator)
	if !ok {
		return "", hash
	}
	return tag, rest
}

// SplitKeyed splits a tag-stripped body into its key layer fields.
// Callers must check for at least three fields before treating it as keyed.
func SplitKeyed(body string) []string {
	return strings.Split(body, KeySeparator)
}

// Payload returns the cryptographic payload of a tag-stripped body,
// which is always the last field.
func Payload(body string) string {
	fields := SplitKeyed(body)
	return fields[len(fields)-1]
}

// ParseKeyed decodes the key layer of a tag-stripped body.
// Fields are taken from the end so stray separators earlier in the input
// do not shift key, IV and ciphertext.
func ParseKeyed(body string) (Keyed, error) {
	fields := SplitKeyed(body)
	n := len(fields)
	if n < keyedFields {
		return Keyed{}, fmt.Errorf("%w: expected %d fields in key layer, got %d", ErrDecode, keyedFields, n)
	}

	key, err := decodeField("key", fields[n-3])
	if err != nil {
		return Keyed{}, err
	}
	iv, err := decodeField("iv", fields[n-2])
	if err != nil {
		return Keyed{}, err
	}
	payload, err := decodeField("payload", fields[n-1])
	if err != nil {
		return Keyed{}, err
	}

	return Keyed{Key: key, IV: iv, Payload: payload}, nil
}

// encodeField renders binary output as standard padded base64.
func encodeField(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func decodeField(name, s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
	}
	return b, nil
}
