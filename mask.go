package haxxor

import "strings"

// MaskHash hides the key and IV of a reversible hash so it can be logged.
// The tag and payload are preserved; digest hashes carry no key material and
// are returned unchanged.
//
//	AES128|a2V5;aXY=;Y2lwaGVy -> AES128|****;****;Y2lwaGVy
func MaskHash(hash string) string {
	tag, body := StripTag(hash)

	fields := SplitKeyed(body)
	n := len(fields)
	if n < keyedFields {
		return hash
	}

	masked := make([]string, n)
	copy(masked, fields)
	for i := 0; i < n-1; i++ {
		masked[i] = strings.Repeat("*", len(fields[i]))
	}

	out := strings.Join(masked, KeySeparator)
	if HasTag(hash) {
		return FormatTag(tag, out)
	}
	return out
}
