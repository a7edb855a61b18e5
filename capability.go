package haxxor

import (
	"strconv"
	"strings"
)

// Algorithm identifies a supported module.
// The zero value is Unset, the registry's placeholder entry.
type Algorithm int

// Declaration order is significant: it is the order the registry scans when
// resolving a hash and the order cycle results are reported in.
const (
	Unset Algorithm = iota
	SHA1
	SHA256
	SHA384
	SHA512
	AES128
	AES256
	MD5
	RIPEMD160
)

var algorithmNames = [...]string{
	Unset:     "Unset",
	SHA1:      "SHA1",
	SHA256:    "SHA256",
	SHA384:    "SHA384",
	SHA512:    "SHA512",
	AES128:    "AES128",
	AES256:    "AES256",
	MD5:       "MD5",
	RIPEMD160: "RIPEMD160",
}

// String returns the canonical name, which doubles as the wire tag.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return algorithmNames[a]
}

// Valid reports whether a is one of the declared algorithms.
func (a Algorithm) Valid() bool {
	return a >= Unset && int(a) < len(algorithmNames)
}

// Algorithms returns every declared algorithm in declaration order, Unset included.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range algorithmNames {
		out[i] = Algorithm(i)
	}
	return out
}

// ParseAlgorithm resolves a name case-insensitively.
// Numeric identifiers ("5") are accepted as long as they name a declared algorithm.
func ParseAlgorithm(name string) (Algorithm, bool) {
	name = strings.TrimSpace(name)
	for i, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			return Algorithm(i), true
		}
	}
	if n, err := strconv.Atoi(name); err == nil {
		if a := Algorithm(n); a.Valid() {
			return a, true
		}
	}
	return Unset, false
}

// IsValidAlgorithm returns true if name parses to a declared algorithm.
func IsValidAlgorithm(name string) bool {
	_, ok := ParseAlgorithm(name)
	return ok
}
