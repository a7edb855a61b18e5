package haxxor

import (
	"crypto/md5"  // #nosec G501 -- offered for compatibility with existing hashes
	"crypto/sha1" // #nosec G505 -- offered for compatibility with existing hashes
	"crypto/sha512"
	"hash"
	"time"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for RIPEMD160 hashes
)

// digestModule implements a one-way digest.
// The body of its hash is the base64 digest of the UTF-8 value.
// Use for fingerprinting/identification, NOT for passwords.
type digestModule struct {
	base
	newHash func() hash.Hash
}

func newDigestModule(algo Algorithm, newHash func() hash.Hash) Module {
	return &digestModule{base: base{algo: algo}, newHash: newHash}
}

// SHA1Module returns the SHA-1 digest module.
func SHA1Module() Module { return newDigestModule(SHA1, sha1.New) }

// SHA256Module returns the SHA-256 digest module.
func SHA256Module() Module { return newDigestModule(SHA256, sha256.New) }

// SHA384Module returns the SHA-384 digest module.
func SHA384Module() Module { return newDigestModule(SHA384, sha512.New384) }

// SHA512Module returns the SHA-512 digest module.
func SHA512Module() Module { return newDigestModule(SHA512, sha512.New) }

// MD5Module returns the MD5 digest module.
func MD5Module() Module { return newDigestModule(MD5, md5.New) }

// RIPEMD160Module returns the RIPEMD-160 digest module.
func RIPEMD160Module() Module { return newDigestModule(RIPEMD160, ripemd160.New) }

func (m *digestModule) Reversible() bool { return false }

func (m *digestModule) Encrypt(value string, includeTag bool) (string, error) {
	start := time.Now()
	h := m.newHash()
	h.Write([]byte(value)) // hash.Hash writes never fail
	out := m.wrap(encodeField(h.Sum(nil)), includeTag)
	emitEncrypt(m.algo, out, time.Since(start), nil)
	return out, nil
}

func (m *digestModule) Decrypt(hash string) (string, error) {
	if hash == "" {
		return "", newModuleError(ErrInvalidInput, m.algo, OpDecrypt)
	}
	return "", newModuleError(ErrUnsupported, m.algo, OpDecrypt)
}

// Validate re-hashes value and compares it with the payload of hash.
func (m *digestModule) Validate(value, hash string) (bool, error) {
	start := time.Now()
	if hash == "" {
		err := newModuleError(ErrInvalidInput, m.algo, OpValidate)
		emitValidate(m.algo, false, time.Since(start), err)
		return false, err
	}

	want, _ := m.Encrypt(value, false)

	_, body := StripTag(hash)
	ok := Payload(body) == want
	emitValidate(m.algo, ok, time.Since(start), nil)
	return ok, nil
}
