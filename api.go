// Package haxxor encrypts, hashes, decrypts and validates text values using
// self-describing hashes.
//
// Every hash produced by a module can carry the name of the algorithm that
// produced it, and hashes from reversible algorithms carry the key material
// needed to invert them. Callers never track which algorithm, key or IV was
// used: the hash is enough.
//
// # Hash Format
//
//	hash := [ tag "|" ] body
//	body := digest_b64                       (digest modules)
//	      | key_b64 ";" iv_b64 ";" cipher_b64  (reversible modules)
//
// Tags are algorithm names and match case-insensitively:
//
//	SHA256|LPJNul+wow4m6DsqxbninhsWHlwfp0JecwQzYpOLmCQ=
//	AES128|<key>;<iv>;<ciphertext>
//
// # Modules
//
// One Module exists per Algorithm:
//
//   - SHA1, SHA256, SHA384, SHA512, MD5, RIPEMD160 - one-way digests
//   - AES128, AES256 - AES-CBC with a fresh random key and IV per call
//   - Unset - placeholder returned when a tag matches nothing
//
// # Basic Usage
//
//	m, _ := haxxor.ByAlgorithm(haxxor.AES256)
//	hash, _ := m.Encrypt("secret", true)
//
//	// Later, with nothing but the hash:
//	owner, _ := haxxor.ByHash(hash)
//	plain, _ := owner.Decrypt(hash)
//
//	// Or try every reversible module:
//	attempts, _ := haxxor.Cycle(hash)
//
// # Struct Fields
//
// Processor seals and opens tagged struct fields:
//
//	type Account struct {
//	    Token    string `json:"token" haxxor:"aes256"`
//	    Password string `json:"password" haxxor:"sha512"`
//	}
//
//	proc, _ := haxxor.NewProcessor[Account](json.New())
//	data, _ := proc.Store(ctx, &account) // fields become tagged hashes
//	acct, _ := proc.Load(ctx, data)      // Token is decrypted again
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package haxxor

// Module transforms text to and from one algorithm's encoded hash.
// Modules are stateless and safe for concurrent use.
type Module interface {
	// Algorithm returns the identifier this module implements.
	Algorithm() Algorithm

	// Tag returns the algorithm name used as the hash tag.
	Tag() string

	// Reversible reports whether Decrypt is supported.
	Reversible() bool

	// Encrypt encodes value, prefixing the module tag when includeTag is set.
	Encrypt(value string, includeTag bool) (string, error)

	// Decrypt recovers the plaintext of hash. The tag is optional on input.
	Decrypt(hash string) (string, error)

	// Validate reports whether hash was produced from value.
	Validate(value, hash string) (bool, error)

	// OwnsTag reports whether the tag of hash names this module.
	OwnsTag(hash string) (bool, error)
}
