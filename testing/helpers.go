// Package testing provides fixtures and helpers for haxxor tests.
package testing

import (
	"testing"

	"github.com/zoobzio/haxxor"
)

// HelloDigests holds the untagged digest of "hello" for every digest module.
var HelloDigests = map[haxxor.Algorithm]string{
	haxxor.SHA1:      "qvTGHdzF6KLavt4PO0gs2a6pQ00=",
	haxxor.SHA256:    "LPJNul+wow4m6DsqxbninhsWHlwfp0JecwQzYpOLmCQ=",
	haxxor.SHA384:    "WeF0h3dEjGnea4ANejO7+5/xtGPkQ1TDVTvNucZm+pASWjx5+QOXvfX2oT3oKGhP",
	haxxor.SHA512:    "m3HSJL1i83hdltRq0+o9czGb+8KJDKra4t/3JRlnPKcjI8PZm6XBHXx6zG4UuMXaDEZjR1wuXDre9G9zvN7AQw==",
	haxxor.MD5:       "XUFAKrxLKna5cZ2REBfFkg==",
	haxxor.RIPEMD160: "EI8HuDgkEmEsBI0H0T+BQRhEWs0=",
}

// Module returns the registered module for algo or fails the test.
func Module(tb testing.TB, algo haxxor.Algorithm) haxxor.Module {
	tb.Helper()
	m, ok := haxxor.ByAlgorithm(algo)
	if !ok {
		tb.Fatalf("no module registered for %v", algo)
	}
	return m
}

// Seal encrypts value with algo, tag included, or fails the test.
func Seal(tb testing.TB, algo haxxor.Algorithm, value string) string {
	tb.Helper()
	hash, err := Module(tb, algo).Encrypt(value, true)
	if err != nil {
		tb.Fatalf("%v Encrypt() error: %v", algo, err)
	}
	return hash
}

// RequireOpens resolves hash by its tag and checks it decrypts to want.
func RequireOpens(tb testing.TB, hash, want string) {
	tb.Helper()
	m, err := haxxor.ByHash(hash)
	if err != nil {
		tb.Fatalf("ByHash(%q) error: %v", hash, err)
	}
	got, err := m.Decrypt(hash)
	if err != nil {
		tb.Fatalf("%v Decrypt() error: %v", m.Algorithm(), err)
	}
	if got != want {
		tb.Fatalf("%v Decrypt() = %q, want %q", m.Algorithm(), got, want)
	}
}

// PlainAccount is a test type with no sealed fields.
type PlainAccount struct {
	ID   string `json:"id" yaml:"id" xml:"id" msgpack:"id" bson:"id"`
	Name string `json:"name" yaml:"name" xml:"name" msgpack:"name" bson:"name"`
}

// Clone implements Cloner[PlainAccount].
func (a PlainAccount) Clone() PlainAccount { return a }

// SealedAccount is a test type carrying every kind of sealed field.
// Its tags cover every bundled codec.
type SealedAccount struct {
	ID       string `json:"id" yaml:"id" xml:"id" msgpack:"id" bson:"id"`
	Token    string `json:"token" yaml:"token" xml:"token" msgpack:"token" bson:"token" haxxor:"aes256"`
	APIKey   string `json:"api_key" yaml:"api_key" xml:"api_key" msgpack:"api_key" bson:"api_key" haxxor:"aes128"`
	Password string `json:"password" yaml:"password" xml:"password" msgpack:"password" bson:"password" haxxor:"sha512"`
	Checksum string `json:"checksum" yaml:"checksum" xml:"checksum" msgpack:"checksum" bson:"checksum" haxxor:"ripemd160"`
}

// Clone implements Cloner[SealedAccount].
func (a SealedAccount) Clone() SealedAccount {
	return SealedAccount{
		ID:       a.ID,
		Token:    a.Token,
		APIKey:   a.APIKey,
		Password: a.Password,
		Checksum: a.Checksum,
	}
}

// NewSealedAccount returns a populated SealedAccount.
func NewSealedAccount() *SealedAccount {
	return &SealedAccount{
		ID:       "acct-1",
		Token:    "tok-9f8e7d",
		APIKey:   "key-123",
		Password: "hello",
		Checksum: "hello",
	}
}
