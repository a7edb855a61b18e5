package haxxor

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"
)

// Encryption errors.
var (
	ErrInvalidKeySize  = errors.New("invalid key size")
	ErrInvalidIVSize   = errors.New("invalid iv size")
	ErrCiphertextShort = errors.New("ciphertext is not a whole number of blocks")
	ErrInvalidPadding  = errors.New("invalid padding")
)

// aesModule implements AES-CBC with PKCS#7 padding.
// A fresh key and IV are generated on every Encrypt and travel inside the hash.
type aesModule struct {
	base
	keySize int
}

// AES128Module returns the AES-128 module (16-byte keys).
func AES128Module() Module {
	return &aesModule{base: base{algo: AES128}, keySize: 16}
}

// AES256Module returns the AES-256 module (32-byte keys).
func AES256Module() Module {
	return &aesModule{base: base{algo: AES256}, keySize: 32}
}

func (m *aesModule) Reversible() bool { return true }

func (m *aesModule) Encrypt(value string, includeTag bool) (string, error) {
	start := time.Now()
	out, err := m.encrypt(value, includeTag)
	emitEncrypt(m.algo, out, time.Since(start), err)
	return out, err
}

func (m *aesModule) encrypt(value string, includeTag bool) (string, error) {
	key := make([]byte, m.keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	plaintext := pad([]byte(value), aes.BlockSize)
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)

	body := FormatKeyed(encodeField(key), encodeField(iv), encodeField(ciphertext))
	return m.wrap(body, includeTag), nil
}

func (m *aesModule) Decrypt(hash string) (string, error) {
	start := time.Now()
	out, err := m.decrypt(hash)
	emitDecrypt(m.algo, hash, time.Since(start), err)
	return out, err
}

func (m *aesModule) decrypt(hash string) (string, error) {
	if hash == "" {
		return "", newModuleError(ErrInvalidInput, m.algo, OpDecrypt)
	}

	_, body := StripTag(hash)
	keyed, err := ParseKeyed(body)
	if err != nil {
		return "", newDecodeError(m.algo, OpDecrypt, err)
	}

	if len(keyed.Key) != m.keySize {
		return "", newDecodeError(m.algo, OpDecrypt,
			fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeySize, m.keySize, len(keyed.Key)))
	}
	if len(keyed.IV) != aes.BlockSize {
		return "", newDecodeError(m.algo, OpDecrypt,
			fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidIVSize, aes.BlockSize, len(keyed.IV)))
	}
	if len(keyed.Payload) == 0 || len(keyed.Payload)%aes.BlockSize != 0 {
		return "", newDecodeError(m.algo, OpDecrypt, ErrCiphertextShort)
	}

	block, err := aes.NewCipher(keyed.Key)
	if err != nil {
		return "", newDecodeError(m.algo, OpDecrypt, err)
	}

	plaintext := make([]byte, len(keyed.Payload))
	cipher.NewCBCDecrypter(block, keyed.IV).CryptBlocks(plaintext, keyed.Payload)

	plaintext, err = unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", newDecodeError(m.algo, OpDecrypt, err)
	}

	return string(plaintext), nil
}

// Validate decrypts hash and compares the plaintext with value.
func (m *aesModule) Validate(value, hash string) (bool, error) {
	start := time.Now()
	if hash == "" {
		err := newModuleError(ErrInvalidInput, m.algo, OpValidate)
		emitValidate(m.algo, false, time.Since(start), err)
		return false, err
	}

	plain, err := m.Decrypt(hash)
	if err != nil {
		emitValidate(m.algo, false, time.Since(start), err)
		return false, err
	}

	ok := plain == value
	emitValidate(m.algo, ok, time.Since(start), nil)
	return ok, nil
}

// pad applies PKCS#7 padding. A full block is added when data is already aligned.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

// unpad strips and checks PKCS#7 padding.
func unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}

	return data[:len(data)-n], nil
}
