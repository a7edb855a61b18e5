package haxxor_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/haxxor"
)

// testCodec is a simple JSON codec for testing without importing haxxor/json.
type testCodec struct{}

func (c *testCodec) Name() string        { return "json" }
func (c *testCodec) ContentType() string { return "application/json" }

func (c *testCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *testCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// --- Public API walkthrough ---

func TestAPI_EncryptResolveDecrypt(t *testing.T) {
	m, ok := haxxor.ByAlgorithm(haxxor.AES256)
	if !ok {
		t.Fatal("AES256 not registered")
	}

	hash, err := m.Encrypt("secret", true)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	owner, err := haxxor.ByHash(hash)
	if err != nil {
		t.Fatalf("ByHash() error: %v", err)
	}
	plain, err := owner.Decrypt(hash)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	if plain != "secret" {
		t.Errorf("Decrypt() = %q, want %q", plain, "secret")
	}
}

func TestAPI_SHA256Hello(t *testing.T) {
	m, _, err := haxxor.ByName("sha256")
	if err != nil {
		t.Fatalf("ByName() error: %v", err)
	}

	hash, _ := m.Encrypt("hello", true)
	if hash != "SHA256|LPJNul+wow4m6DsqxbninhsWHlwfp0JecwQzYpOLmCQ=" {
		t.Errorf("Encrypt(hello) = %q", hash)
	}

	ok, err := m.Validate("hello", hash)
	if err != nil || !ok {
		t.Errorf("Validate() = (%v, %v), want (true, nil)", ok, err)
	}
}

func TestAPI_ErrorsAreMatchable(t *testing.T) {
	short, _ := haxxor.AES128Module().Encrypt("hello", true)

	_, err := haxxor.AES256Module().Decrypt(short)
	if !errors.Is(err, haxxor.ErrDecode) {
		t.Fatalf("Decrypt() error = %v, want ErrDecode", err)
	}

	var me *haxxor.ModuleError
	if !errors.As(err, &me) {
		t.Fatal("error should be a *ModuleError")
	}
	if me.Algorithm != haxxor.AES256 || me.Operation != haxxor.OpDecrypt {
		t.Errorf("ModuleError = %v/%s", me.Algorithm, me.Operation)
	}
	if !errors.Is(me.Cause, haxxor.ErrInvalidKeySize) {
		t.Errorf("Cause = %v, want ErrInvalidKeySize", me.Cause)
	}
	if !errors.Is(err, haxxor.ErrInvalidKeySize) {
		t.Error("errors.Is should reach the cause sentinel")
	}
}

// --- Cloner interface tests ---

type clonerTestStruct struct {
	Value string            `haxxor:"aes128"`
	Slice []string          `haxxor:"aes128"`
	Map   map[string]string `haxxor:"aes128"`
}

func (c clonerTestStruct) Clone() clonerTestStruct {
	clone := clonerTestStruct{Value: c.Value}
	if c.Slice != nil {
		clone.Slice = make([]string, len(c.Slice))
		copy(clone.Slice, c.Slice)
	}
	if c.Map != nil {
		clone.Map = make(map[string]string, len(c.Map))
		for k, v := range c.Map {
			clone.Map[k] = v
		}
	}
	return clone
}

func TestCloner_OriginalUntouched(t *testing.T) {
	proc, err := haxxor.NewProcessor[clonerTestStruct](&testCodec{})
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	original := &clonerTestStruct{
		Value: "v",
		Slice: []string{"a"},
		Map:   map[string]string{"k": "m"},
	}

	if _, err := proc.Seal(context.Background(), original); err != nil {
		t.Fatalf("Seal() error: %v", err)
	}

	if original.Value != "v" || original.Slice[0] != "a" || original.Map["k"] != "m" {
		t.Errorf("original modified: %+v", original)
	}
}

// --- Override interface tests ---

type sealableTest struct {
	Value string
}

func (s sealableTest) Clone() sealableTest { return s }

func (s *sealableTest) Seal(r *haxxor.Registry) error {
	m, _ := r.ByAlgorithm(haxxor.MD5)
	out, err := m.Encrypt(s.Value, true)
	s.Value = out
	return err
}

type openableTest struct {
	Value string
}

func (o openableTest) Clone() openableTest { return o }

func (o *openableTest) Open(*haxxor.Registry) error {
	o.Value = strings.ToUpper(o.Value)
	return nil
}

func TestSealable_Interface(_ *testing.T) {
	var _ haxxor.Sealable = &sealableTest{}
}

func TestOpenable_Interface(_ *testing.T) {
	var _ haxxor.Openable = &openableTest{}
}

func TestSealable_Used(t *testing.T) {
	proc, err := haxxor.NewProcessor[sealableTest](&testCodec{})
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	sealed, err := proc.Seal(context.Background(), &sealableTest{Value: "hello"})
	if err != nil {
		t.Fatalf("Seal() error: %v", err)
	}
	if sealed.Value != "MD5|XUFAKrxLKna5cZ2REBfFkg==" {
		t.Errorf("Value = %q, want MD5 hash", sealed.Value)
	}
}

func TestOpenable_Used(t *testing.T) {
	proc, err := haxxor.NewProcessor[openableTest](&testCodec{})
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	opened, err := proc.Open(context.Background(), &openableTest{Value: "quiet"})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if opened.Value != "QUIET" {
		t.Errorf("Value = %q, want %q", opened.Value, "QUIET")
	}
}

type sealErrorTest struct{}

func (s sealErrorTest) Clone() sealErrorTest { return s }

func (s *sealErrorTest) Seal(*haxxor.Registry) error {
	return errors.New("seal failed")
}

func TestSealable_ErrorPropagation(t *testing.T) {
	proc, err := haxxor.NewProcessor[sealErrorTest](&testCodec{})
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	_, err = proc.Store(context.Background(), &sealErrorTest{})
	if err == nil || !strings.Contains(err.Error(), "seal failed") {
		t.Errorf("Store() error = %v, want seal failure", err)
	}
}
