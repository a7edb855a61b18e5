package haxxor

import "strings"

// base carries the identity every module shares.
type base struct {
	algo Algorithm
}

func (b base) Algorithm() Algorithm { return b.algo }

func (b base) Tag() string { return b.algo.String() }

func (b base) OwnsTag(hash string) (bool, error) {
	if hash == "" {
		return false, newModuleError(ErrInvalidInput, b.algo, OpOwnsTag)
	}
	if !HasTag(hash) {
		return false, newModuleError(ErrMissingTag, b.algo, OpOwnsTag)
	}
	tag, _ := StripTag(hash)
	return strings.EqualFold(tag, b.Tag()), nil
}

// wrap applies the optional tag layer.
func (b base) wrap(body string, includeTag bool) string {
	if !includeTag {
		return body
	}
	return FormatTag(b.Tag(), body)
}

// unsetModule is the registry's placeholder entry.
// It never produces real output.
type unsetModule struct {
	base
}

func newUnsetModule() Module {
	return &unsetModule{base: base{algo: Unset}}
}

func (m *unsetModule) Reversible() bool { return false }

func (m *unsetModule) Encrypt(string, bool) (string, error) {
	return "", nil
}

func (m *unsetModule) Decrypt(hash string) (string, error) {
	if hash == "" {
		return "", newModuleError(ErrInvalidInput, m.algo, OpDecrypt)
	}
	return "", nil
}

func (m *unsetModule) Validate(_, hash string) (bool, error) {
	if hash == "" {
		return false, newModuleError(ErrInvalidInput, m.algo, OpValidate)
	}
	return false, nil
}

// IsPlaceholder reports whether m is the Unset placeholder, which ByHash
// returns when no module owns a hash's tag.
func IsPlaceholder(m Module) bool {
	return m == nil || m.Algorithm() == Unset
}
