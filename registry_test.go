package haxxor

import (
	"errors"
	"testing"
)

func TestDefault_Singleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same registry")
	}
}

func TestModules_DeclarationOrder(t *testing.T) {
	mods := Modules()
	algos := Algorithms()

	if len(mods) != len(algos) {
		t.Fatalf("len(Modules()) = %d, want %d", len(mods), len(algos))
	}
	for i, m := range mods {
		if m.Algorithm() != algos[i] {
			t.Errorf("Modules()[%d] = %v, want %v", i, m.Algorithm(), algos[i])
		}
	}
}

func TestModules_ReturnsCopy(t *testing.T) {
	mods := Modules()
	mods[0] = nil
	if Modules()[0] == nil {
		t.Error("Modules() should return a copy")
	}
}

func TestReversible(t *testing.T) {
	rev := Reversible()
	if len(rev) != 2 {
		t.Fatalf("len(Reversible()) = %d, want 2", len(rev))
	}
	if rev[0].Algorithm() != AES128 || rev[1].Algorithm() != AES256 {
		t.Errorf("Reversible() = [%v %v], want [AES128 AES256]", rev[0].Algorithm(), rev[1].Algorithm())
	}
}

func TestByAlgorithm(t *testing.T) {
	for _, algo := range Algorithms() {
		m, ok := ByAlgorithm(algo)
		if !ok {
			t.Fatalf("ByAlgorithm(%v) not found", algo)
		}
		if m.Algorithm() != algo {
			t.Errorf("ByAlgorithm(%v) = %v", algo, m.Algorithm())
		}
	}

	if _, ok := ByAlgorithm(Algorithm(99)); ok {
		t.Error("ByAlgorithm(99) should not be found")
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name      string
		wantAlgo  Algorithm
		wantFound bool
	}{
		{"SHA1", SHA1, true},
		{"aes256", AES256, true},
		{"RipeMD160", RIPEMD160, true},
		{"6", AES256, true},
		{"Unset", Unset, true},
		{"whirlpool", Unset, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, found, err := ByName(tt.name)
			if err != nil {
				t.Fatalf("ByName() error: %v", err)
			}
			if found != tt.wantFound {
				t.Fatalf("ByName(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
			if found && m.Algorithm() != tt.wantAlgo {
				t.Errorf("ByName(%q) = %v, want %v", tt.name, m.Algorithm(), tt.wantAlgo)
			}
			if !found && m != nil {
				t.Errorf("ByName(%q) module = %v, want nil", tt.name, m)
			}
		})
	}
}

func TestByName_Empty(t *testing.T) {
	if _, _, err := ByName(""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ByName(\"\") error = %v, want ErrInvalidInput", err)
	}
}

func TestByHash_TagRoundTrip(t *testing.T) {
	for _, m := range Modules() {
		if m.Algorithm() == Unset {
			continue
		}
		t.Run(m.Tag(), func(t *testing.T) {
			hash, err := m.Encrypt("hello", true)
			if err != nil {
				t.Fatalf("Encrypt() error: %v", err)
			}
			got, err := ByHash(hash)
			if err != nil {
				t.Fatalf("ByHash() error: %v", err)
			}
			if got.Algorithm() != m.Algorithm() {
				t.Errorf("ByHash(%q) = %v, want %v", hash, got.Algorithm(), m.Algorithm())
			}
		})
	}
}

func TestByHash_CaseInsensitive(t *testing.T) {
	m, err := ByHash("sha512|abc=")
	if err != nil {
		t.Fatalf("ByHash() error: %v", err)
	}
	if m.Algorithm() != SHA512 {
		t.Errorf("ByHash() = %v, want SHA512", m.Algorithm())
	}
}

func TestByHash_UnknownTagFallsBack(t *testing.T) {
	m, err := ByHash("BLAKE3|abc=")
	if err != nil {
		t.Fatalf("ByHash() error: %v", err)
	}
	if !IsPlaceholder(m) {
		t.Errorf("ByHash(unknown) = %v, want placeholder", m.Algorithm())
	}
}

func TestByHash_Errors(t *testing.T) {
	if _, err := ByHash(""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ByHash(\"\") error = %v, want ErrInvalidInput", err)
	}
	if _, err := ByHash("qvTGHdzF6KLavt4PO0gs2a6pQ00="); !errors.Is(err, ErrMissingTag) {
		t.Errorf("ByHash(untagged) error = %v, want ErrMissingTag", err)
	}
}

func TestNewRegistry_Subset(t *testing.T) {
	r := newRegistry([]Module{newUnsetModule(), MD5Module()})

	if _, ok := r.ByAlgorithm(SHA1); ok {
		t.Error("subset registry should not know SHA1")
	}

	m, err := r.ByHash("SHA1|abc=")
	if err != nil {
		t.Fatalf("ByHash() error: %v", err)
	}
	if !IsPlaceholder(m) {
		t.Error("unregistered tag should resolve to the placeholder")
	}

	if len(r.Reversible()) != 0 {
		t.Error("subset registry has no reversible modules")
	}
}
