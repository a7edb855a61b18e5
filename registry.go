package haxxor

import (
	"sync"
	"time"
)

// Registry maps every Algorithm to its Module.
// A Registry is built once and never mutated, so it is safe for concurrent use.
type Registry struct {
	modules []Module // declaration order
	byAlgo  map[Algorithm]Module
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry holding one module per Algorithm.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = newRegistry(builtinModules())
	})
	return defaultRegistry
}

// builtinModules returns the default module set in declaration order.
func builtinModules() []Module {
	return []Module{
		newUnsetModule(),
		SHA1Module(),
		SHA256Module(),
		SHA384Module(),
		SHA512Module(),
		AES128Module(),
		AES256Module(),
		MD5Module(),
		RIPEMD160Module(),
	}
}

func newRegistry(modules []Module) *Registry {
	r := &Registry{
		modules: modules,
		byAlgo:  make(map[Algorithm]Module, len(modules)),
	}
	for _, m := range modules {
		r.byAlgo[m.Algorithm()] = m
	}
	return r
}

// ByAlgorithm returns the module registered for algo.
func (r *Registry) ByAlgorithm(algo Algorithm) (Module, bool) {
	m, ok := r.byAlgo[algo]
	return m, ok
}

// ByName resolves a module from a case-insensitive algorithm name.
// An empty name is an error; an unknown name is not, it simply reports false.
func (r *Registry) ByName(name string) (Module, bool, error) {
	if name == "" {
		return nil, false, newModuleError(ErrInvalidInput, Unset, OpResolve)
	}
	algo, ok := ParseAlgorithm(name)
	if !ok {
		return nil, false, nil
	}
	m, ok := r.ByAlgorithm(algo)
	return m, ok, nil
}

// ByHash returns the first module, in declaration order, that owns the tag of hash.
// When no module owns the tag the Unset placeholder is returned; use IsPlaceholder
// to detect it.
func (r *Registry) ByHash(hash string) (Module, error) {
	if hash == "" {
		return nil, newModuleError(ErrInvalidInput, Unset, OpResolve)
	}
	if !HasTag(hash) {
		return nil, newModuleError(ErrMissingTag, Unset, OpResolve)
	}

	for _, m := range r.modules {
		owns, err := m.OwnsTag(hash)
		if err != nil {
			return nil, err
		}
		if owns {
			return m, nil
		}
	}

	tag, _ := StripTag(hash)
	emitResolveFallback(tag)
	return r.byAlgo[Unset], nil
}

// Modules returns every registered module in declaration order.
func (r *Registry) Modules() []Module {
	out := make([]Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Reversible returns the modules that support Decrypt, in declaration order.
func (r *Registry) Reversible() []Module {
	var out []Module
	for _, m := range r.modules {
		if m.Reversible() {
			out = append(out, m)
		}
	}
	return out
}

// Cycle attempts to decrypt hash with every reversible module.
// See Attempts for how results are reported.
func (r *Registry) Cycle(hash string) (Attempts, error) {
	start := time.Now()
	if hash == "" {
		err := newModuleError(ErrInvalidInput, Unset, OpCycle)
		emitCycle(hash, 0, 0, time.Since(start), err)
		return nil, err
	}

	attempts := cycle(r.Reversible(), hash)
	emitCycle(hash, len(attempts), len(attempts.Recovered()), time.Since(start), nil)
	return attempts, nil
}

// ByAlgorithm resolves algo against the default registry.
func ByAlgorithm(algo Algorithm) (Module, bool) {
	return Default().ByAlgorithm(algo)
}

// ByName resolves name against the default registry.
func ByName(name string) (Module, bool, error) {
	return Default().ByName(name)
}

// ByHash resolves the tag of hash against the default registry.
func ByHash(hash string) (Module, error) {
	return Default().ByHash(hash)
}

// Modules returns every module of the default registry.
func Modules() []Module {
	return Default().Modules()
}

// Reversible returns the reversible modules of the default registry.
func Reversible() []Module {
	return Default().Reversible()
}

// Cycle runs hash through every reversible module of the default registry.
func Cycle(hash string) (Attempts, error) {
	return Default().Cycle(hash)
}
