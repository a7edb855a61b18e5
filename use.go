package haxxor

import (
	"reflect"
	"sync"
)

// processorKey combines type and codec for cache lookup.
type processorKey struct {
	typ         reflect.Type
	contentType string
}

var (
	processors   = make(map[processorKey]any)
	processorsMu sync.RWMutex
)

// Use returns a cached processor for T and codec, building it on first use.
// Processors are cached by type and codec content type.
func Use[T Cloner[T]](codec Codec) (*Processor[T], error) {
	key := processorKey{typ: reflect.TypeFor[T](), contentType: codec.ContentType()}

	processorsMu.RLock()
	if cached, ok := processors[key]; ok {
		processorsMu.RUnlock()
		return cached.(*Processor[T]), nil
	}
	processorsMu.RUnlock()

	processorsMu.Lock()
	defer processorsMu.Unlock()

	if cached, ok := processors[key]; ok {
		return cached.(*Processor[T]), nil
	}

	p, err := NewProcessor[T](codec)
	if err != nil {
		return nil, err
	}
	processors[key] = p
	return p, nil
}
