package haxxor

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

// TagName is the struct tag that marks a field for sealing: `haxxor:"aes256"`.
const TagName = "haxxor"

func init() {
	sentinel.Tag(TagName)
}

// Processor seals and opens tagged struct fields.
// Seal turns every tagged field into an encoded hash of the tag's algorithm;
// Open decrypts the reversible ones again, resolving each value by its own
// hash tag so data sealed under an older algorithm still opens.
//
// Supported field types are string, []string and map[K]string, in nested
// structs and pointers to structs as well.
//
// Processors are immutable after construction and safe for concurrent use.
type Processor[T Cloner[T]] struct {
	codec    Codec
	registry *Registry
	fields   []fieldPlan
	typeName string
}

// fieldPlan describes how to transform a single field.
type fieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	name       string // dotted field name for errors
	module     Module // module named by the tag
	ptrIndices []int  // indices where pointer dereference is needed
	isSlice    bool   // true if field is []string
	isMap      bool   // true if field is map[K]string
}

// NewProcessor creates a Processor for type T that serializes with codec.
// It fails with ErrInvalidTag when a tag names an unknown algorithm or Unset.
func NewProcessor[T Cloner[T]](codec Codec) (*Processor[T], error) {
	spec := sentinel.Scan[T]()

	p := &Processor[T]{
		codec:    codec,
		registry: Default(),
		typeName: spec.TypeName,
	}

	if err := p.buildPlans(spec, nil, nil, ""); err != nil {
		return nil, err
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), spec.TypeName)
	return p, nil
}

// buildPlans recursively collects tagged fields, descending into nested structs.
func (p *Processor[T]) buildPlans(spec sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := p.buildPlans(*nested, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nested := scanNestedType(field.ReflectType.Elem()); nested != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := p.buildPlans(*nested, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		val, ok := field.Tags[TagName]
		if !ok {
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String
		if !isString && !isSlice && !isMap {
			return fmt.Errorf("%w: field %s has unsupported type %s", ErrInvalidTag, fullName, rt)
		}

		algo, ok := ParseAlgorithm(val)
		if !ok || algo == Unset {
			return fmt.Errorf("%w: unknown algorithm %q for field %s", ErrInvalidTag, val, fullName)
		}
		m, _ := p.registry.ByAlgorithm(algo)

		p.fields = append(p.fields, fieldPlan{
			index:      fullIndex,
			name:       fullName,
			module:     m,
			ptrIndices: ptrIndices,
			isSlice:    isSlice,
			isMap:      isMap,
		})
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(TagName); ok {
			fm.Tags[TagName] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// Fields returns the dotted names of every tagged field.
func (p *Processor[T]) Fields() []string {
	names := make([]string, len(p.fields))
	for i, f := range p.fields {
		names[i] = f.name
	}
	return names
}

// Seal returns a clone of obj with every tagged field replaced by a tagged hash.
func (p *Processor[T]) Seal(ctx context.Context, obj *T) (*T, error) {
	start := time.Now()
	var retErr error
	defer func() {
		emitSealComplete(ctx, p.typeName, len(p.fields), time.Since(start), retErr)
	}()

	if obj == nil {
		return nil, nil
	}
	clone := (*obj).Clone()

	if s, ok := any(&clone).(Sealable); ok {
		if err := s.Seal(p.registry); err != nil {
			retErr = fmt.Errorf("seal: %w", err)
			return nil, retErr
		}
		return &clone, nil
	}

	if err := p.apply(&clone, "seal", p.sealValue); err != nil {
		retErr = err
		return nil, retErr
	}
	return &clone, nil
}

// Open returns a clone of obj with reversible fields decrypted.
// Digest fields and empty values are left untouched.
func (p *Processor[T]) Open(ctx context.Context, obj *T) (*T, error) {
	start := time.Now()
	var retErr error
	defer func() {
		emitOpenComplete(ctx, p.typeName, len(p.fields), time.Since(start), retErr)
	}()

	if obj == nil {
		return nil, nil
	}
	clone := (*obj).Clone()

	if o, ok := any(&clone).(Openable); ok {
		if err := o.Open(p.registry); err != nil {
			retErr = fmt.Errorf("open: %w", err)
			return nil, retErr
		}
		return &clone, nil
	}

	if err := p.apply(&clone, "open", p.openValue); err != nil {
		retErr = err
		return nil, retErr
	}
	return &clone, nil
}

// Verify reports whether value matches the sealed string field named field.
func (p *Processor[T]) Verify(_ context.Context, obj *T, field, value string) (bool, error) {
	if obj == nil {
		return false, fmt.Errorf("%w: nil object", ErrInvalidInput)
	}

	for _, plan := range p.fields {
		if plan.name != field {
			continue
		}
		if plan.isSlice || plan.isMap {
			return false, newFieldError("verify", field, fmt.Errorf("%w: not a string field", ErrInvalidInput))
		}

		rv, ok := getField(reflect.ValueOf(obj).Elem(), plan)
		if !ok {
			return false, newFieldError("verify", field, fmt.Errorf("%w: nil parent", ErrInvalidInput))
		}

		hash := rv.String()
		ok, err := p.owner(plan, hash).Validate(value, hash)
		if err != nil {
			return false, newFieldError("verify", field, err)
		}
		return ok, nil
	}

	return false, fmt.Errorf("%w: no sealed field %q", ErrInvalidInput, field)
}

// Store seals obj and marshals the result.
func (p *Processor[T]) Store(ctx context.Context, obj *T) ([]byte, error) {
	sealed, err := p.Seal(ctx, obj)
	if err != nil {
		return nil, err
	}
	if sealed == nil {
		return p.codec.Marshal(nil)
	}
	data, err := p.codec.Marshal(sealed)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return data, nil
}

// Load unmarshals data and opens the result.
func (p *Processor[T]) Load(ctx context.Context, data []byte) (*T, error) {
	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return p.Open(ctx, &obj)
}

// sealValue encrypts a single value with the field's module.
func (p *Processor[T]) sealValue(plan fieldPlan, value string) (string, error) {
	return plan.module.Encrypt(value, true)
}

// openValue decrypts a single value when its owning module is reversible.
func (p *Processor[T]) openValue(plan fieldPlan, value string) (string, error) {
	if value == "" {
		return value, nil
	}
	m := p.owner(plan, value)
	if !m.Reversible() {
		return value, nil
	}
	return m.Decrypt(value)
}

// owner resolves the module that produced value, falling back to the field's
// declared module when the value is untagged or the tag is unknown.
func (p *Processor[T]) owner(plan fieldPlan, value string) Module {
	if !HasTag(value) {
		return plan.module
	}
	m, err := p.registry.ByHash(value)
	if err != nil || IsPlaceholder(m) {
		return plan.module
	}
	return m
}

// apply runs fn over every tagged value of obj.
func (p *Processor[T]) apply(obj *T, op string, fn func(fieldPlan, string) (string, error)) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.fields {
		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if !elem.CanSet() {
					continue
				}
				out, err := fn(plan, elem.String())
				if err != nil {
					return newFieldError(op, fmt.Sprintf("%s[%d]", plan.name, i), err)
				}
				elem.SetString(out)
			}
			continue
		}

		if plan.isMap {
			if field.IsNil() {
				continue
			}
			iter := field.MapRange()
			for iter.Next() {
				k, v := iter.Key(), iter.Value()
				out, err := fn(plan, v.String())
				if err != nil {
					return newFieldError(op, fmt.Sprintf("%s[%v]", plan.name, k.Interface()), err)
				}
				field.SetMapIndex(k, reflect.ValueOf(out).Convert(field.Type().Elem()))
			}
			continue
		}

		if !field.CanSet() {
			continue
		}
		out, err := fn(plan, field.String())
		if err != nil {
			return newFieldError(op, plan.name, err)
		}
		field.SetString(out)
	}

	return nil
}

// getField navigates a field path, dereferencing pointers as needed.
func getField(rv reflect.Value, plan fieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
