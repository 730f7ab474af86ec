package codec

import (
	"reflect"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/raydium-io/raydium-amm/codec/internal/wire"
	"github.com/raydium-io/raydium-amm/errors"
)

var (
	uint128Type = reflect.TypeOf(Uint128{})

	scalarKinds = map[Kind]reflect.Kind{
		KindU8:  reflect.Uint8,
		KindU16: reflect.Uint16,
		KindU64: reflect.Uint64,
	}
)

// Compiler binds layouts to Go types once and memoises the result.
// Safe for concurrent use.
type Compiler struct {
	cache sync.Map // cacheKey -> *Binding
}

type cacheKey struct {
	layout *Layout
	goType reflect.Type
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Binding is a layout resolved against a concrete Go type.
type Binding struct {
	GoType reflect.Type
	Layout *Layout
	Elem   *Binding
	Fields []BoundField
	Kind   Kind
}

// BoundField maps one layout field to a Go struct field.
type BoundField struct {
	Binding *Binding
	Name    string
	GoName  string
	Index   int
}

// Compile returns the binding of l to goType. Pointer types are
// dereferenced unless l is an Option, which binds to a pointer.
func (c *Compiler) Compile(l *Layout, goType reflect.Type) (*Binding, error) {
	if goType == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindNilPointer).
			Detail("Go type cannot be nil").
			Build()
	}
	if l == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindNilPointer).
			Detail("layout cannot be nil").
			Build()
	}
	if goType.Kind() == reflect.Ptr && l.kind != KindOption {
		goType = goType.Elem()
	}

	key := cacheKey{layout: l, goType: goType}
	if cached, ok := c.cache.Load(key); ok {
		return cached.(*Binding), nil
	}

	b, err := c.compile(l, goType, nil)
	if err != nil {
		return nil, err
	}
	Logger().Debug("compiled binding",
		zap.String("layout", l.String()),
		zap.Stringer("go_type", goType),
		zap.Int("fields", len(b.Fields)),
	)
	actual, _ := c.cache.LoadOrStore(key, b)
	return actual.(*Binding), nil
}

func (c *Compiler) compile(l *Layout, goType reflect.Type, path []string) (*Binding, error) {
	b := &Binding{GoType: goType, Layout: l, Kind: l.kind}
	switch l.kind {
	case KindU8, KindU16, KindU64:
		if goType.Kind() != scalarKinds[l.kind] {
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), l.kind.String())
		}
	case KindU128:
		if goType != uint128Type {
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "u128")
		}
	case KindPublicKey:
		if !isByteArray(goType, 32) {
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "publicKey")
		}
	case KindBytes:
		if !isByteArray(goType, l.count) && !isByteSlice(goType) {
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), l.String())
		}
	case KindStruct:
		if goType.Kind() != reflect.Struct {
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "struct")
		}
		b.Fields = make([]BoundField, 0, len(l.fields))
		for _, f := range l.fields {
			goField, found := findGoField(goType, f.Name)
			if !found {
				return nil, errors.FieldMissing(errors.PhaseCompile, path, f.Name)
			}
			fb, err := c.compile(f.Layout, goField.Type, appendPath(path, f.Name))
			if err != nil {
				return nil, err
			}
			b.Fields = append(b.Fields, BoundField{
				Binding: fb,
				Name:    f.Name,
				GoName:  goField.Name,
				Index:   goField.Index[0],
			})
		}
	case KindArray:
		switch {
		case goType.Kind() == reflect.Array && goType.Len() == l.count:
		case goType.Kind() == reflect.Slice:
		default:
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), l.String())
		}
		elem, err := c.compile(l.elem, goType.Elem(), appendPath(path, "[elem]"))
		if err != nil {
			return nil, err
		}
		b.Elem = elem
	case KindOption:
		if goType.Kind() != reflect.Ptr {
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "pointer")
		}
		elem, err := c.compile(l.elem, goType.Elem(), path)
		if err != nil {
			return nil, err
		}
		b.Elem = elem
	default:
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			LayoutType(l.String()).
			Detail("no typed binding for %s; dispatch on the tag instead", l.kind).
			Build()
	}
	return b, nil
}

func isByteArray(t reflect.Type, n int) bool {
	return t.Kind() == reflect.Array && t.Len() == n && t.Elem().Kind() == reflect.Uint8
}

func isByteSlice(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

// findGoField matches by: 1) layout:"name" tag, 2) case-insensitive name.
func findGoField(goType reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < goType.NumField(); i++ {
		field := goType.Field(i)
		if !field.IsExported() {
			continue
		}
		if tag := field.Tag.Get("layout"); tag != "" {
			if tag == name {
				return field, true
			}
			continue
		}
		if strings.EqualFold(field.Name, name) {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

func (b *Binding) sizeOf(v reflect.Value) int {
	if b.Layout.IsFixed() {
		return b.Layout.size
	}
	switch b.Kind {
	case KindOption:
		if v.IsNil() {
			return 1
		}
		return 1 + b.Elem.sizeOf(v.Elem())
	case KindStruct:
		n := 0
		for _, f := range b.Fields {
			n += f.Binding.sizeOf(v.Field(f.Index))
		}
		return n
	case KindArray:
		n := 0
		for i := 0; i < b.Layout.count && i < v.Len(); i++ {
			n += b.Elem.sizeOf(v.Index(i))
		}
		return n
	}
	return b.Layout.minSize
}

func (b *Binding) encode(v reflect.Value, w *wire.Writer, path []string) error {
	switch b.Kind {
	case KindU8:
		return wireErr(errors.PhaseEncode, path, w.WriteU8(uint8(v.Uint())))
	case KindU16:
		return wireErr(errors.PhaseEncode, path, w.WriteU16(uint16(v.Uint())))
	case KindU64:
		return wireErr(errors.PhaseEncode, path, w.WriteU64(v.Uint()))
	case KindU128:
		u := v.Interface().(Uint128)
		return wireErr(errors.PhaseEncode, path, w.WriteU128(u.Lo, u.Hi))
	case KindPublicKey, KindBytes:
		if v.Len() != b.Layout.size {
			return errors.New(errors.PhaseEncode, errors.KindWrongLength).
				Path(path...).
				GoType(b.GoType.String()).
				Value(v.Len()).
				Detail("expected %d bytes, got %d", b.Layout.size, v.Len()).
				Build()
		}
		buf := make([]byte, v.Len())
		reflect.Copy(reflect.ValueOf(buf), v)
		return wireErr(errors.PhaseEncode, path, w.WriteBytes(buf))
	case KindStruct:
		for _, f := range b.Fields {
			if err := f.Binding.encode(v.Field(f.Index), w, appendPath(path, f.Name)); err != nil {
				return err
			}
		}
		return nil
	case KindArray:
		if v.Len() != b.Layout.count {
			return errors.New(errors.PhaseEncode, errors.KindWrongLength).
				Path(path...).
				GoType(b.GoType.String()).
				Value(v.Len()).
				Detail("expected %d elements, got %d", b.Layout.count, v.Len()).
				Build()
		}
		for i := 0; i < v.Len(); i++ {
			if err := b.Elem.encode(v.Index(i), w, appendPath(path, indexName(i))); err != nil {
				return err
			}
		}
		return nil
	case KindOption:
		if v.IsNil() {
			return wireErr(errors.PhaseEncode, path, w.WriteU8(0))
		}
		if err := w.WriteU8(1); err != nil {
			return wireErr(errors.PhaseEncode, path, err)
		}
		return b.Elem.encode(v.Elem(), w, path)
	}
	return errors.Unsupported(errors.PhaseEncode, "binding kind "+b.Kind.String())
}

func (b *Binding) decode(v reflect.Value, r *wire.Reader, path []string) error {
	switch b.Kind {
	case KindU8:
		x, err := r.ReadU8()
		if err != nil {
			return wireErr(errors.PhaseDecode, path, err)
		}
		v.SetUint(uint64(x))
	case KindU16:
		x, err := r.ReadU16()
		if err != nil {
			return wireErr(errors.PhaseDecode, path, err)
		}
		v.SetUint(uint64(x))
	case KindU64:
		x, err := r.ReadU64()
		if err != nil {
			return wireErr(errors.PhaseDecode, path, err)
		}
		v.SetUint(x)
	case KindU128:
		lo, hi, err := r.ReadU128()
		if err != nil {
			return wireErr(errors.PhaseDecode, path, err)
		}
		v.Set(reflect.ValueOf(Uint128{Lo: lo, Hi: hi}))
	case KindPublicKey, KindBytes:
		data, err := r.ReadBytes(b.Layout.size)
		if err != nil {
			return wireErr(errors.PhaseDecode, path, err)
		}
		if v.Kind() == reflect.Slice {
			v.Set(reflect.MakeSlice(v.Type(), len(data), len(data)))
		}
		reflect.Copy(v, reflect.ValueOf(data))
	case KindStruct:
		for _, f := range b.Fields {
			if err := f.Binding.decode(v.Field(f.Index), r, appendPath(path, f.Name)); err != nil {
				return err
			}
		}
	case KindArray:
		if v.Kind() == reflect.Slice {
			v.Set(reflect.MakeSlice(v.Type(), b.Layout.count, b.Layout.count))
		}
		for i := 0; i < b.Layout.count; i++ {
			if err := b.Elem.decode(v.Index(i), r, appendPath(path, indexName(i))); err != nil {
				return err
			}
		}
	case KindOption:
		present, err := readPresence(r, path)
		if err != nil {
			return err
		}
		if !present {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		p := reflect.New(v.Type().Elem())
		if err := b.Elem.decode(p.Elem(), r, path); err != nil {
			return err
		}
		v.Set(p)
	default:
		return errors.Unsupported(errors.PhaseDecode, "binding kind "+b.Kind.String())
	}
	return nil
}
