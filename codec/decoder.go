package codec

import (
	"reflect"

	"github.com/gagliardetto/solana-go"

	"github.com/raydium-io/raydium-amm/codec/internal/wire"
	"github.com/raydium-io/raydium-amm/errors"
)

// Decoder reads values out of caller buffers. Decoded values never alias
// the input. It holds no per-call state and is safe for concurrent use.
type Decoder struct {
	compiler *Compiler
}

func NewDecoder() *Decoder {
	return &Decoder{compiler: NewCompiler()}
}

func NewDecoderWithCompiler(c *Compiler) *Decoder {
	return &Decoder{compiler: c}
}

// Decode decodes data into a dynamic value. data must hold exactly one
// encoded value: fixed layouts fail with a length error unless
// len(data) == Size, and trailing bytes are rejected for variable layouts.
func (d *Decoder) Decode(l *Layout, data []byte) (any, error) {
	if l.IsFixed() && len(data) != l.size {
		return nil, errors.WrongLength(errors.PhaseDecode, nil, l.size, len(data))
	}
	v, n, err := d.DecodePrefix(l, data)
	if err != nil {
		return nil, err
	}
	if err := checkTrailing(data, n); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodePrefix decodes one value from the start of data and reports how
// many bytes it consumed.
func (d *Decoder) DecodePrefix(l *Layout, data []byte) (any, int, error) {
	r := wire.NewReader(data)
	v, err := decodeValue(l, r, nil)
	if err != nil {
		return nil, 0, err
	}
	return v, r.Position(), nil
}

// Unmarshal decodes data into the value pointed to by v through a compiled
// binding, with the same length rules as Decode. On failure *v is left
// untouched.
func (d *Decoder) Unmarshal(l *Layout, data []byte, v any) error {
	if l.IsFixed() && len(data) != l.size {
		return errors.WrongLength(errors.PhaseDecode, nil, l.size, len(data))
	}
	n, err := d.UnmarshalPrefix(l, data, v)
	if err != nil {
		return err
	}
	return checkTrailing(data, n)
}

// UnmarshalPrefix is Unmarshal without the trailing-bytes check.
func (d *Decoder) UnmarshalPrefix(l *Layout, data []byte, v any) (int, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() {
		return 0, errors.NilPointer(errors.PhaseDecode, nil, reflectTypeName(rv))
	}
	target := rv.Elem()
	b, err := d.compiler.Compile(l, target.Type())
	if err != nil {
		return 0, err
	}
	fresh := reflect.New(target.Type()).Elem()
	r := wire.NewReader(data)
	if err := b.decode(fresh, r, nil); err != nil {
		return 0, err
	}
	target.Set(fresh)
	return r.Position(), nil
}

func reflectTypeName(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}
	return rv.Type().String()
}

func checkTrailing(data []byte, n int) error {
	if n == len(data) {
		return nil
	}
	return errors.New(errors.PhaseDecode, errors.KindWrongLength).
		Value(len(data)).
		Detail("%d trailing bytes after %d-byte value", len(data)-n, n).
		Build()
}

func decodeValue(l *Layout, r *wire.Reader, path []string) (any, error) {
	switch l.kind {
	case KindU8:
		v, err := r.ReadU8()
		return v, wireErr(errors.PhaseDecode, path, err)
	case KindU16:
		v, err := r.ReadU16()
		return v, wireErr(errors.PhaseDecode, path, err)
	case KindU64:
		v, err := r.ReadU64()
		return v, wireErr(errors.PhaseDecode, path, err)
	case KindU128:
		lo, hi, err := r.ReadU128()
		if err != nil {
			return nil, wireErr(errors.PhaseDecode, path, err)
		}
		return Uint128{Lo: lo, Hi: hi}, nil
	case KindPublicKey:
		var pk solana.PublicKey
		if err := r.ReadInto(pk[:]); err != nil {
			return nil, wireErr(errors.PhaseDecode, path, err)
		}
		return pk, nil
	case KindBytes:
		b, err := r.ReadBytes(l.count)
		if err != nil {
			return nil, wireErr(errors.PhaseDecode, path, err)
		}
		return b, nil
	case KindStruct:
		obj := make(Object, len(l.fields))
		for _, f := range l.fields {
			v, err := decodeValue(f.Layout, r, appendPath(path, f.Name))
			if err != nil {
				return nil, err
			}
			obj[f.Name] = v
		}
		return obj, nil
	case KindArray:
		out := make([]any, l.count)
		for i := range out {
			v, err := decodeValue(l.elem, r, appendPath(path, indexName(i)))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case KindOption:
		present, err := readPresence(r, path)
		if err != nil || !present {
			return nil, err
		}
		return decodeValue(l.elem, r, path)
	case KindUnion:
		c, err := readTag(l, r, path)
		if err != nil {
			return nil, err
		}
		fields, err := decodeValue(c.Layout, r, appendPath(path, c.Name))
		if err != nil {
			return nil, err
		}
		return Variant{Tag: c.Tag, Name: c.Name, Fields: fields.(Object)}, nil
	}
	return nil, errors.Unsupported(errors.PhaseDecode, "layout kind "+l.kind.String())
}

func readPresence(r *wire.Reader, path []string) (bool, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return false, wireErr(errors.PhaseDecode, path, err)
	}
	switch tag {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errors.InvalidDiscriminator(errors.PhaseDecode, path, tag, "presence byte must be 0 or 1")
}

func readTag(l *Layout, r *wire.Reader, path []string) (Case, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return Case{}, wireErr(errors.PhaseDecode, path, err)
	}
	c, ok := l.CaseByTag(tag)
	if !ok {
		return Case{}, errors.UnknownVariant(errors.PhaseDecode, path, tag)
	}
	return c, nil
}

// ReadTag returns the union case selected by the first byte of data.
func ReadTag(l *Layout, data []byte) (Case, error) {
	if l.kind != KindUnion {
		return Case{}, errors.Unsupported(errors.PhaseDecode, "tag read on "+l.String())
	}
	return readTag(l, wire.NewReader(data), nil)
}
