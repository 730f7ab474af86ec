package codec

import (
	"reflect"
	"strconv"

	"github.com/gagliardetto/solana-go"

	"github.com/raydium-io/raydium-amm/codec/internal/convert"
	"github.com/raydium-io/raydium-amm/codec/internal/wire"
	"github.com/raydium-io/raydium-amm/errors"
)

// Encoder writes values into freshly allocated buffers of exactly the
// encoded size. It holds no per-call state and is safe for concurrent use.
type Encoder struct {
	compiler *Compiler
}

func NewEncoder() *Encoder {
	return &Encoder{compiler: NewCompiler()}
}

func NewEncoderWithCompiler(c *Compiler) *Encoder {
	return &Encoder{compiler: c}
}

// Encode encodes a dynamic value (Object, Variant, scalars, slices).
// The exact output length is computed from v before the buffer is allocated.
func (e *Encoder) Encode(l *Layout, v any) ([]byte, error) {
	n, err := sizeOfValue(l, v, nil)
	if err != nil {
		return nil, err
	}
	w := wire.NewWriter(make([]byte, n))
	if err := encodeValue(l, v, w, nil); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// EncodedSize returns the number of bytes Encode would produce for v.
func (e *Encoder) EncodedSize(l *Layout, v any) (int, error) {
	return sizeOfValue(l, v, nil)
}

// Marshal encodes a Go value through a compiled binding. Pointers are
// followed unless the layout is an Option.
func (e *Encoder) Marshal(l *Layout, v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, errors.NilPointer(errors.PhaseEncode, nil, "nil")
	}
	if rv.Kind() == reflect.Ptr && l.kind != KindOption {
		if rv.IsNil() {
			return nil, errors.NilPointer(errors.PhaseEncode, nil, rv.Type().String())
		}
		rv = rv.Elem()
	}
	b, err := e.compiler.Compile(l, rv.Type())
	if err != nil {
		return nil, err
	}
	n := b.sizeOf(rv)
	w := wire.NewWriter(make([]byte, n))
	if err := b.encode(rv, w, nil); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func sizeOfValue(l *Layout, v any, path []string) (int, error) {
	if l.IsFixed() {
		return l.size, nil
	}
	switch l.kind {
	case KindOption:
		if isAbsent(v) {
			return 1, nil
		}
		n, err := sizeOfValue(l.elem, v, path)
		if err != nil {
			return 0, err
		}
		return 1 + n, nil
	case KindStruct:
		obj, ok := asObject(v)
		if !ok {
			return 0, errors.TypeMismatch(errors.PhaseEncode, path, convert.TypeName(v), "struct")
		}
		total := 0
		for _, f := range l.fields {
			fv, present := obj[f.Name]
			if !present && f.Layout.kind != KindOption {
				return 0, errors.FieldMissing(errors.PhaseEncode, path, f.Name)
			}
			n, err := sizeOfValue(f.Layout, fv, appendPath(path, f.Name))
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	case KindArray:
		rv, err := arrayValue(l, v, path)
		if err != nil {
			return 0, err
		}
		total := 0
		for i := 0; i < l.count; i++ {
			n, err := sizeOfValue(l.elem, rv.Index(i).Interface(), appendPath(path, indexName(i)))
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	case KindUnion:
		c, fields, err := resolveCase(l, v, path)
		if err != nil {
			return 0, err
		}
		n, err := sizeOfValue(c.Layout, fields, appendPath(path, c.Name))
		if err != nil {
			return 0, err
		}
		return 1 + n, nil
	}
	return 0, errors.Unsupported(errors.PhaseEncode, "variable size for "+l.String())
}

func encodeValue(l *Layout, v any, w *wire.Writer, path []string) error {
	switch l.kind {
	case KindU8, KindU16, KindU64:
		u, err := toUint(v, l.kind, path)
		if err != nil {
			return err
		}
		return writeScalar(w, l.kind, u, path)
	case KindU128:
		u, err := toUint128(v, path)
		if err != nil {
			return err
		}
		return wireErr(errors.PhaseEncode, path, w.WriteU128(u.Lo, u.Hi))
	case KindPublicKey:
		pk, err := toPublicKey(v, path)
		if err != nil {
			return err
		}
		return wireErr(errors.PhaseEncode, path, w.WriteBytes(pk[:]))
	case KindBytes:
		data, err := toBytes(v, l.count, path)
		if err != nil {
			return err
		}
		return wireErr(errors.PhaseEncode, path, w.WriteBytes(data))
	case KindStruct:
		obj, ok := asObject(v)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, convert.TypeName(v), "struct")
		}
		for _, f := range l.fields {
			fv, present := obj[f.Name]
			if !present && f.Layout.kind != KindOption {
				return errors.FieldMissing(errors.PhaseEncode, path, f.Name)
			}
			if err := encodeValue(f.Layout, fv, w, appendPath(path, f.Name)); err != nil {
				return err
			}
		}
		return nil
	case KindArray:
		rv, err := arrayValue(l, v, path)
		if err != nil {
			return err
		}
		for i := 0; i < l.count; i++ {
			if err := encodeValue(l.elem, rv.Index(i).Interface(), w, appendPath(path, indexName(i))); err != nil {
				return err
			}
		}
		return nil
	case KindOption:
		if isAbsent(v) {
			return wireErr(errors.PhaseEncode, path, w.WriteU8(0))
		}
		if err := w.WriteU8(1); err != nil {
			return wireErr(errors.PhaseEncode, path, err)
		}
		return encodeValue(l.elem, v, w, path)
	case KindUnion:
		c, fields, err := resolveCase(l, v, path)
		if err != nil {
			return err
		}
		if err := w.WriteU8(c.Tag); err != nil {
			return wireErr(errors.PhaseEncode, path, err)
		}
		return encodeValue(c.Layout, fields, w, appendPath(path, c.Name))
	}
	return errors.Unsupported(errors.PhaseEncode, "layout kind "+l.kind.String())
}

// resolveCase picks the union case for a Variant, by name first.
func resolveCase(l *Layout, v any, path []string) (Case, map[string]any, error) {
	vr, ok := asVariant(v)
	if !ok {
		return Case{}, nil, errors.TypeMismatch(errors.PhaseEncode, path, convert.TypeName(v), "variant")
	}
	var c Case
	if vr.Name != "" {
		c, ok = l.CaseByName(vr.Name)
		if !ok {
			err := errors.InvalidName(errors.PhaseEncode, "variant", vr.Name)
			err.Path = path
			return Case{}, nil, err
		}
	} else {
		c, ok = l.CaseByTag(vr.Tag)
		if !ok {
			return Case{}, nil, errors.UnknownVariant(errors.PhaseEncode, path, vr.Tag)
		}
	}
	fields := map[string]any(vr.Fields)
	if fields == nil {
		fields = map[string]any{}
	}
	return c, fields, nil
}

func arrayValue(l *Layout, v any, path []string) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return reflect.Value{}, errors.TypeMismatch(errors.PhaseEncode, path, convert.TypeName(v), "array")
	}
	if rv.Len() != l.count {
		return reflect.Value{}, errors.New(errors.PhaseEncode, errors.KindWrongLength).
			Path(path...).
			LayoutType(l.String()).
			Value(rv.Len()).
			Detail("expected %d elements, got %d", l.count, rv.Len()).
			Build()
	}
	return rv, nil
}

func toUint(v any, k Kind, path []string) (uint64, error) {
	u, st := convert.CoerceToUint64(v)
	if st == convert.NotNumeric {
		switch x := v.(type) {
		case Uint128:
			if x.Hi != 0 {
				return 0, errors.OutOfRange(errors.PhaseEncode, path, x.String(), k.String())
			}
			u, st = x.Lo, convert.OK
		default:
			if s, ok := stringValue(v); ok {
				b, bst := convert.CoerceToBig(s)
				st = bst
				if st == convert.OK {
					if !b.IsUint64() {
						return 0, errors.OutOfRange(errors.PhaseEncode, path, s, k.String())
					}
					u = b.Uint64()
				}
			}
		}
	}
	switch st {
	case convert.NotNumeric:
		return 0, errors.TypeMismatch(errors.PhaseEncode, path, convert.TypeName(v), k.String())
	case convert.OutOfRange:
		return 0, errors.OutOfRange(errors.PhaseEncode, path, v, k.String())
	}
	if !convert.FitsWidth(u, k.Width()) {
		return 0, errors.OutOfRange(errors.PhaseEncode, path, u, k.String())
	}
	return u, nil
}

func toUint128(v any, path []string) (Uint128, error) {
	switch x := v.(type) {
	case Uint128:
		return x, nil
	case *Uint128:
		if x == nil {
			return Uint128{}, errors.NilPointer(errors.PhaseEncode, path, "*codec.Uint128")
		}
		return *x, nil
	}
	if s, ok := stringValue(v); ok {
		v = s
	}
	b, st := convert.CoerceToBig(v)
	switch st {
	case convert.NotNumeric:
		return Uint128{}, errors.TypeMismatch(errors.PhaseEncode, path, convert.TypeName(v), "u128")
	case convert.OutOfRange:
		return Uint128{}, errors.OutOfRange(errors.PhaseEncode, path, v, "u128")
	}
	u, ok := Uint128FromBig(b)
	if !ok {
		return Uint128{}, errors.OutOfRange(errors.PhaseEncode, path, b.String(), "u128")
	}
	return u, nil
}

func toPublicKey(v any, path []string) (solana.PublicKey, error) {
	switch x := v.(type) {
	case solana.PublicKey:
		return x, nil
	case *solana.PublicKey:
		if x == nil {
			return solana.PublicKey{}, errors.NilPointer(errors.PhaseEncode, path, "*solana.PublicKey")
		}
		return *x, nil
	case [32]byte:
		return solana.PublicKey(x), nil
	case []byte:
		if len(x) != solana.PublicKeyLength {
			return solana.PublicKey{}, errors.New(errors.PhaseEncode, errors.KindWrongLength).
				Path(path...).
				LayoutType("publicKey").
				Value(len(x)).
				Detail("expected %d bytes, got %d", solana.PublicKeyLength, len(x)).
				Build()
		}
		return solana.PublicKeyFromBytes(x), nil
	case string:
		pk, err := solana.PublicKeyFromBase58(x)
		if err != nil {
			return solana.PublicKey{}, errors.New(errors.PhaseEncode, errors.KindInvalidInput).
				Path(path...).
				LayoutType("publicKey").
				Value(x).
				Cause(err).
				Detail("invalid base58 identifier").
				Build()
		}
		return pk, nil
	}
	return solana.PublicKey{}, errors.TypeMismatch(errors.PhaseEncode, path, convert.TypeName(v), "publicKey")
}

func toBytes(v any, n int, path []string) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, errors.TypeMismatch(errors.PhaseEncode, path, convert.TypeName(v), "bytes")
	}
	if rv.Len() != n {
		return nil, errors.New(errors.PhaseEncode, errors.KindWrongLength).
			Path(path...).
			Value(rv.Len()).
			Detail("expected %d bytes, got %d", n, rv.Len()).
			Build()
	}
	out := make([]byte, n)
	reflect.Copy(reflect.ValueOf(out), rv)
	return out, nil
}

// stringValue unwraps string kinds such as json.Number.
func stringValue(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func writeScalar(w *wire.Writer, k Kind, u uint64, path []string) error {
	var err error
	switch k {
	case KindU8:
		err = w.WriteU8(uint8(u))
	case KindU16:
		err = w.WriteU16(uint16(u))
	default:
		err = w.WriteU64(u)
	}
	return wireErr(errors.PhaseEncode, path, err)
}

// wireErr converts a short-buffer condition into a structured error.
func wireErr(phase errors.Phase, path []string, err error) error {
	if err == nil {
		return nil
	}
	if sb, ok := err.(*wire.ShortBufferError); ok {
		return errors.BufferTooSmall(phase, path, sb.Need, sb.Have)
	}
	return errors.InvalidInput(phase, "wire", err)
}

func appendPath(path []string, elem string) []string {
	return append(append(make([]string, 0, len(path)+1), path...), elem)
}

func indexName(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
