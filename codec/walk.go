package codec

import (
	"reflect"

	"github.com/raydium-io/raydium-amm/codec/internal/convert"
	"github.com/raydium-io/raydium-amm/errors"
)

// WalkFunc is called for every leaf of a decoded value. Absent options are
// reported as leaves with the option layout and a nil value.
type WalkFunc func(path []string, leaf *Layout, v any) error

// Walk visits the leaves of a dynamic value in wire order. Returning an
// error from fn stops the walk.
func Walk(l *Layout, v any, fn WalkFunc) error {
	return walk(l, v, nil, fn)
}

func walk(l *Layout, v any, path []string, fn WalkFunc) error {
	switch l.kind {
	case KindStruct:
		obj, ok := asObject(v)
		if !ok {
			return errors.TypeMismatch(errors.PhaseDecode, path, convert.TypeName(v), "struct")
		}
		for _, f := range l.fields {
			if err := walk(f.Layout, obj[f.Name], appendPath(path, f.Name), fn); err != nil {
				return err
			}
		}
		return nil
	case KindArray:
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return errors.TypeMismatch(errors.PhaseDecode, path, convert.TypeName(v), "array")
		}
		for i := 0; i < rv.Len(); i++ {
			if err := walk(l.elem, rv.Index(i).Interface(), appendPath(path, indexName(i)), fn); err != nil {
				return err
			}
		}
		return nil
	case KindOption:
		if isAbsent(v) {
			return fn(path, l, nil)
		}
		return walk(l.elem, v, path, fn)
	case KindUnion:
		vr, ok := asVariant(v)
		if !ok {
			return errors.TypeMismatch(errors.PhaseDecode, path, convert.TypeName(v), "variant")
		}
		c, ok := l.CaseByName(vr.Name)
		if !ok {
			if c, ok = l.CaseByTag(vr.Tag); !ok {
				return errors.UnknownVariant(errors.PhaseDecode, path, vr.Tag)
			}
		}
		return walk(c.Layout, map[string]any(vr.Fields), appendPath(path, c.Name), fn)
	}
	return fn(path, l, v)
}
