package amm

import (
	"fmt"
	"reflect"

	"github.com/raydium-io/raydium-amm/codec"
	"github.com/raydium-io/raydium-amm/errors"
)

// typedUnion binds every case of a union layout to one Go struct type so
// payloads decode into closed sets of typed values.
type typedUnion struct {
	layout *codec.Layout
	cases  map[uint8]boundCase
	name   string
}

type boundCase struct {
	layout *codec.Layout
	goType reflect.Type
	name   string
}

// newTypedUnion registers one zero value per case. Each value's tag comes
// from tagOf and must name a case of layout; every case must be covered.
func newTypedUnion(name string, layout *codec.Layout, values ...any) *typedUnion {
	u := &typedUnion{layout: layout, cases: make(map[uint8]boundCase, len(values)), name: name}
	for _, v := range values {
		tag := tagOf(v)
		c, ok := layout.CaseByTag(tag)
		if !ok {
			panic(fmt.Sprintf("amm: %s has no case for tag %d", name, tag))
		}
		goType := reflect.TypeOf(v)
		if _, err := codec.DefaultCompiler().Compile(c.Layout, goType); err != nil {
			panic(fmt.Sprintf("amm: %s case %s: %v", name, c.Name, err))
		}
		u.cases[tag] = boundCase{layout: c.Layout, goType: goType, name: c.Name}
	}
	if len(u.cases) != len(layout.Cases()) {
		panic(fmt.Sprintf("amm: %s binds %d of %d cases", name, len(u.cases), len(layout.Cases())))
	}
	return u
}

func tagOf(v any) uint8 {
	switch x := v.(type) {
	case Instruction:
		return uint8(x.Kind())
	case RayLog:
		return uint8(x.LogType())
	}
	panic(fmt.Sprintf("amm: %T is not a union case", v))
}

// encode writes the tag then the payload into one exactly sized buffer.
func (u *typedUnion) encode(tag uint8, v any) ([]byte, error) {
	c, ok := u.cases[tag]
	if !ok {
		return nil, errors.UnknownVariant(errors.PhaseEncode, []string{u.name}, tag)
	}
	payload, err := codec.Marshal(c.layout, v)
	if err != nil {
		return nil, errors.WithPath(err, c.name)
	}
	data := make([]byte, 1+len(payload))
	data[0] = tag
	copy(data[1:], payload)
	return data, nil
}

// decode reads the tag and the selected payload from the front of data and
// reports the bytes consumed.
func (u *typedUnion) decode(data []byte) (any, int, error) {
	c, err := codec.ReadTag(u.layout, data)
	if err != nil {
		return nil, 0, errors.WithPath(err, u.name)
	}
	bc := u.cases[c.Tag]
	ptr := reflect.New(bc.goType)
	n, err := codec.UnmarshalPrefix(bc.layout, data[1:], ptr.Interface())
	if err != nil {
		return nil, 0, errors.WithPath(err, bc.name)
	}
	return ptr.Elem().Interface(), 1 + n, nil
}
