package codec

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"

	"github.com/gagliardetto/solana-go"
)

// Object is the dynamic value of a Struct layout: field name to value.
//
// Decoded objects hold uint8, uint16, uint64, Uint128, solana.PublicKey,
// []byte, []any (arrays), nil (absent options), Object and Variant.
type Object map[string]any

// Variant is the dynamic value of a Union layout. Encoding resolves the case
// by Name when it is set and by Tag otherwise.
type Variant struct {
	Fields Object `json:"fields"`
	Name   string `json:"name"`
	Tag    uint8  `json:"tag"`
}

func asObject(v any) (map[string]any, bool) {
	switch o := v.(type) {
	case Object:
		return o, true
	case map[string]any:
		return o, true
	case *Object:
		if o == nil {
			return nil, false
		}
		return *o, true
	}
	return nil, false
}

func asVariant(v any) (Variant, bool) {
	switch x := v.(type) {
	case Variant:
		return x, true
	case *Variant:
		if x == nil {
			return Variant{}, false
		}
		return *x, true
	}
	return Variant{}, false
}

// isAbsent reports whether v encodes as an absent option.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// FormatValue renders a decoded leaf for display: integers in decimal,
// identifiers in base58, byte runs in hex and absent options as "none".
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "none"
	case Uint128:
		return x.String()
	case *big.Int:
		return x.String()
	case solana.PublicKey:
		return x.String()
	case [32]byte:
		return solana.PublicKeyFromBytes(x[:]).String()
	case []byte:
		return hex.EncodeToString(x)
	case string:
		return x
	}
	return fmt.Sprint(v)
}
