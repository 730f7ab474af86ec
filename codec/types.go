package codec

import (
	"github.com/raydium-io/raydium-amm/codec/internal/types"
)

type Kind = types.Kind

const (
	KindU8        = types.KindU8
	KindU16       = types.KindU16
	KindU64       = types.KindU64
	KindU128      = types.KindU128
	KindPublicKey = types.KindPublicKey
	KindBytes     = types.KindBytes
	KindStruct    = types.KindStruct
	KindArray     = types.KindArray
	KindOption    = types.KindOption
	KindUnion     = types.KindUnion
)
