package amm

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/raydium-io/raydium-amm/errors"
)

// FieldOffset returns the byte offset of a field inside an account record.
// Nested fields and array elements are addressed by successive path
// elements, e.g. ("stateData", "poolOpenTime") or ("buyOrders", "3", "price").
func FieldOffset(k AccountKind, path ...string) (int, error) {
	l, ok := AccountLayout(k)
	if !ok {
		return 0, errors.InvalidName(errors.PhaseCatalog, "account", k.String())
	}
	off, err := l.Offset(path...)
	if err != nil {
		return 0, errors.WithPath(err, k.String())
	}
	return off, nil
}

// DataSizeFilter matches program accounts whose data length is the size of
// kind.
func DataSizeFilter(k AccountKind) rpc.RPCFilter {
	if !k.valid() {
		return rpc.RPCFilter{}
	}
	return rpc.RPCFilter{DataSize: uint64(accountSizes[k])}
}

// MemcmpFilter matches accounts whose bytes at the field named by path equal
// value. value must fit inside the account.
func MemcmpFilter(k AccountKind, value []byte, path ...string) (rpc.RPCFilter, error) {
	off, err := FieldOffset(k, path...)
	if err != nil {
		return rpc.RPCFilter{}, err
	}
	if len(value) == 0 || off+len(value) > accountSizes[k] {
		return rpc.RPCFilter{}, errors.New(errors.PhaseCatalog, errors.KindOutOfRange).
			Path(append([]string{k.String()}, path...)...).
			Value(len(value)).
			Detail("%d bytes at offset %d exceed the %d byte account", len(value), off, accountSizes[k]).
			Build()
	}
	return rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: uint64(off),
			Bytes:  solana.Base58(append([]byte(nil), value...)),
		},
	}, nil
}

// KeyFilter matches accounts whose public key field at path equals key, the
// usual way to find the pool of a given market or mint.
func KeyFilter(k AccountKind, key solana.PublicKey, path ...string) (rpc.RPCFilter, error) {
	return MemcmpFilter(k, key[:], path...)
}
