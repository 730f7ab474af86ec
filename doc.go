// Package raydiumamm provides a Go codec for the binary layouts of the
// Raydium AMM v4 program on Solana.
//
// The library encodes and decodes account snapshots, instruction payloads
// and "ray_log:" events exactly as they appear on chain. It does no network
// I/O; feed it bytes from any RPC client.
//
// # Architecture Overview
//
//	raydiumamm/          Root package with program IDs
//	├── codec/           Layout model, dynamic and typed encode/decode
//	├── amm/             Record catalog: account, instruction and log schemas
//	├── errors/          Structured error types for debugging
//	└── cmd/raydump/     CLI and interactive inspector
//
// # Quick Start
//
// Decode a pool account:
//
//	info, err := amm.DecodeAmmInfo(accountData)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(info.AmmStatus(), info.Market)
//
// Build a swap instruction:
//
//	ix, err := amm.NewInstruction(raydiumamm.ProgramID, accounts, amm.SwapBaseIn{
//	    AmountIn:         1_000_000,
//	    MinimumAmountOut: 990_000,
//	})
//
// Decode any record by name into a dynamic value:
//
//	v, err := amm.DecodeValue("targetOrders", data)
//
// # Wire Format
//
// All integers are unsigned little-endian. Structs are packed with no
// padding. Options are a presence byte (0 or 1) followed by the payload when
// present. Unions are a one-byte tag followed by the selected payload. See
// package codec for details.
//
// # Error Handling
//
// Every failure is an *errors.Error carrying a phase, a kind and the field
// path where it happened:
//
//	if errors.Is(err, errors.ErrWrongLength) { ... }
package raydiumamm
