// Package amm is the record catalog of the Raydium AMM program: the binary
// layouts of its accounts, instructions and log events, and typed Go
// records bound to them.
//
// # Records
//
// Every schema is registered under a name:
//
//	targetOrders  account, 2208 bytes
//	fees          account,   64 bytes
//	ammInfo       account,  752 bytes
//	ammConfig     account,  544 bytes
//	instruction   union of 16 instruction payloads, tag byte 0-15
//	initialize .. updateConfigAccount
//	              one instruction variant, tag byte included
//	rayLog        union of 5 "ray_log:" events, tag byte 0-4
//
// Encode, Decode and DecodeValue work by name. The typed API avoids names:
//
//	info, err := amm.DecodeAmmInfo(data)
//	if err != nil {
//	    return err
//	}
//	if info.AmmStatus().SwapPermitted() { ... }
//
//	data, err := amm.EncodeInstruction(amm.SwapBaseIn{AmountIn: 1_000_000, MinimumAmountOut: 990_000})
//
// # Length Rules
//
// Account and log records decode only from buffers of exactly their size.
// Instructions decode from any buffer at least as long as the payload;
// trailing bytes are ignored as the on-chain unpacker ignores them.
//
// # Filters
//
// DataSizeFilter, MemcmpFilter and KeyFilter build getProgramAccounts
// filters from field paths:
//
//	f, err := amm.KeyFilter(amm.AccountAmmInfo, market, "market")
//
// # Concurrency
//
// Layouts, the catalog and compiled bindings are immutable after package
// initialization and safe for concurrent use.
package amm
