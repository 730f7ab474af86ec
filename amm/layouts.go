package amm

import (
	"fmt"

	"github.com/raydium-io/raydium-amm/codec"
)

// Account sizes in bytes.
const (
	TargetOrdersSize = 2208
	FeesSize         = 64
	AmmInfoSize      = 752
	AmmConfigSize    = 544
)

func u64s(names ...string) []codec.Field {
	fields := make([]codec.Field, len(names))
	for i, n := range names {
		fields[i] = codec.Named(n, codec.U64)
	}
	return fields
}

func u128s(names ...string) []codec.Field {
	fields := make([]codec.Field, len(names))
	for i, n := range names {
		fields[i] = codec.Named(n, codec.U128)
	}
	return fields
}

func keys(names ...string) []codec.Field {
	fields := make([]codec.Field, len(names))
	for i, n := range names {
		fields[i] = codec.Named(n, codec.PublicKey)
	}
	return fields
}

func concat(groups ...[]codec.Field) []codec.Field {
	var out []codec.Field
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func one(name string, l *codec.Layout) []codec.Field {
	return []codec.Field{codec.Named(name, l)}
}

var (
	OrderLayout = codec.Struct(u64s("price", "vol")...)

	FeesLayout = codec.Struct(u64s(
		"minSeparateNumerator", "minSeparateDenominator",
		"tradeFeeNumerator", "tradeFeeDenominator",
		"pnlNumerator", "pnlDenominator",
		"swapFeeNumerator", "swapFeeDenominator",
	)...)

	LastOrderDistanceLayout = codec.Struct(u64s("lastOrderNumerator", "lastOrderDenominator")...)

	TargetOrdersLayout = codec.Struct(concat(
		one("owner", codec.Array(codec.U64, 4)),
		one("buyOrders", codec.Array(OrderLayout, 50)),
		one("padding1", codec.Array(codec.U64, 8)),
		u128s("targetX", "targetY", "planXBuy", "planYBuy", "planXSell", "planYSell",
			"placedX", "placedY", "calcPnlX", "calcPnlY"),
		one("sellOrders", codec.Array(OrderLayout, 50)),
		one("padding2", codec.Array(codec.U64, 6)),
		one("replaceBuyClientId", codec.Array(codec.U64, 10)),
		one("replaceSellClientId", codec.Array(codec.U64, 10)),
		u64s("lastOrderNumerator", "lastOrderDenominator", "planOrdersCur", "placeOrdersCur",
			"validBuyOrderNum", "validSellOrderNum"),
		one("padding3", codec.Array(codec.U64, 10)),
		one("freeSlotBits", codec.U128),
	)...)

	StateDataLayout = codec.Struct(concat(
		u64s("needTakePnlCoin", "needTakePnlPc", "totalPnlPc", "totalPnlCoin", "poolOpenTime"),
		one("padding", codec.Array(codec.U64, 2)),
		u64s("orderbookToInitTime"),
		u128s("swapCoinInAmount", "swapPcOutAmount"),
		u64s("swapAccPcFee"),
		u128s("swapPcInAmount", "swapCoinOutAmount"),
		u64s("swapAccCoinFee"),
	)...)

	AmmInfoLayout = codec.Struct(concat(
		u64s("status", "nonce", "orderNum", "depth", "coinDecimals", "pcDecimals", "state",
			"resetFlag", "minSize", "volMaxCutRatio", "amountWave", "coinLotSize", "pcLotSize",
			"minPriceMultiplier", "maxPriceMultiplier", "sysDecimalValue"),
		one("fees", FeesLayout),
		one("stateData", StateDataLayout),
		keys("coinVault", "pcVault", "coinVaultMint", "pcVaultMint", "lpMint", "openOrders",
			"market", "marketProgram", "targetOrders"),
		one("padding1", codec.Array(codec.U64, 8)),
		keys("ammOwner"),
		u64s("lpAmount", "clientOrderId", "recentEpoch", "padding2"),
	)...)

	AmmConfigLayout = codec.Struct(concat(
		keys("pnlOwner", "cancelOwner"),
		one("pending1", codec.Array(codec.U64, 28)),
		one("pending2", codec.Array(codec.U64, 31)),
		u64s("createPoolFee"),
	)...)
)

var (
	SwapBaseInLayout  = codec.Struct(u64s("amountIn", "minimumAmountOut")...)
	SwapBaseOutLayout = codec.Struct(u64s("maxAmountIn", "amountOut")...)

	InstructionLayout = codec.Union(
		codec.Tagged(uint8(KindInitialize), "initialize", codec.Struct(
			codec.Named("nonce", codec.U8), codec.Named("openTime", codec.U64))),
		codec.Tagged(uint8(KindInitialize2), "initialize2", codec.Struct(concat(
			one("nonce", codec.U8), u64s("openTime", "initPcAmount", "initCoinAmount"))...)),
		codec.Tagged(uint8(KindMonitorStep), "monitorStep", codec.Struct(
			codec.Named("planOrderLimit", codec.U16), codec.Named("placeOrderLimit", codec.U16), codec.Named("cancelOrderLimit", codec.U16))),
		codec.Tagged(uint8(KindDeposit), "deposit", codec.Struct(u64s("maxCoinAmount", "maxPcAmount", "baseSide")...)),
		codec.Tagged(uint8(KindWithdraw), "withdraw", codec.Struct(u64s("amount")...)),
		codec.Tagged(uint8(KindMigrateToOpenBook), "migrateToOpenBook", codec.Struct()),
		codec.Tagged(uint8(KindSetParams), "setParams", codec.Struct(
			codec.Named("param", codec.U8),
			codec.Named("value", codec.Option(codec.U64)),
			codec.Named("newPubkey", codec.Option(codec.PublicKey)),
			codec.Named("fees", codec.Option(FeesLayout)),
			codec.Named("lastOrderDistance", codec.Option(LastOrderDistanceLayout)),
		)),
		codec.Tagged(uint8(KindWithdrawPnl), "withdrawPnl", codec.Struct()),
		codec.Tagged(uint8(KindWithdrawSrm), "withdrawSrm", codec.Struct(u64s("amount")...)),
		codec.Tagged(uint8(KindSwapBaseIn), "swapBaseIn", SwapBaseInLayout),
		codec.Tagged(uint8(KindPreInitialize), "preInitialize", codec.Struct(codec.Named("nonce", codec.U8))),
		codec.Tagged(uint8(KindSwapBaseOut), "swapBaseOut", SwapBaseOutLayout),
		codec.Tagged(uint8(KindSimulateInfo), "simulateInfo", codec.Struct(
			codec.Named("param", codec.U8),
			codec.Named("swapBaseInValue", codec.Option(SwapBaseInLayout)),
			codec.Named("swapBaseOutValue", codec.Option(SwapBaseOutLayout)),
		)),
		codec.Tagged(uint8(KindAdminCancelOrders), "adminCancelOrders", codec.Struct(codec.Named("limit", codec.U16))),
		codec.Tagged(uint8(KindCreateConfigAccount), "createConfigAccount", codec.Struct()),
		codec.Tagged(uint8(KindUpdateConfigAccount), "updateConfigAccount", codec.Struct(
			codec.Named("param", codec.U8),
			codec.Named("owner", codec.Option(codec.PublicKey)),
			codec.Named("createPoolFee", codec.Option(codec.U64)),
		)),
	)
)

// RayLogLayout decodes the payload of "ray_log:" program log lines. The
// leading log type byte doubles as the union discriminator.
var RayLogLayout = codec.Union(
	codec.Tagged(uint8(LogInit), "init", codec.Struct(concat(
		u64s("timestamp"),
		one("pcDecimals", codec.U8),
		one("coinDecimals", codec.U8),
		u64s("pcLotSize", "coinLotSize", "pcAmount", "coinAmount"),
		keys("market"),
	)...)),
	codec.Tagged(uint8(LogDeposit), "deposit", codec.Struct(concat(
		u64s("maxCoin", "maxPc", "base", "poolCoin", "poolPc", "poolLp"),
		u128s("calcPnlX", "calcPnlY"),
		u64s("deductCoin", "deductPc", "mintLp"),
	)...)),
	codec.Tagged(uint8(LogWithdraw), "withdraw", codec.Struct(concat(
		u64s("withdrawLp", "userLp", "poolCoin", "poolPc", "poolLp"),
		u128s("calcPnlX", "calcPnlY"),
		u64s("outCoin", "outPc"),
	)...)),
	codec.Tagged(uint8(LogSwapBaseIn), "swapBaseIn", codec.Struct(u64s(
		"amountIn", "minimumOut", "direction", "userSource", "poolCoin", "poolPc", "outAmount")...)),
	codec.Tagged(uint8(LogSwapBaseOut), "swapBaseOut", codec.Struct(u64s(
		"maxIn", "amountOut", "direction", "userSource", "poolCoin", "poolPc", "deductIn")...)),
)

var accountLayouts = [...]*codec.Layout{
	AccountTargetOrders: TargetOrdersLayout,
	AccountFees:         FeesLayout,
	AccountAmmInfo:      AmmInfoLayout,
	AccountAmmConfig:    AmmConfigLayout,
}

var accountSizes = [...]int{
	AccountTargetOrders: TargetOrdersSize,
	AccountFees:         FeesSize,
	AccountAmmInfo:      AmmInfoSize,
	AccountAmmConfig:    AmmConfigSize,
}

func init() {
	for k, l := range accountLayouts {
		if !l.IsFixed() || l.Size() != accountSizes[k] {
			panic(fmt.Sprintf("amm: %s layout is %d bytes, want fixed %d", AccountKind(k), l.Size(), accountSizes[k]))
		}
	}
	for _, c := range InstructionLayout.Cases() {
		if InstructionKind(c.Tag).String() != c.Name {
			panic(fmt.Sprintf("amm: instruction tag %d named %q, want %q", c.Tag, c.Name, InstructionKind(c.Tag)))
		}
	}
}

// AccountLayout returns the layout of an account kind.
func AccountLayout(k AccountKind) (*codec.Layout, bool) {
	if !k.valid() {
		return nil, false
	}
	return accountLayouts[k], true
}
