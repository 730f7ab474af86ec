package amm

import (
	"reflect"

	"github.com/gagliardetto/solana-go"

	"github.com/raydium-io/raydium-amm/codec"
	"github.com/raydium-io/raydium-amm/errors"
)

// Account is implemented by the typed account records.
type Account interface {
	AccountKind() AccountKind
}

type Order struct {
	Price uint64
	Vol   uint64
}

type TargetOrders struct {
	Owner                [4]uint64
	BuyOrders            [50]Order
	Padding1             [8]uint64
	TargetX              codec.Uint128
	TargetY              codec.Uint128
	PlanXBuy             codec.Uint128
	PlanYBuy             codec.Uint128
	PlanXSell            codec.Uint128
	PlanYSell            codec.Uint128
	PlacedX              codec.Uint128
	PlacedY              codec.Uint128
	CalcPnlX             codec.Uint128
	CalcPnlY             codec.Uint128
	SellOrders           [50]Order
	Padding2             [6]uint64
	ReplaceBuyClientID   [10]uint64 `layout:"replaceBuyClientId"`
	ReplaceSellClientID  [10]uint64 `layout:"replaceSellClientId"`
	LastOrderNumerator   uint64
	LastOrderDenominator uint64
	PlanOrdersCur        uint64
	PlaceOrdersCur       uint64
	ValidBuyOrderNum     uint64
	ValidSellOrderNum    uint64
	Padding3             [10]uint64
	FreeSlotBits         codec.Uint128
}

func (TargetOrders) AccountKind() AccountKind { return AccountTargetOrders }

// Fees holds the pool's fee ratios as numerator/denominator pairs.
type Fees struct {
	MinSeparateNumerator   uint64
	MinSeparateDenominator uint64
	TradeFeeNumerator      uint64
	TradeFeeDenominator    uint64
	PnlNumerator           uint64
	PnlDenominator         uint64
	SwapFeeNumerator       uint64
	SwapFeeDenominator     uint64
}

func (Fees) AccountKind() AccountKind { return AccountFees }

// StateData holds the pool's running pnl and swap volume counters.
type StateData struct {
	NeedTakePnlCoin     uint64
	NeedTakePnlPc       uint64
	TotalPnlPc          uint64
	TotalPnlCoin        uint64
	PoolOpenTime        uint64
	Padding             [2]uint64
	OrderbookToInitTime uint64
	SwapCoinInAmount    codec.Uint128
	SwapPcOutAmount     codec.Uint128
	SwapAccPcFee        uint64
	SwapPcInAmount      codec.Uint128
	SwapCoinOutAmount   codec.Uint128
	SwapAccCoinFee      uint64
}

// AmmInfo is the main pool state account.
type AmmInfo struct {
	Status             uint64
	Nonce              uint64
	OrderNum           uint64
	Depth              uint64
	CoinDecimals       uint64
	PcDecimals         uint64
	State              uint64
	ResetFlag          uint64
	MinSize            uint64
	VolMaxCutRatio     uint64
	AmountWave         uint64
	CoinLotSize        uint64
	PcLotSize          uint64
	MinPriceMultiplier uint64
	MaxPriceMultiplier uint64
	SysDecimalValue    uint64
	Fees               Fees
	StateData          StateData
	CoinVault          solana.PublicKey
	PcVault            solana.PublicKey
	CoinVaultMint      solana.PublicKey
	PcVaultMint        solana.PublicKey
	LpMint             solana.PublicKey
	OpenOrders         solana.PublicKey
	Market             solana.PublicKey
	MarketProgram      solana.PublicKey
	TargetOrders       solana.PublicKey
	Padding1           [8]uint64
	AmmOwner           solana.PublicKey
	LpAmount           uint64
	ClientOrderID      uint64 `layout:"clientOrderId"`
	RecentEpoch        uint64
	Padding2           uint64
}

func (AmmInfo) AccountKind() AccountKind { return AccountAmmInfo }

// AmmStatus returns Status as an AmmStatus.
func (a *AmmInfo) AmmStatus() AmmStatus { return AmmStatus(a.Status) }

// AmmState returns State as an AmmState.
func (a *AmmInfo) AmmState() AmmState { return AmmState(a.State) }

// ResetFlagValue returns ResetFlag as a ResetFlag.
func (a *AmmInfo) ResetFlagValue() ResetFlag { return ResetFlag(a.ResetFlag) }

type AmmConfig struct {
	PnlOwner      solana.PublicKey
	CancelOwner   solana.PublicKey
	Pending1      [28]uint64
	Pending2      [31]uint64
	CreatePoolFee uint64
}

func (AmmConfig) AccountKind() AccountKind { return AccountAmmConfig }

func decodeAccount[T any](k AccountKind, data []byte) (*T, error) {
	v := new(T)
	if err := codec.Unmarshal(accountLayouts[k], data, v); err != nil {
		return nil, errors.WithPath(err, k.String())
	}
	return v, nil
}

func DecodeTargetOrders(data []byte) (*TargetOrders, error) {
	return decodeAccount[TargetOrders](AccountTargetOrders, data)
}

func DecodeFees(data []byte) (*Fees, error) {
	return decodeAccount[Fees](AccountFees, data)
}

func DecodeAmmInfo(data []byte) (*AmmInfo, error) {
	return decodeAccount[AmmInfo](AccountAmmInfo, data)
}

func DecodeAmmConfig(data []byte) (*AmmConfig, error) {
	return decodeAccount[AmmConfig](AccountAmmConfig, data)
}

// DecodeAccount decodes data as the typed record of kind k. data must be
// exactly the account size.
func DecodeAccount(k AccountKind, data []byte) (Account, error) {
	var (
		a   Account
		err error
	)
	switch k {
	case AccountTargetOrders:
		a, err = decodeAccount[TargetOrders](k, data)
	case AccountFees:
		a, err = decodeAccount[Fees](k, data)
	case AccountAmmInfo:
		a, err = decodeAccount[AmmInfo](k, data)
	case AccountAmmConfig:
		a, err = decodeAccount[AmmConfig](k, data)
	default:
		return nil, errors.InvalidName(errors.PhaseCatalog, "account", k.String())
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// EncodeAccount encodes a typed account record. The result is always
// exactly the account size.
func EncodeAccount(a Account) ([]byte, error) {
	if isNil(a) {
		return nil, errors.NilPointer(errors.PhaseEncode, nil, "amm.Account")
	}
	k := a.AccountKind()
	data, err := codec.Marshal(accountLayouts[k], a)
	if err != nil {
		return nil, errors.WithPath(err, k.String())
	}
	return data, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
