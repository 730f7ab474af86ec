package amm

import (
	"github.com/gagliardetto/solana-go"

	"github.com/raydium-io/raydium-amm/errors"
)

// Instruction is the closed set of typed instruction payloads. Type switch
// on the concrete value (Initialize, SwapBaseIn, ...) to dispatch.
type Instruction interface {
	Kind() InstructionKind
	isInstruction()
}

type Initialize struct {
	Nonce    uint8
	OpenTime uint64
}

type Initialize2 struct {
	Nonce          uint8
	OpenTime       uint64
	InitPcAmount   uint64
	InitCoinAmount uint64
}

type MonitorStep struct {
	PlanOrderLimit   uint16
	PlaceOrderLimit  uint16
	CancelOrderLimit uint16
}

type Deposit struct {
	MaxCoinAmount uint64
	MaxPcAmount   uint64
	BaseSide      uint64
}

type Withdraw struct {
	Amount uint64
}

type MigrateToOpenBook struct{}

// LastOrderDistance is the optional setParams payload for ParamLastOrderDistance.
type LastOrderDistance struct {
	LastOrderNumerator   uint64
	LastOrderDenominator uint64
}

// SetParams changes one pool parameter. Which optional field is set depends
// on Param; nil fields encode as absent.
type SetParams struct {
	Value             *uint64
	NewPubkey         *solana.PublicKey
	Fees              *Fees
	LastOrderDistance *LastOrderDistance
	Param             uint8
}

type WithdrawPnl struct{}

type WithdrawSrm struct {
	Amount uint64
}

type SwapBaseIn struct {
	AmountIn         uint64
	MinimumAmountOut uint64
}

type PreInitialize struct {
	Nonce uint8
}

type SwapBaseOut struct {
	MaxAmountIn uint64
	AmountOut   uint64
}

type SimulateInfo struct {
	SwapBaseInValue  *SwapBaseIn
	SwapBaseOutValue *SwapBaseOut
	Param            uint8
}

type AdminCancelOrders struct {
	Limit uint16
}

type CreateConfigAccount struct{}

type UpdateConfigAccount struct {
	Owner         *solana.PublicKey
	CreatePoolFee *uint64
	Param         uint8
}

func (Initialize) Kind() InstructionKind          { return KindInitialize }
func (Initialize2) Kind() InstructionKind         { return KindInitialize2 }
func (MonitorStep) Kind() InstructionKind         { return KindMonitorStep }
func (Deposit) Kind() InstructionKind             { return KindDeposit }
func (Withdraw) Kind() InstructionKind            { return KindWithdraw }
func (MigrateToOpenBook) Kind() InstructionKind   { return KindMigrateToOpenBook }
func (SetParams) Kind() InstructionKind           { return KindSetParams }
func (WithdrawPnl) Kind() InstructionKind         { return KindWithdrawPnl }
func (WithdrawSrm) Kind() InstructionKind         { return KindWithdrawSrm }
func (SwapBaseIn) Kind() InstructionKind          { return KindSwapBaseIn }
func (PreInitialize) Kind() InstructionKind       { return KindPreInitialize }
func (SwapBaseOut) Kind() InstructionKind         { return KindSwapBaseOut }
func (SimulateInfo) Kind() InstructionKind        { return KindSimulateInfo }
func (AdminCancelOrders) Kind() InstructionKind   { return KindAdminCancelOrders }
func (CreateConfigAccount) Kind() InstructionKind { return KindCreateConfigAccount }
func (UpdateConfigAccount) Kind() InstructionKind { return KindUpdateConfigAccount }

func (Initialize) isInstruction()          {}
func (Initialize2) isInstruction()         {}
func (MonitorStep) isInstruction()         {}
func (Deposit) isInstruction()             {}
func (Withdraw) isInstruction()            {}
func (MigrateToOpenBook) isInstruction()   {}
func (SetParams) isInstruction()           {}
func (WithdrawPnl) isInstruction()         {}
func (WithdrawSrm) isInstruction()         {}
func (SwapBaseIn) isInstruction()          {}
func (PreInitialize) isInstruction()       {}
func (SwapBaseOut) isInstruction()         {}
func (SimulateInfo) isInstruction()        {}
func (AdminCancelOrders) isInstruction()   {}
func (CreateConfigAccount) isInstruction() {}
func (UpdateConfigAccount) isInstruction() {}

var instructionUnion = newTypedUnion("instruction", InstructionLayout,
	Initialize{}, Initialize2{}, MonitorStep{}, Deposit{}, Withdraw{},
	MigrateToOpenBook{}, SetParams{}, WithdrawPnl{}, WithdrawSrm{}, SwapBaseIn{},
	PreInitialize{}, SwapBaseOut{}, SimulateInfo{}, AdminCancelOrders{},
	CreateConfigAccount{}, UpdateConfigAccount{},
)

// EncodeInstruction encodes ix as its discriminator byte followed by the
// payload. Options add one presence byte each plus the payload when set.
func EncodeInstruction(ix Instruction) ([]byte, error) {
	if isNil(ix) {
		return nil, errors.NilPointer(errors.PhaseEncode, nil, "amm.Instruction")
	}
	return instructionUnion.encode(uint8(ix.Kind()), ix)
}

// DecodeInstruction decodes an instruction payload into its typed value.
// Bytes past the end of the payload are ignored, matching the on-chain
// unpacker.
func DecodeInstruction(data []byte) (Instruction, error) {
	v, _, err := instructionUnion.decode(data)
	if err != nil {
		return nil, err
	}
	return v.(Instruction), nil
}
