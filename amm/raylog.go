package amm

import (
	"encoding/base64"
	"strings"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/raydium-io/raydium-amm/codec"
	"github.com/raydium-io/raydium-amm/errors"
)

// RayLogPrefix marks program log lines that carry an encoded event.
const RayLogPrefix = "ray_log: "

// RayLog is the closed set of typed events the program emits through
// "ray_log:" log lines.
type RayLog interface {
	LogType() LogType
	isRayLog()
}

// InitLog is emitted when a pool is initialized.
type InitLog struct {
	Market       solana.PublicKey
	Timestamp    uint64
	PcLotSize    uint64
	CoinLotSize  uint64
	PcAmount     uint64
	CoinAmount   uint64
	PcDecimals   uint8
	CoinDecimals uint8
}

type DepositLog struct {
	CalcPnlX   codec.Uint128
	CalcPnlY   codec.Uint128
	MaxCoin    uint64
	MaxPc      uint64
	Base       uint64
	PoolCoin   uint64
	PoolPc     uint64
	PoolLp     uint64
	DeductCoin uint64
	DeductPc   uint64
	MintLp     uint64
}

type WithdrawLog struct {
	CalcPnlX   codec.Uint128
	CalcPnlY   codec.Uint128
	WithdrawLp uint64
	UserLp     uint64
	PoolCoin   uint64
	PoolPc     uint64
	PoolLp     uint64
	OutCoin    uint64
	OutPc      uint64
}

// SwapBaseInLog records a fixed-input swap. Direction is 1 for coin to pc
// and 2 for pc to coin.
type SwapBaseInLog struct {
	AmountIn   uint64
	MinimumOut uint64
	Direction  uint64
	UserSource uint64
	PoolCoin   uint64
	PoolPc     uint64
	OutAmount  uint64
}

type SwapBaseOutLog struct {
	MaxIn      uint64
	AmountOut  uint64
	Direction  uint64
	UserSource uint64
	PoolCoin   uint64
	PoolPc     uint64
	DeductIn   uint64
}

func (InitLog) LogType() LogType        { return LogInit }
func (DepositLog) LogType() LogType     { return LogDeposit }
func (WithdrawLog) LogType() LogType    { return LogWithdraw }
func (SwapBaseInLog) LogType() LogType  { return LogSwapBaseIn }
func (SwapBaseOutLog) LogType() LogType { return LogSwapBaseOut }

func (InitLog) isRayLog()        {}
func (DepositLog) isRayLog()     {}
func (WithdrawLog) isRayLog()    {}
func (SwapBaseInLog) isRayLog()  {}
func (SwapBaseOutLog) isRayLog() {}

var rayLogUnion = newTypedUnion("rayLog", RayLogLayout,
	InitLog{}, DepositLog{}, WithdrawLog{}, SwapBaseInLog{}, SwapBaseOutLog{},
)

// UnpackRayLog decodes a raw event record. data must hold exactly one record.
func UnpackRayLog(data []byte) (RayLog, error) {
	v, n, err := rayLogUnion.decode(data)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, errors.WrongLength(errors.PhaseDecode, []string{"rayLog"}, n, len(data))
	}
	return v.(RayLog), nil
}

// PackRayLog encodes an event as its raw record.
func PackRayLog(log RayLog) ([]byte, error) {
	if isNil(log) {
		return nil, errors.NilPointer(errors.PhaseEncode, nil, "amm.RayLog")
	}
	return rayLogUnion.encode(uint8(log.LogType()), log)
}

// DecodeRayLog decodes the base64 payload of a "ray_log:" line.
func DecodeRayLog(b64 string) (RayLog, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return nil, errors.InvalidInput(errors.PhaseDecode, "ray_log payload is not base64", err)
	}
	return UnpackRayLog(data)
}

// EncodeRayLog returns the base64 payload the program would log for log.
func EncodeRayLog(log RayLog) (string, error) {
	data, err := PackRayLog(log)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// ParseLogMessage decodes a transaction log line such as
// "Program log: ray_log: A0Bc...". ok is false when the line carries no
// ray_log payload.
func ParseLogMessage(line string) (log RayLog, ok bool, err error) {
	i := strings.Index(line, RayLogPrefix)
	if i < 0 {
		return nil, false, nil
	}
	log, err = DecodeRayLog(line[i+len(RayLogPrefix):])
	if err != nil {
		Logger().Debug("ray_log decode failed", zap.Error(err))
		return nil, true, err
	}
	return log, true, nil
}
