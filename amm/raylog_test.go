package amm

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/raydium-io/raydium-amm/codec"
	cerrors "github.com/raydium-io/raydium-amm/errors"
)

func TestRayLog_RoundTrip(t *testing.T) {
	tests := []struct {
		log  RayLog
		size int
	}{
		{InitLog{Timestamp: 1_700_000_000, PcDecimals: 6, CoinDecimals: 9, PcLotSize: 1, CoinLotSize: 2, PcAmount: 3, CoinAmount: 4, Market: testMarket}, 1 + 8 + 2 + 32 + 32},
		{DepositLog{MaxCoin: 1, MaxPc: 2, Base: 0, PoolCoin: 3, PoolPc: 4, PoolLp: 5, CalcPnlX: codec.Uint128{Lo: 6, Hi: 1}, CalcPnlY: codec.NewUint128(7), DeductCoin: 8, DeductPc: 9, MintLp: 10}, 1 + 9*8 + 32},
		{WithdrawLog{WithdrawLp: 1, UserLp: 2, PoolCoin: 3, PoolPc: 4, PoolLp: 5, CalcPnlX: codec.NewUint128(6), CalcPnlY: codec.NewUint128(7), OutCoin: 8, OutPc: 9}, 1 + 7*8 + 32},
		{SwapBaseInLog{AmountIn: 1, MinimumOut: 2, Direction: 1, UserSource: 4, PoolCoin: 5, PoolPc: 6, OutAmount: 7}, 57},
		{SwapBaseOutLog{MaxIn: 1, AmountOut: 2, Direction: 2, UserSource: 4, PoolCoin: 5, PoolPc: 6, DeductIn: 7}, 57},
	}
	for _, tt := range tests {
		t.Run(tt.log.LogType().String(), func(t *testing.T) {
			raw, err := PackRayLog(tt.log)
			if err != nil {
				t.Fatalf("PackRayLog error: %v", err)
			}
			if len(raw) != tt.size || raw[0] != uint8(tt.log.LogType()) {
				t.Errorf("raw = %d bytes tag %d, want %d bytes tag %d", len(raw), raw[0], tt.size, tt.log.LogType())
			}

			b64, err := EncodeRayLog(tt.log)
			if err != nil {
				t.Fatalf("EncodeRayLog error: %v", err)
			}
			got, err := DecodeRayLog(b64)
			if err != nil {
				t.Fatalf("DecodeRayLog error: %v", err)
			}
			if diff := cmp.Diff(tt.log, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLogMessage(t *testing.T) {
	swap := SwapBaseInLog{AmountIn: 100, MinimumOut: 90, Direction: 2, UserSource: 1000, PoolCoin: 5000, PoolPc: 6000, OutAmount: 95}
	b64, err := EncodeRayLog(swap)
	if err != nil {
		t.Fatalf("EncodeRayLog error: %v", err)
	}

	log, ok, err := ParseLogMessage("Program log: ray_log: " + b64)
	if err != nil || !ok {
		t.Fatalf("ParseLogMessage = %v, %v", ok, err)
	}
	if diff := cmp.Diff(RayLog(swap), log); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, ok, err := ParseLogMessage("Program log: Instruction: SwapBaseIn"); ok || err != nil {
		t.Errorf("plain line: ok=%v err=%v, want not ok", ok, err)
	}

	_, ok, err = ParseLogMessage("Program log: ray_log: not*base64")
	if !ok || !errors.Is(err, &cerrors.Error{Kind: cerrors.KindInvalidInput}) {
		t.Errorf("bad payload: ok=%v err=%v, want invalid_input", ok, err)
	}
}

func TestDecodeRayLog_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want error
	}{
		{"empty", nil, cerrors.ErrBufferTooSmall},
		{"unknown type", []byte{5, 0}, cerrors.ErrUnknownVariant},
		{"short", []byte{3, 1, 2}, cerrors.ErrBufferTooSmall},
		{"trailing", append([]byte{4}, make([]byte, 57)...), cerrors.ErrWrongLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRayLog(base64.StdEncoding.EncodeToString(tt.raw))
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}
