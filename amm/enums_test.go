package amm

import "testing"

func TestAmmStatus_Permissions(t *testing.T) {
	tests := []struct {
		status                              AmmStatus
		deposit, withdraw, swap, orderBook bool
	}{
		{StatusUninitialized, false, false, false, false},
		{StatusInitialized, true, true, true, true},
		{StatusDisabled, false, false, false, false},
		{StatusWithdrawOnly, false, true, false, false},
		{StatusLiquidityOnly, true, true, false, false},
		{StatusOrderBookOnly, true, true, false, true},
		{StatusSwapOnly, true, true, true, false},
		{StatusWaitingTrade, true, true, true, false},
		{AmmStatus(8), false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.DepositPermitted(); got != tt.deposit {
				t.Errorf("DepositPermitted = %v, want %v", got, tt.deposit)
			}
			if got := tt.status.WithdrawPermitted(); got != tt.withdraw {
				t.Errorf("WithdrawPermitted = %v, want %v", got, tt.withdraw)
			}
			if got := tt.status.SwapPermitted(); got != tt.swap {
				t.Errorf("SwapPermitted = %v, want %v", got, tt.swap)
			}
			if got := tt.status.OrderBookPermitted(); got != tt.orderBook {
				t.Errorf("OrderBookPermitted = %v, want %v", got, tt.orderBook)
			}
		})
	}
}

func TestEnumNames(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{StatusWaitingTrade.String(), "WaitingTrade"},
		{AmmStatus(99).String(), "Unknown(99)"},
		{StatePlanOrders.String(), "PlanOrders"},
		{ResetNo.String(), "ResetNo"},
		{ParamSeparate.String(), "Seperate"},
		{ParamUpdateOpenOrder.String(), "UpdateOpenOrder"},
		{AmmParams(18).String(), "Unknown(18)"},
		{SimulateRunCrankInfo.String(), "RunCrankInfo"},
		{ConfigCreatePoolFee.String(), "CreatePoolFee"},
		{LogSwapBaseOut.String(), "swapBaseOut"},
		{RecordVariant.String(), "variant"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestAmmInfo_Accessors(t *testing.T) {
	info := &AmmInfo{Status: uint64(StatusSwapOnly), State: uint64(StateIdle), ResetFlag: uint64(ResetNo)}
	if info.AmmStatus() != StatusSwapOnly || info.AmmState() != StateIdle || info.ResetFlagValue() != ResetNo {
		t.Errorf("accessors = %v %v %v", info.AmmStatus(), info.AmmState(), info.ResetFlagValue())
	}
}
