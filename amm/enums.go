package amm

import "strconv"

// AmmStatus is the value of AmmInfo.Status.
type AmmStatus uint64

const (
	StatusUninitialized AmmStatus = iota
	StatusInitialized
	StatusDisabled
	StatusWithdrawOnly
	StatusLiquidityOnly
	StatusOrderBookOnly
	StatusSwapOnly
	StatusWaitingTrade
)

var statusNames = [...]string{
	"Uninitialized", "Initialized", "Disabled", "WithdrawOnly",
	"LiquidityOnly", "OrderBookOnly", "SwapOnly", "WaitingTrade",
}

func (s AmmStatus) String() string {
	return enumName(statusNames[:], uint64(s))
}

// Valid reports whether s is a known status.
func (s AmmStatus) Valid() bool { return uint64(s) < uint64(len(statusNames)) }

// DepositPermitted reports whether the status allows deposits.
func (s AmmStatus) DepositPermitted() bool {
	switch s {
	case StatusInitialized, StatusLiquidityOnly, StatusOrderBookOnly, StatusSwapOnly, StatusWaitingTrade:
		return true
	}
	return false
}

// WithdrawPermitted reports whether the status allows withdrawals.
func (s AmmStatus) WithdrawPermitted() bool {
	return s.Valid() && s != StatusUninitialized && s != StatusDisabled
}

// SwapPermitted reports whether the status allows swaps.
func (s AmmStatus) SwapPermitted() bool {
	switch s {
	case StatusInitialized, StatusSwapOnly, StatusWaitingTrade:
		return true
	}
	return false
}

// OrderBookPermitted reports whether the status allows order book cranking.
func (s AmmStatus) OrderBookPermitted() bool {
	return s == StatusInitialized || s == StatusOrderBookOnly
}

// AmmState is the value of AmmInfo.State, the order book crank step.
type AmmState uint64

const (
	StateInvalid AmmState = iota
	StateIdle
	StateCancelAllOrders
	StatePlanOrders
	StateCancelOrder
	StatePlaceOrders
	StatePurgeOrder
)

var stateNames = [...]string{
	"Invalid", "Idle", "CancelAllOrders", "PlanOrders", "CancelOrder", "PlaceOrders", "PurgeOrder",
}

func (s AmmState) String() string {
	return enumName(stateNames[:], uint64(s))
}

// ResetFlag is the value of AmmInfo.ResetFlag.
type ResetFlag uint64

const (
	ResetYes ResetFlag = iota
	ResetNo
)

func (f ResetFlag) String() string {
	return enumName([]string{"ResetYes", "ResetNo"}, uint64(f))
}

// AmmParams selects what a setParams instruction changes.
type AmmParams uint8

const (
	ParamStatus AmmParams = iota
	ParamState
	ParamOrderNum
	ParamDepth
	ParamAmountWave
	ParamMinPriceMultiplier
	ParamMaxPriceMultiplier
	ParamMinSize
	ParamVolMaxCutRatio
	ParamFees
	ParamAmmOwner
	ParamSetOpenTime
	ParamLastOrderDistance
	ParamInitOrderDepth
	ParamSetSwitchTime
	ParamClearOpenTime
	ParamSeparate
	ParamUpdateOpenOrder
)

var paramNames = [...]string{
	"Status", "State", "OrderNum", "Depth", "AmountWave", "MinPriceMultiplier",
	"MaxPriceMultiplier", "MinSize", "VolMaxCutRatio", "Fees", "AmmOwner", "SetOpenTime",
	"LastOrderDistance", "InitOrderDepth", "SetSwitchTime", "ClearOpenTime", "Seperate",
	"UpdateOpenOrder",
}

func (p AmmParams) String() string {
	return enumName(paramNames[:], uint64(p))
}

// SimulateParams selects what a simulateInfo instruction reports.
type SimulateParams uint8

const (
	SimulatePoolInfo SimulateParams = iota
	SimulateSwapBaseInInfo
	SimulateSwapBaseOutInfo
	SimulateRunCrankInfo
)

var simulateNames = [...]string{"PoolInfo", "SwapBaseInInfo", "SwapBaseOutInfo", "RunCrankInfo"}

func (p SimulateParams) String() string {
	return enumName(simulateNames[:], uint64(p))
}

// ConfigParams selects what an updateConfigAccount instruction changes.
type ConfigParams uint8

const (
	ConfigPnlOwner ConfigParams = iota
	ConfigCancelOwner
	ConfigCreatePoolFee
)

func (p ConfigParams) String() string {
	return enumName([]string{"PnlOwner", "CancelOwner", "CreatePoolFee"}, uint64(p))
}

func enumName(names []string, v uint64) string {
	if v < uint64(len(names)) {
		return names[v]
	}
	return "Unknown(" + strconv.FormatUint(v, 10) + ")"
}
