package amm

import (
	"github.com/raydium-io/raydium-amm/errors"
)

// AccountKind identifies one of the fixed-size account records.
type AccountKind uint8

const (
	AccountTargetOrders AccountKind = iota
	AccountFees
	AccountAmmInfo
	AccountAmmConfig
)

var accountNames = [...]string{
	AccountTargetOrders: "targetOrders",
	AccountFees:         "fees",
	AccountAmmInfo:      "ammInfo",
	AccountAmmConfig:    "ammConfig",
}

// AccountKinds lists every account kind in catalog order.
func AccountKinds() []AccountKind {
	return []AccountKind{AccountTargetOrders, AccountFees, AccountAmmInfo, AccountAmmConfig}
}

func (k AccountKind) String() string {
	if int(k) < len(accountNames) {
		return accountNames[k]
	}
	return "unknown"
}

func (k AccountKind) valid() bool {
	return int(k) < len(accountNames)
}

// ParseAccountKind resolves an account record name such as "ammInfo".
func ParseAccountKind(name string) (AccountKind, error) {
	for i, n := range accountNames {
		if n == name {
			return AccountKind(i), nil
		}
	}
	return 0, errors.InvalidName(errors.PhaseCatalog, "account", name)
}

// InstructionKind is the discriminator byte of an instruction payload.
type InstructionKind uint8

const (
	KindInitialize InstructionKind = iota
	KindInitialize2
	KindMonitorStep
	KindDeposit
	KindWithdraw
	KindMigrateToOpenBook
	KindSetParams
	KindWithdrawPnl
	KindWithdrawSrm
	KindSwapBaseIn
	KindPreInitialize
	KindSwapBaseOut
	KindSimulateInfo
	KindAdminCancelOrders
	KindCreateConfigAccount
	KindUpdateConfigAccount
)

var instructionNames = [...]string{
	KindInitialize:          "initialize",
	KindInitialize2:         "initialize2",
	KindMonitorStep:         "monitorStep",
	KindDeposit:             "deposit",
	KindWithdraw:            "withdraw",
	KindMigrateToOpenBook:   "migrateToOpenBook",
	KindSetParams:           "setParams",
	KindWithdrawPnl:         "withdrawPnl",
	KindWithdrawSrm:         "withdrawSrm",
	KindSwapBaseIn:          "swapBaseIn",
	KindPreInitialize:       "preInitialize",
	KindSwapBaseOut:         "swapBaseOut",
	KindSimulateInfo:        "simulateInfo",
	KindAdminCancelOrders:   "adminCancelOrders",
	KindCreateConfigAccount: "createConfigAccount",
	KindUpdateConfigAccount: "updateConfigAccount",
}

func (k InstructionKind) String() string {
	if int(k) < len(instructionNames) {
		return instructionNames[k]
	}
	return "unknown"
}

// ParseInstructionKind resolves an instruction name such as "swapBaseIn".
func ParseInstructionKind(name string) (InstructionKind, error) {
	for i, n := range instructionNames {
		if n == name {
			return InstructionKind(i), nil
		}
	}
	return 0, errors.InvalidName(errors.PhaseCatalog, "instruction", name)
}

// LogType is the leading byte of a ray_log event.
type LogType uint8

const (
	LogInit LogType = iota
	LogDeposit
	LogWithdraw
	LogSwapBaseIn
	LogSwapBaseOut
)

var logNames = [...]string{
	LogInit:        "init",
	LogDeposit:     "deposit",
	LogWithdraw:    "withdraw",
	LogSwapBaseIn:  "swapBaseIn",
	LogSwapBaseOut: "swapBaseOut",
}

func (t LogType) String() string {
	if int(t) < len(logNames) {
		return logNames[t]
	}
	return "unknown"
}
