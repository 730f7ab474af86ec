package amm

import (
	"github.com/gagliardetto/solana-go"
)

// NewInstruction encodes ix and wraps it in a transaction instruction for
// programID. Account order is the caller's responsibility.
func NewInstruction(programID solana.PublicKey, accounts solana.AccountMetaSlice, ix Instruction) (*solana.GenericInstruction, error) {
	data, err := EncodeInstruction(ix)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(programID, accounts, data), nil
}
