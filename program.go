package raydiumamm

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Program IDs of the deployed AMM.
var (
	ProgramID       = solana.MustPublicKeyFromBase58("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")
	DevnetProgramID = solana.MustPublicKeyFromBase58("DRaya7Kj3aMWQSy19kSjvmuwq9docCHofyP9kanQGaav")
)

// Cluster names a Solana cluster.
type Cluster string

const (
	Mainnet Cluster = "mainnet-beta"
	Devnet  Cluster = "devnet"
)

// ProgramIDFor returns the AMM program ID deployed on c.
func ProgramIDFor(c Cluster) (solana.PublicKey, error) {
	switch c {
	case Mainnet:
		return ProgramID, nil
	case Devnet:
		return DevnetProgramID, nil
	}
	return solana.PublicKey{}, fmt.Errorf("no AMM program on cluster %q", c)
}
