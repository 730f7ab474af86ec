package raydiumamm

import "testing"

func TestProgramIDFor(t *testing.T) {
	tests := []struct {
		cluster Cluster
		want    string
		wantErr bool
	}{
		{Mainnet, "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8", false},
		{Devnet, "DRaya7Kj3aMWQSy19kSjvmuwq9docCHofyP9kanQGaav", false},
		{Cluster("testnet"), "", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.cluster), func(t *testing.T) {
			got, err := ProgramIDFor(tt.cluster)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("ProgramIDFor = %s, want %s", got, tt.want)
			}
		})
	}
}
