package common

import (
	"github.com/holiman/uint256"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

type (
	// AccountID identifies an account. It's a 20-byte script hash, so it's
	// comparable, totally ordered (see Less) and usable as a map key.
	AccountID = util.Uint160

	// Nonce counts extrinsics submitted by a single account.
	Nonce uint32

	// BlockNumber is the number of blocks executed since genesis.
	BlockNumber uint32
)

// ZeroBalance returns a new zero balance value. Balances are *uint256.Int,
// arithmetic on them must go through AddOverflow/SubOverflow.
func ZeroBalance() *uint256.Int {
	return new(uint256.Int)
}

// ParseBalance decodes a decimal balance string.
func ParseBalance(s string) (*uint256.Int, error) {
	return uint256.FromDecimal(s)
}
