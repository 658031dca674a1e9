package common

import (
	"errors"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// ErrEmptyAccount is returned by ParseAccount for an empty string.
var ErrEmptyAccount = errors.New("empty account")

// DevAccount derives a well-known development account from the name like
// "alice" or "bob". It's hash160 of the name, there is no key behind it.
func DevAccount(name string) AccountID {
	return hash.Hash160([]byte(name))
}

// ParseAccount decodes an account from its textual form. Accepted formats
// are Neo address, 0x-prefixed LE hex script hash and a development account
// name (see DevAccount).
func ParseAccount(s string) (AccountID, error) {
	if s == "" {
		return AccountID{}, ErrEmptyAccount
	}

	if u, err := address.StringToUint160(s); err == nil {
		return u, nil
	}

	if strings.HasPrefix(s, "0x") {
		return util.Uint160DecodeStringLE(s[2:])
	}

	return DevAccount(s), nil
}

// AccountString returns Neo address of the account.
func AccountString(a AccountID) string {
	return address.Uint160ToString(a)
}
