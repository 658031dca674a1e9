package balances

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/tiny-runtime/common"
)

// ID is the Balances module storage ID.
const ID byte = 0x01

const prefixAccount byte = 0x01

var (
	// ErrInsufficientBalance is returned when the sender can't cover the
	// transferred amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrOverflow is returned when the receiver balance would overflow.
	ErrOverflow = errors.New("balance overflow")
)

// GenesisBalance is an initial balance of an account.
type GenesisBalance struct {
	Account common.AccountID
	Amount  *uint256.Int
}

// Module provides access to the Balances module state.
type Module struct {
	ctx common.Context
}

var _ common.Dispatcher[Call] = (*Module)(nil)

// New returns Balances module operating on the given store.
func New(s common.Store) *Module {
	return &Module{ctx: common.NewContext(s, ID)}
}

// Genesis sets initial balances of the given accounts.
func (m *Module) Genesis(data []GenesisBalance) {
	for i := range data {
		m.SetBalance(data[i].Account, data[i].Amount)
	}
}

// Balance returns the account balance and whether the account has ever been
// set.
func (m *Module) Balance(who common.AccountID) (*uint256.Int, bool) {
	data := m.ctx.Get([]byte{prefixAccount}, who.BytesBE())
	if data == nil {
		return common.ZeroBalance(), false
	}

	return new(uint256.Int).SetBytes(data), true
}

// BalanceOf returns the account balance, zero if it was never set.
func (m *Module) BalanceOf(who common.AccountID) *uint256.Int {
	b, _ := m.Balance(who)
	return b
}

// SetBalance unconditionally overwrites the account balance.
func (m *Module) SetBalance(who common.AccountID, amount *uint256.Int) {
	data := amount.Bytes32()
	m.ctx.Put(data[:], []byte{prefixAccount}, who.BytesBE())
}

// Transfer moves amount from one account to another. It fails with
// ErrInsufficientBalance or ErrOverflow leaving both balances intact.
func (m *Module) Transfer(from, to common.AccountID, amount *uint256.Int) error {
	if amount == nil {
		amount = common.ZeroBalance()
	}

	fromBalance := m.BalanceOf(from)

	newFrom, underflow := new(uint256.Int).SubOverflow(fromBalance, amount)
	if underflow {
		return fmt.Errorf("%w: %s has %s, transfer of %s requested",
			ErrInsufficientBalance, common.AccountString(from), fromBalance, amount)
	}

	if from.Equals(to) {
		return nil
	}

	toBalance := m.BalanceOf(to)

	newTo, overflow := new(uint256.Int).AddOverflow(toBalance, amount)
	if overflow {
		return fmt.Errorf("%w: %s has %s, transfer of %s requested",
			ErrOverflow, common.AccountString(to), toBalance, amount)
	}

	m.SetBalance(from, newFrom)
	m.SetBalance(to, newTo)

	return nil
}

// Iterate passes all accounts having a balance entry to f in ascending order
// of their big-endian script hash. Iteration stops when f returns false.
func (m *Module) Iterate(f func(who common.AccountID, balance *uint256.Int) bool) {
	m.ctx.Find([]byte{prefixAccount}, func(k, v []byte) bool {
		who, err := util.Uint160DecodeBytesBE(k)
		if err != nil {
			return true
		}

		return f(who, new(uint256.Int).SetBytes(v))
	})
}

// Dispatch implements common.Dispatcher.
func (m *Module) Dispatch(caller common.AccountID, call Call) error {
	switch c := call.(type) {
	case *Transfer:
		return m.Transfer(caller, c.To, c.Amount)
	default:
		return fmt.Errorf("%w: balances %T", common.ErrUnknownCall, call)
	}
}
