package balances

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/tiny-runtime/common"
)

// Call is a dispatchable Balances module call.
type Call interface {
	io.Serializable
	balancesCall()
}

// Call tags used in binary encoding.
const (
	tagTransfer byte = 0x00
)

// Transfer moves Amount from the caller to To.
type Transfer struct {
	To     common.AccountID
	Amount *uint256.Int
}

func (*Transfer) balancesCall() {}

// EncodeBinary implements io.Serializable.
func (t *Transfer) EncodeBinary(w *io.BinWriter) {
	w.WriteB(tagTransfer)
	t.To.EncodeBinary(w)

	var amount [32]byte
	if t.Amount != nil {
		amount = t.Amount.Bytes32()
	}
	w.WriteBytes(amount[:])
}

// DecodeBinary implements io.Serializable. The tag is expected to be read
// already, see DecodeCall.
func (t *Transfer) DecodeBinary(r *io.BinReader) {
	t.To.DecodeBinary(r)

	var amount [32]byte
	r.ReadBytes(amount[:])
	t.Amount = new(uint256.Int).SetBytes(amount[:])
}

// String implements fmt.Stringer.
func (t *Transfer) String() string {
	return fmt.Sprintf("Transfer{to: %s, amount: %s}", common.AccountString(t.To), t.Amount)
}

// DecodeCall reads tagged Balances call from r. Unknown tags set r.Err.
func DecodeCall(r *io.BinReader) Call {
	tag := r.ReadB()
	if r.Err != nil {
		return nil
	}

	var c Call
	switch tag {
	case tagTransfer:
		c = new(Transfer)
	default:
		r.Err = fmt.Errorf("%w: balances tag %d", common.ErrUnknownCall, tag)
		return nil
	}

	c.DecodeBinary(r)
	if r.Err != nil {
		return nil
	}

	return c
}
