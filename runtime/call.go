package runtime

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/tiny-runtime/balances"
	"github.com/nspcc-dev/tiny-runtime/claims"
	"github.com/nspcc-dev/tiny-runtime/common"
)

// Call is a call to one of the runtime modules. It's implemented by
// BalancesCall and ClaimsCall only.
type Call interface {
	io.Serializable
	runtimeCall()
}

// BalancesCall wraps a Balances module call.
type BalancesCall struct {
	Call balances.Call
}

// ClaimsCall wraps a Claims module call.
type ClaimsCall struct {
	Call claims.Call
}

func (*BalancesCall) runtimeCall() {}
func (*ClaimsCall) runtimeCall()   {}

// Transfer returns a call transferring amount from the caller to the account.
func Transfer(to common.AccountID, amount *uint256.Int) Call {
	return &BalancesCall{Call: &balances.Transfer{To: to, Amount: amount}}
}

// CreateClaim returns a call claiming the content for the caller.
func CreateClaim(content string) Call {
	return &ClaimsCall{Call: &claims.CreateClaim{Content: content}}
}

// RevokeClaim returns a call revoking the caller's claim of the content.
func RevokeClaim(content string) Call {
	return &ClaimsCall{Call: &claims.RevokeClaim{Content: content}}
}

// EncodeBinary implements io.Serializable.
func (c *BalancesCall) EncodeBinary(w *io.BinWriter) {
	if c.Call == nil {
		w.Err = errNilCall
		return
	}

	w.WriteB(balances.ID)
	c.Call.EncodeBinary(w)
}

// DecodeBinary implements io.Serializable. The module ID is expected to be
// read already, see DecodeCall.
func (c *BalancesCall) DecodeBinary(r *io.BinReader) {
	c.Call = balances.DecodeCall(r)
}

// String implements fmt.Stringer.
func (c *BalancesCall) String() string {
	return fmt.Sprintf("Balances(%v)", c.Call)
}

// EncodeBinary implements io.Serializable.
func (c *ClaimsCall) EncodeBinary(w *io.BinWriter) {
	if c.Call == nil {
		w.Err = errNilCall
		return
	}

	w.WriteB(claims.ID)
	c.Call.EncodeBinary(w)
}

// DecodeBinary implements io.Serializable. The module ID is expected to be
// read already, see DecodeCall.
func (c *ClaimsCall) DecodeBinary(r *io.BinReader) {
	c.Call = claims.DecodeCall(r)
}

// String implements fmt.Stringer.
func (c *ClaimsCall) String() string {
	return fmt.Sprintf("Claims(%v)", c.Call)
}

// DecodeCall reads a call prefixed with its module ID from r. Unknown
// modules set r.Err to an error wrapping ErrUnknownCall.
func DecodeCall(r *io.BinReader) Call {
	id := r.ReadB()
	if r.Err != nil {
		return nil
	}

	var c Call
	switch id {
	case balances.ID:
		c = new(BalancesCall)
	case claims.ID:
		c = new(ClaimsCall)
	default:
		r.Err = fmt.Errorf("%w: module %d", ErrUnknownCall, id)
		return nil
	}

	c.DecodeBinary(r)
	if r.Err != nil {
		return nil
	}

	return c
}
