package claims

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/tiny-runtime/common"
)

// Call is a dispatchable Claims module call.
type Call interface {
	io.Serializable
	claimsCall()
}

// Call tags used in binary encoding.
const (
	tagCreateClaim byte = 0x00
	tagRevokeClaim byte = 0x01
)

// CreateClaim claims Content for the caller.
type CreateClaim struct {
	Content string
}

// RevokeClaim revokes the caller's claim of Content.
type RevokeClaim struct {
	Content string
}

func (*CreateClaim) claimsCall() {}
func (*RevokeClaim) claimsCall() {}

// EncodeBinary implements io.Serializable.
func (c *CreateClaim) EncodeBinary(w *io.BinWriter) {
	w.WriteB(tagCreateClaim)
	w.WriteString(c.Content)
}

// DecodeBinary implements io.Serializable. The tag is expected to be read
// already, see DecodeCall.
func (c *CreateClaim) DecodeBinary(r *io.BinReader) {
	c.Content = r.ReadString()
}

// String implements fmt.Stringer.
func (c *CreateClaim) String() string {
	return fmt.Sprintf("CreateClaim{content: %q}", c.Content)
}

// EncodeBinary implements io.Serializable.
func (c *RevokeClaim) EncodeBinary(w *io.BinWriter) {
	w.WriteB(tagRevokeClaim)
	w.WriteString(c.Content)
}

// DecodeBinary implements io.Serializable. The tag is expected to be read
// already, see DecodeCall.
func (c *RevokeClaim) DecodeBinary(r *io.BinReader) {
	c.Content = r.ReadString()
}

// String implements fmt.Stringer.
func (c *RevokeClaim) String() string {
	return fmt.Sprintf("RevokeClaim{content: %q}", c.Content)
}

// DecodeCall reads tagged Claims call from r. Unknown tags set r.Err.
func DecodeCall(r *io.BinReader) Call {
	tag := r.ReadB()
	if r.Err != nil {
		return nil
	}

	var c Call
	switch tag {
	case tagCreateClaim:
		c = new(CreateClaim)
	case tagRevokeClaim:
		c = new(RevokeClaim)
	default:
		r.Err = fmt.Errorf("%w: claims tag %d", common.ErrUnknownCall, tag)
		return nil
	}

	c.DecodeBinary(r)
	if r.Err != nil {
		return nil
	}

	return c
}
