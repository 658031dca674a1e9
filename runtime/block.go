package runtime

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/tiny-runtime/common"
)

// MaxExtrinsicsPerBlock limits the number of extrinsics in a decoded block.
const MaxExtrinsicsPerBlock = 0xFFFF

var errNilCall = errors.New("missing call")

// Header holds block metadata.
type Header struct {
	// Number of the runtime block this block is to be executed at.
	BlockNumber common.BlockNumber
}

// Extrinsic is a call submitted by an account.
type Extrinsic struct {
	Caller common.AccountID
	Call   Call
}

// Block is an ordered list of extrinsics. Extrinsics are executed in the
// order they're listed.
type Block struct {
	Header     Header
	Extrinsics []Extrinsic
}

// EncodeBinary implements io.Serializable.
func (h *Header) EncodeBinary(w *io.BinWriter) {
	w.WriteU32LE(uint32(h.BlockNumber))
}

// DecodeBinary implements io.Serializable.
func (h *Header) DecodeBinary(r *io.BinReader) {
	h.BlockNumber = common.BlockNumber(r.ReadU32LE())
}

// EncodeBinary implements io.Serializable.
func (e *Extrinsic) EncodeBinary(w *io.BinWriter) {
	if e.Call == nil {
		w.Err = errNilCall
		return
	}

	e.Caller.EncodeBinary(w)
	e.Call.EncodeBinary(w)
}

// DecodeBinary implements io.Serializable.
func (e *Extrinsic) DecodeBinary(r *io.BinReader) {
	e.Caller.DecodeBinary(r)
	e.Call = DecodeCall(r)
}

// EncodeBinary implements io.Serializable.
func (b *Block) EncodeBinary(w *io.BinWriter) {
	b.Header.EncodeBinary(w)

	w.WriteVarUint(uint64(len(b.Extrinsics)))
	for i := range b.Extrinsics {
		b.Extrinsics[i].EncodeBinary(w)
	}
}

// DecodeBinary implements io.Serializable.
func (b *Block) DecodeBinary(r *io.BinReader) {
	b.Header.DecodeBinary(r)

	n := r.ReadVarUint()
	if r.Err != nil {
		return
	}
	if n > MaxExtrinsicsPerBlock {
		r.Err = fmt.Errorf("too many extrinsics: %d > %d", n, MaxExtrinsicsPerBlock)
		return
	}

	b.Extrinsics = make([]Extrinsic, n)
	for i := range b.Extrinsics {
		b.Extrinsics[i].DecodeBinary(r)
		if r.Err != nil {
			return
		}
	}
}

// Bytes returns binary representation of the block.
func (b *Block) Bytes() ([]byte, error) {
	w := io.NewBufBinWriter()
	b.EncodeBinary(w.BinWriter)
	if w.Err != nil {
		return nil, w.Err
	}

	return w.Bytes(), nil
}

// NewBlockFromBytes decodes block from its binary representation.
func NewBlockFromBytes(data []byte) (*Block, error) {
	b := new(Block)

	buf := bytes.NewReader(data)
	r := io.NewBinReaderFromIO(buf)
	b.DecodeBinary(r)
	if r.Err != nil {
		return nil, fmt.Errorf("decode block: %w", r.Err)
	}

	if buf.Len() != 0 {
		return nil, fmt.Errorf("decode block: %d trailing bytes", buf.Len())
	}

	return b, nil
}

// Hash returns SHA-256 of the block binary representation. It's zero for
// blocks that can't be encoded.
func (b *Block) Hash() util.Uint256 {
	data, err := b.Bytes()
	if err != nil {
		return util.Uint256{}
	}

	return hash.Sha256(data)
}
