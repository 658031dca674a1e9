package system

import (
	"encoding/binary"
	"math"

	"github.com/nspcc-dev/tiny-runtime/common"
)

// ID is the System module storage ID.
const ID byte = 0x00

// Prefixes used for module data storage.
const (
	prefixBlockNumber byte = 0x01
	prefixNonce       byte = 0x02
)

// GenesisNonce is an initial nonce of an account.
type GenesisNonce struct {
	Account common.AccountID
	Nonce   common.Nonce
}

// Module provides access to the System module state.
type Module struct {
	ctx common.Context
}

// New returns System module operating on the given store.
func New(s common.Store) *Module {
	return &Module{ctx: common.NewContext(s, ID)}
}

// Genesis overwrites block number and nonces with the given initial values.
func (m *Module) Genesis(blockNumber common.BlockNumber, nonces []GenesisNonce) {
	m.putBlockNumber(blockNumber)

	for i := range nonces {
		m.putNonce(nonces[i].Account, nonces[i].Nonce)
	}
}

// BlockNumber returns the current block number, zero at genesis.
func (m *Module) BlockNumber() common.BlockNumber {
	return common.BlockNumber(getUint32(m.ctx.Get([]byte{prefixBlockNumber})))
}

// IncBlockNumber increases block number by one and returns the new value.
// It panics if the counter would wrap.
func (m *Module) IncBlockNumber() common.BlockNumber {
	n := m.BlockNumber()
	if n == math.MaxUint32 {
		panic("block number overflow")
	}

	n++
	m.putBlockNumber(n)

	return n
}

// Nonce returns the nonce of the account, zero for unseen accounts.
func (m *Module) Nonce(who common.AccountID) common.Nonce {
	return common.Nonce(getUint32(m.ctx.Get([]byte{prefixNonce}, who.BytesBE())))
}

// IncNonce increases the account nonce by one creating the entry if it's
// missing. It panics if the nonce would wrap.
func (m *Module) IncNonce(who common.AccountID) {
	n := m.Nonce(who)
	if n == math.MaxUint32 {
		panic("nonce overflow for " + common.AccountString(who))
	}

	m.putNonce(who, n+1)
}

func (m *Module) putBlockNumber(n common.BlockNumber) {
	m.ctx.Put(putUint32(uint32(n)), []byte{prefixBlockNumber})
}

func (m *Module) putNonce(who common.AccountID, n common.Nonce) {
	m.ctx.Put(putUint32(uint32(n)), []byte{prefixNonce}, who.BytesBE())
}

func getUint32(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}

	return binary.LittleEndian.Uint32(b)
}

func putUint32(n uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, n)
	return b
}
