package claims

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/tiny-runtime/common"
)

// ID is the Claims module storage ID.
const ID byte = 0x02

// Prefixes used for module data storage.
const (
	// prefixClaim contains map from claim key to owner + content, where
	// claim key = hash160(content).
	prefixClaim byte = 0x01
	// prefixOwnerClaim contains map from (owner + claim key) to content.
	prefixOwnerClaim byte = 0x02
)

var (
	// ErrClaimAlreadyExists is returned on attempt to claim owned content.
	ErrClaimAlreadyExists = errors.New("claim already exists")
	// ErrClaimNotFound is returned on attempt to revoke unowned content.
	ErrClaimNotFound = errors.New("claim not found")
	// ErrNotClaimOwner is returned on attempt to revoke content owned by
	// another account.
	ErrNotClaimOwner = errors.New("claim is owned by another account")
)

// Module provides access to the Claims module state.
type Module struct {
	ctx common.Context
}

var _ common.Dispatcher[Call] = (*Module)(nil)

// New returns Claims module operating on the given store.
func New(s common.Store) *Module {
	return &Module{ctx: common.NewContext(s, ID)}
}

// Claim returns the owner of the content and true or false if the content is
// unclaimed.
func (m *Module) Claim(content string) (common.AccountID, bool) {
	owner, stored, ok := m.claim(claimKey(content))
	if !ok || stored != content {
		return common.AccountID{}, false
	}

	return owner, true
}

// claim reads the record stored under the claim key.
func (m *Module) claim(key []byte) (common.AccountID, string, bool) {
	data := m.ctx.Get([]byte{prefixClaim}, key)
	if len(data) < util.Uint160Size {
		return common.AccountID{}, "", false
	}

	owner, err := util.Uint160DecodeBytesBE(data[:util.Uint160Size])
	if err != nil {
		return common.AccountID{}, "", false
	}

	return owner, string(data[util.Uint160Size:]), true
}

// CreateClaim makes owner the owner of the unclaimed content.
func (m *Module) CreateClaim(owner common.AccountID, content string) error {
	key := claimKey(content)

	cur, stored, ok := m.claim(key)
	if ok {
		if stored != content {
			return fmt.Errorf("%w: key of %q is taken by another content", ErrClaimAlreadyExists, content)
		}
		return fmt.Errorf("%w: %q is owned by %s", ErrClaimAlreadyExists, content, common.AccountString(cur))
	}

	m.ctx.Put(append(owner.BytesBE(), content...), []byte{prefixClaim}, key)
	m.ctx.Put([]byte(content), []byte{prefixOwnerClaim}, owner.BytesBE(), key)

	return nil
}

// RevokeClaim removes the claim of the content. Only the current owner can
// revoke it.
func (m *Module) RevokeClaim(caller common.AccountID, content string) error {
	owner, ok := m.Claim(content)
	if !ok {
		return fmt.Errorf("%w: %q", ErrClaimNotFound, content)
	}

	if !owner.Equals(caller) {
		return fmt.Errorf("%w: %q is owned by %s", ErrNotClaimOwner, content, common.AccountString(owner))
	}

	key := claimKey(content)

	m.ctx.Delete([]byte{prefixClaim}, key)
	m.ctx.Delete([]byte{prefixOwnerClaim}, owner.BytesBE(), key)

	return nil
}

// ClaimsOf returns all the content owned by the account ordered by claim key.
func (m *Module) ClaimsOf(owner common.AccountID) []string {
	var res []string

	m.ctx.Find(append([]byte{prefixOwnerClaim}, owner.BytesBE()...), func(_, v []byte) bool {
		res = append(res, string(v))
		return true
	})

	return res
}

// Dispatch implements common.Dispatcher.
func (m *Module) Dispatch(caller common.AccountID, call Call) error {
	switch c := call.(type) {
	case *CreateClaim:
		return m.CreateClaim(caller, c.Content)
	case *RevokeClaim:
		return m.RevokeClaim(caller, c.Content)
	default:
		return fmt.Errorf("%w: claims %T", common.ErrUnknownCall, call)
	}
}

// claimKey computes hash160 from the given content.
func claimKey(content string) []byte {
	return hash.Hash160([]byte(content)).BytesBE()
}
