package runtime

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/tiny-runtime/balances"
	"github.com/nspcc-dev/tiny-runtime/claims"
	"github.com/nspcc-dev/tiny-runtime/common"
	"github.com/nspcc-dev/tiny-runtime/system"
	"go.uber.org/zap"
)

var (
	// ErrBlockNumberMismatch is returned for blocks whose number differs from
	// the current runtime block number. Nothing of such block is applied.
	ErrBlockNumberMismatch = errors.New("block number mismatch")

	// ErrUnknownCall is returned for calls not belonging to any module.
	ErrUnknownCall = common.ErrUnknownCall
)

// Options groups optional Runtime parameters.
type Options struct {
	// Logger receives execution reports. Nop logger is used if nil.
	Logger *zap.Logger
}

// Runtime composes runtime modules and executes blocks against their state.
type Runtime struct {
	log *zap.Logger

	store *storage.MemCachedStore

	system   *system.Module
	balances *balances.Module
	claims   *claims.Module
}

var _ common.Dispatcher[Call] = (*Runtime)(nil)

// New returns Runtime with all modules in the empty genesis state.
func New(opts Options) *Runtime {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	st := storage.NewMemCachedStore(storage.NewMemoryStore())

	return &Runtime{
		log:      log,
		store:    st,
		system:   system.New(st),
		balances: balances.New(st),
		claims:   claims.New(st),
	}
}

// System returns System module bound to the runtime state.
func (r *Runtime) System() *system.Module {
	return r.system
}

// Balances returns Balances module bound to the runtime state. Its
// SetBalance and Genesis are for genesis seeding.
func (r *Runtime) Balances() *balances.Module {
	return r.balances
}

// Claims returns Claims module bound to the runtime state.
func (r *Runtime) Claims() *claims.Module {
	return r.claims
}

// BlockNumber returns the number of the next block to execute.
func (r *Runtime) BlockNumber() common.BlockNumber {
	return r.system.BlockNumber()
}

// Nonce returns the number of extrinsics submitted by the account.
func (r *Runtime) Nonce(who common.AccountID) common.Nonce {
	return r.system.Nonce(who)
}

// BalanceOf returns the account balance.
func (r *Runtime) BalanceOf(who common.AccountID) *uint256.Int {
	return r.balances.BalanceOf(who)
}

// Claim returns the owner of the content if it's claimed.
func (r *Runtime) Claim(content string) (common.AccountID, bool) {
	return r.claims.Claim(content)
}

// Dispatch routes the call to its module. The call is executed on a private
// cache layer persisted into the runtime state only on success.
func (r *Runtime) Dispatch(caller common.AccountID, call Call) error {
	cache := storage.NewMemCachedStore(r.store)

	var err error

	switch c := call.(type) {
	case *BalancesCall:
		err = balances.New(cache).Dispatch(caller, c.Call)
	case *ClaimsCall:
		err = claims.New(cache).Dispatch(caller, c.Call)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownCall, call)
	}

	if err != nil {
		return err
	}

	_, err = cache.Persist()
	if err != nil {
		return fmt.Errorf("persist call changes: %w", err)
	}

	return nil
}
