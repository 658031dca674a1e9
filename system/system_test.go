package system_test

import (
	"math"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/tiny-runtime/common"
	"github.com/nspcc-dev/tiny-runtime/system"
	"github.com/stretchr/testify/require"
)

func newModule() *system.Module {
	return system.New(storage.NewMemCachedStore(storage.NewMemoryStore()))
}

func TestInitSystem(t *testing.T) {
	s := newModule()
	alice := common.DevAccount("alice")

	require.EqualValues(t, 0, s.BlockNumber())
	require.EqualValues(t, 0, s.Nonce(alice))

	require.EqualValues(t, 1, s.IncBlockNumber())
	s.IncNonce(alice)

	require.EqualValues(t, 1, s.BlockNumber())
	require.EqualValues(t, 1, s.Nonce(alice))
	require.EqualValues(t, 0, s.Nonce(common.DevAccount("bob")))
}

func TestIncBlockNumber(t *testing.T) {
	s := newModule()

	for i := 1; i <= 10; i++ {
		require.EqualValues(t, i, s.IncBlockNumber())
	}
	require.EqualValues(t, 10, s.BlockNumber())
}

func TestNoncesAreIndependent(t *testing.T) {
	s := newModule()
	alice := common.DevAccount("alice")
	bob := common.DevAccount("bob")

	s.IncNonce(alice)
	s.IncNonce(alice)
	s.IncNonce(bob)

	require.EqualValues(t, 2, s.Nonce(alice))
	require.EqualValues(t, 1, s.Nonce(bob))
}

func TestGenesis(t *testing.T) {
	s := newModule()
	alice := common.DevAccount("alice")

	s.Genesis(5, []system.GenesisNonce{{Account: alice, Nonce: 3}})

	require.EqualValues(t, 5, s.BlockNumber())
	require.EqualValues(t, 3, s.Nonce(alice))

	s.IncNonce(alice)
	require.EqualValues(t, 4, s.Nonce(alice))
}

func TestOverflow(t *testing.T) {
	s := newModule()
	alice := common.DevAccount("alice")

	s.Genesis(math.MaxUint32, []system.GenesisNonce{{Account: alice, Nonce: math.MaxUint32}})

	require.Panics(t, func() { s.IncBlockNumber() })
	require.Panics(t, func() { s.IncNonce(alice) })
	require.EqualValues(t, uint32(math.MaxUint32), s.BlockNumber())
}
