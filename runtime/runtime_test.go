package runtime_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/tiny-runtime/balances"
	"github.com/nspcc-dev/tiny-runtime/claims"
	"github.com/nspcc-dev/tiny-runtime/common"
	"github.com/nspcc-dev/tiny-runtime/runtime"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

var (
	alice   = common.DevAccount("alice")
	bob     = common.DevAccount("bob")
	charlie = common.DevAccount("charlie")
)

func newRuntime(t *testing.T) *runtime.Runtime {
	return runtime.New(runtime.Options{Logger: zaptest.NewLogger(t)})
}

func requireBalance(t *testing.T, r *runtime.Runtime, who common.AccountID, expected uint64) {
	t.Helper()
	require.Equal(t, uint256.NewInt(expected), r.BalanceOf(who))
}

func transfer(from, to common.AccountID, amount uint64) runtime.Extrinsic {
	return runtime.Extrinsic{Caller: from, Call: runtime.Transfer(to, uint256.NewInt(amount))}
}

func TestGenesis(t *testing.T) {
	r := runtime.New(runtime.Options{})

	require.EqualValues(t, 0, r.BlockNumber())
	requireBalance(t, r, alice, 0)
	require.EqualValues(t, 0, r.Nonce(alice))
	_, ok := r.Claim("anything")
	require.False(t, ok)
}

func TestExecuteBlock(t *testing.T) {
	r := newRuntime(t)
	r.Balances().SetBalance(alice, uint256.NewInt(100))

	err := r.ExecuteBlock(runtime.Block{
		Header: runtime.Header{BlockNumber: 0},
		Extrinsics: []runtime.Extrinsic{
			transfer(alice, bob, 30),
			transfer(alice, charlie, 20),
		},
	})
	require.NoError(t, err)

	requireBalance(t, r, alice, 50)
	requireBalance(t, r, bob, 30)
	requireBalance(t, r, charlie, 20)
	require.EqualValues(t, 1, r.BlockNumber())
	require.EqualValues(t, 2, r.Nonce(alice))
	require.EqualValues(t, 0, r.Nonce(bob))
}

func TestEmptyBlock(t *testing.T) {
	r := newRuntime(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, r.ExecuteBlock(runtime.Block{Header: runtime.Header{BlockNumber: common.BlockNumber(i)}}))
	}
	require.EqualValues(t, 3, r.BlockNumber())
}

func TestBlockNumberMismatch(t *testing.T) {
	r := newRuntime(t)
	r.Balances().SetBalance(alice, uint256.NewInt(100))

	for _, n := range []common.BlockNumber{1, 99} {
		err := r.ExecuteBlock(runtime.Block{
			Header:     runtime.Header{BlockNumber: n},
			Extrinsics: []runtime.Extrinsic{transfer(alice, bob, 30)},
		})
		require.ErrorIs(t, err, runtime.ErrBlockNumberMismatch)
	}

	require.EqualValues(t, 0, r.BlockNumber())
	require.EqualValues(t, 0, r.Nonce(alice))
	requireBalance(t, r, alice, 100)
	requireBalance(t, r, bob, 0)

	require.NoError(t, r.ExecuteBlock(runtime.Block{Header: runtime.Header{BlockNumber: 0}}))

	// Replay of an executed block.
	err := r.ExecuteBlock(runtime.Block{Header: runtime.Header{BlockNumber: 0}})
	require.ErrorIs(t, err, runtime.ErrBlockNumberMismatch)
	require.EqualValues(t, 1, r.BlockNumber())
}

func TestFailedExtrinsics(t *testing.T) {
	r := newRuntime(t)

	res, err := r.ApplyBlock(runtime.Block{
		Header: runtime.Header{BlockNumber: 0},
		Extrinsics: []runtime.Extrinsic{
			transfer(alice, bob, 1),
			{Caller: bob, Call: runtime.RevokeClaim("nothing")},
			transfer(alice, bob, 2),
		},
	})
	require.NoError(t, err)
	require.Len(t, res, 3)

	require.ErrorIs(t, res[0].Err, balances.ErrInsufficientBalance)
	require.ErrorIs(t, res[1].Err, claims.ErrClaimNotFound)
	require.ErrorIs(t, res[2].Err, balances.ErrInsufficientBalance)
	for i := range res {
		require.Equal(t, i, res[i].Index)
	}
	require.Equal(t, bob, res[1].Caller)

	require.EqualValues(t, 1, r.BlockNumber())
	require.EqualValues(t, 2, r.Nonce(alice))
	require.EqualValues(t, 1, r.Nonce(bob))
}

func TestFailureIsolation(t *testing.T) {
	r := newRuntime(t)
	r.Balances().SetBalance(alice, uint256.NewInt(10))

	res, err := r.ApplyBlock(runtime.Block{
		Header: runtime.Header{BlockNumber: 0},
		Extrinsics: []runtime.Extrinsic{
			transfer(alice, bob, 4),
			transfer(alice, charlie, 7),
			transfer(alice, charlie, 6),
			transfer(bob, charlie, 4),
		},
	})
	require.NoError(t, err)

	require.NoError(t, res[0].Err)
	require.ErrorIs(t, res[1].Err, balances.ErrInsufficientBalance)
	require.NoError(t, res[2].Err)
	require.NoError(t, res[3].Err)

	requireBalance(t, r, alice, 0)
	requireBalance(t, r, bob, 0)
	requireBalance(t, r, charlie, 10)
	require.EqualValues(t, 3, r.Nonce(alice))
	require.EqualValues(t, 1, r.Nonce(bob))
}

func TestClaimsThroughBlocks(t *testing.T) {
	r := newRuntime(t)

	res, err := r.ApplyBlock(runtime.Block{
		Header: runtime.Header{BlockNumber: 0},
		Extrinsics: []runtime.Extrinsic{
			{Caller: alice, Call: runtime.CreateClaim("claim_01")},
			{Caller: bob, Call: runtime.CreateClaim("claim_02")},
			{Caller: bob, Call: runtime.CreateClaim("claim_01")},
		},
	})
	require.NoError(t, err)
	require.ErrorIs(t, res[2].Err, claims.ErrClaimAlreadyExists)

	owner, ok := r.Claim("claim_01")
	require.True(t, ok)
	require.Equal(t, alice, owner)

	res, err = r.ApplyBlock(runtime.Block{
		Header: runtime.Header{BlockNumber: 1},
		Extrinsics: []runtime.Extrinsic{
			{Caller: alice, Call: runtime.RevokeClaim("claim_01")},
			{Caller: bob, Call: runtime.RevokeClaim("claim_03")},
			{Caller: alice, Call: runtime.RevokeClaim("claim_02")},
		},
	})
	require.NoError(t, err)
	require.NoError(t, res[0].Err)
	require.ErrorIs(t, res[1].Err, claims.ErrClaimNotFound)
	require.ErrorIs(t, res[2].Err, claims.ErrNotClaimOwner)

	_, ok = r.Claim("claim_01")
	require.False(t, ok)
	owner, ok = r.Claim("claim_02")
	require.True(t, ok)
	require.Equal(t, bob, owner)

	require.EqualValues(t, 2, r.BlockNumber())
	require.EqualValues(t, 3, r.Nonce(alice))
	require.EqualValues(t, 3, r.Nonce(bob))
}

func TestUnknownCall(t *testing.T) {
	r := newRuntime(t)

	for _, c := range []runtime.Call{
		nil,
		&runtime.BalancesCall{},
		&runtime.ClaimsCall{},
	} {
		require.ErrorIs(t, r.Dispatch(alice, c), runtime.ErrUnknownCall)
	}

	res, err := r.ApplyBlock(runtime.Block{
		Header:     runtime.Header{BlockNumber: 0},
		Extrinsics: []runtime.Extrinsic{{Caller: alice, Call: &runtime.ClaimsCall{}}},
	})
	require.NoError(t, err)
	require.ErrorIs(t, res[0].Err, runtime.ErrUnknownCall)
	require.EqualValues(t, 1, r.Nonce(alice))
}

func TestExtrinsicsWithoutEncoding(t *testing.T) {
	for name, tc := range map[string]struct {
		call      runtime.Call
		err       error
		encodable bool
	}{
		"nil call":           {call: nil, err: runtime.ErrUnknownCall},
		"empty balances":     {call: &runtime.BalancesCall{}, err: runtime.ErrUnknownCall},
		"empty claims":       {call: &runtime.ClaimsCall{}, err: runtime.ErrUnknownCall},
		"transfer no amount": {call: runtime.Transfer(bob, nil), encodable: true},
	} {
		t.Run(name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			r := runtime.New(runtime.Options{Logger: zap.New(core)})

			b := runtime.Block{
				Header:     runtime.Header{BlockNumber: 0},
				Extrinsics: []runtime.Extrinsic{{Caller: alice, Call: tc.call}},
			}

			var (
				res []runtime.ExtrinsicResult
				err error
			)
			require.NotPanics(t, func() { res, err = r.ApplyBlock(b) })
			require.NoError(t, err)
			require.Len(t, res, 1)
			if tc.err != nil {
				require.ErrorIs(t, res[0].Err, tc.err)
			} else {
				require.NoError(t, res[0].Err)
			}

			require.EqualValues(t, 1, r.BlockNumber())
			require.EqualValues(t, 1, r.Nonce(alice))
			requireBalance(t, r, alice, 0)

			executed := logs.FilterMessage("block executed").All()
			require.Len(t, executed, 1)
			if tc.encodable {
				require.NotEqual(t, util.Uint256{}.String(), executed[0].ContextMap()["hash"])
			} else {
				require.Equal(t, util.Uint256{}.String(), executed[0].ContextMap()["hash"])
			}
		})
	}
}

func TestExtrinsicFailureReport(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := runtime.New(runtime.Options{Logger: zap.New(core)})

	require.NoError(t, r.ExecuteBlock(runtime.Block{
		Header: runtime.Header{BlockNumber: 0},
		Extrinsics: []runtime.Extrinsic{
			{Caller: alice, Call: runtime.CreateClaim("doc")},
			transfer(bob, alice, 1),
		},
	}))

	failures := logs.FilterMessage("extrinsic failed").All()
	require.Len(t, failures, 1)

	fields := failures[0].ContextMap()
	require.EqualValues(t, 0, fields["block"])
	require.EqualValues(t, 1, fields["index"])
	require.Equal(t, common.AccountString(bob), fields["caller"])
	require.Contains(t, fields["error"], balances.ErrInsufficientBalance.Error())

	require.Equal(t, 1, logs.FilterMessage("block executed").Len())

	require.Error(t, r.ExecuteBlock(runtime.Block{Header: runtime.Header{BlockNumber: 5}}))
	require.Equal(t, 1, logs.FilterMessage("block rejected").Len())
}
