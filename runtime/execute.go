package runtime

import (
	"fmt"

	"github.com/nspcc-dev/tiny-runtime/common"
	"go.uber.org/zap"
)

// ExtrinsicResult is an outcome of a single extrinsic execution.
type ExtrinsicResult struct {
	// Index of the extrinsic in the block.
	Index int
	// Caller of the extrinsic.
	Caller common.AccountID
	// Call of the extrinsic.
	Call Call
	// Err is nil for successful calls.
	Err error
}

// ExecuteBlock executes the block. It fails only with ErrBlockNumberMismatch,
// in which case nothing is changed. Failed extrinsics are logged and skipped.
func (r *Runtime) ExecuteBlock(b Block) error {
	_, err := r.ApplyBlock(b)
	return err
}

// ApplyBlock is the same as ExecuteBlock but additionally returns outcomes of
// all extrinsics in block order.
func (r *Runtime) ApplyBlock(b Block) ([]ExtrinsicResult, error) {
	current := r.system.BlockNumber()
	if b.Header.BlockNumber != current {
		blocksRejected.Inc()
		r.log.Warn("block rejected",
			zap.Uint32("expected", uint32(current)),
			zap.Uint32("got", uint32(b.Header.BlockNumber)))

		return nil, fmt.Errorf("%w: expected %d, got %d", ErrBlockNumberMismatch, current, b.Header.BlockNumber)
	}

	var (
		results = make([]ExtrinsicResult, 0, len(b.Extrinsics))
		failed  int
	)

	for i, ext := range b.Extrinsics {
		// Nonce counts submissions, it's increased whatever the call outcome is.
		r.system.IncNonce(ext.Caller)

		r.log.Debug("dispatching extrinsic",
			zap.Uint32("block", uint32(current)),
			zap.Int("index", i),
			zap.String("caller", common.AccountString(ext.Caller)),
			zap.Any("call", ext.Call))

		err := r.Dispatch(ext.Caller, ext.Call)
		if err != nil {
			failed++
			r.log.Warn("extrinsic failed",
				zap.Uint32("block", uint32(current)),
				zap.Int("index", i),
				zap.String("caller", common.AccountString(ext.Caller)),
				zap.Error(err))
		}

		updateExtrinsicMetric(err)

		results = append(results, ExtrinsicResult{
			Index:  i,
			Caller: ext.Caller,
			Call:   ext.Call,
			Err:    err,
		})
	}

	next := r.system.IncBlockNumber()

	if _, err := r.store.Persist(); err != nil {
		// The state remains readable through the cache, so this isn't fatal.
		r.log.Error("can't persist block state", zap.Uint32("block", uint32(current)), zap.Error(err))
	}

	blocksExecuted.Inc()
	updateBlockNumberMetric(next)

	if ce := r.log.Check(zap.InfoLevel, "block executed"); ce != nil {
		ce.Write(
			zap.Uint32("block", uint32(current)),
			zap.Stringer("hash", b.Hash()),
			zap.Int("extrinsics", len(b.Extrinsics)),
			zap.Int("failed", failed))
	}

	return results, nil
}
