/*
Package runtime implements the block executor composing all runtime modules.

Runtime owns the state of System, Balances and Claims modules, all kept in
a single in-memory key-value store. The state is created empty at New
(genesis) and is changed by ExecuteBlock only, except for genesis seeding
done through module accessors before the first block.

A block is accepted only if its header carries the current block number.
Extrinsics of an accepted block are applied in order: the caller nonce is
increased first, then the call is dispatched to its module. A failed call
is reported and skipped, it never aborts the block nor rolls back previous
extrinsics. After all extrinsics the block number is increased by one.

Each call is executed on a private cache layer over the runtime state which
is persisted only if the call succeeds, so failed calls leave no partial
changes.

Runtime is not safe for concurrent use. Callers sharing it between
goroutines must serialize whole ExecuteBlock invocations.
*/
package runtime
