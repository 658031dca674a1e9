/*
Package system implements the System module of the runtime.

System module keeps the runtime bookkeeping: the number of the next block
to execute and per-account nonces. The block number starts at zero and is
increased by the runtime exactly once per executed block. An account nonce
is increased once per extrinsic submitted by the account, before the call is
dispatched, so it counts submissions rather than successful calls.

System module has no dispatchable calls. It's driven by the runtime only.

Storage layout

	0x01           -> block number, 4 bytes LE
	0x02 + account -> nonce, 4 bytes LE
*/
package system
