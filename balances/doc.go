/*
Package balances implements the ledger module of the runtime.

Balances module stores account balances and moves them between accounts
with checked arithmetic. An account which was never set has zero balance.
Transfer is all-or-nothing: both resulting balances are computed before
anything is written, so a failed transfer leaves the ledger untouched.

Balances are unsigned 256-bit integers. A transfer fails with
ErrInsufficientBalance when the sender has less than the amount and with
ErrOverflow when the receiver balance would exceed 2^256-1. Transfers of
zero and transfers to self are valid, the latter never change the balance.

SetBalance and Genesis are meant for genesis seeding only, they are not
reachable through dispatch.

Dispatchable calls

	Transfer:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: uint256

Storage layout

	0x01 + account -> balance, 32 bytes BE
*/
package balances
