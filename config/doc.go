/*
Package config describes runtime scenarios: genesis state and a sequence of
blocks to execute, stored in YAML files.

	Logger:
	  Level: info
	  Encoding: console
	Genesis:
	  BlockNumber: 0
	  Balances:
	    alice: "100"
	Blocks:
	  - Number: 0
	    Extrinsics:
	      - Caller: alice
	        Transfer: {To: bob, Amount: "30"}
	      - Caller: bob
	        CreateClaim: {Content: "doc"}

Accounts are given as Neo addresses, 0x-prefixed script hashes or development
account names, see common.ParseAccount. Amounts are decimal strings, so any
256-bit value can be expressed.
*/
package config
