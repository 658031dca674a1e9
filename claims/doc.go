/*
Package claims implements the proof of existence module of the runtime.

Claims module maps arbitrary content to the account which claimed it first.
A claim can be created only if nobody owns the content yet (including the
caller itself) and can be revoked only by its current owner. After
revocation the content is unclaimed and can be claimed again by anyone.

Dispatchable calls

	CreateClaim:
	  - name: content
	    type: String

	RevokeClaim:
	  - name: content
	    type: String

Storage layout

	0x01 + hash160(content)         -> owner + content
	0x02 + owner + hash160(content) -> content
*/
package claims
