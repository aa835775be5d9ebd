/*
Package escrow implements a fixed-rate token swap escrow.

An initializer opens an offer with InitializeMsg: a deposit account
holding the offered tokens is handed over to a keyless custodian derived
from the offer seed, and an EscrowRecord tracking the remaining amount is
stored under that seed. Any taker can then ExchangeMsg against the offer:
the taker pays swap_amount tokens into the initializer's receive account
and the custodian releases swap_amount*rate deposit tokens to the taker.
The remaining amount only ever decreases. The initializer can CancelMsg
at any time, which returns ownership of the deposit account and destroys
the record.

The custodian has no key. Its address is derived from the seed plus a
stored bump byte, so only code in this package can act with its
authority.
*/
package escrow
