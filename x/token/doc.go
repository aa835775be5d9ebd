/*
Package token implements a minimal single-mint token ledger.

Each TokenAccount is addressed by a 32 byte identifier, holds a balance
of exactly one mint and names the only address authorized to debit it
or to give it away. Other extensions drive the ledger through the
Controller interface, passing in the authority their own logic has
established. There are no token messages; accounts are created at
genesis or by extensions that embed a controller.
*/
package token
