package token

import (
	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
	"github.com/AlphaPrime8/fixed-rate-swap/orm"
)

// Controller is the functionality needed by other modules to move tokens
// between accounts and to reassign account ownership. Every mutating call
// names the authority on whose behalf it acts; the operation fails unless
// that authority owns the debited (or reassigned) account.
type Controller interface {
	// Transfer moves amount tokens from the src account to the dest
	// account. Both accounts must exist and hold the same mint.
	Transfer(db swap.KVStore, src, dest swap.Address, amount uint64, authority swap.Address) error

	// SetOwner reassigns ownership of the account to newOwner.
	SetOwner(db swap.KVStore, account swap.Address, newOwner, authority swap.Address) error

	// Account returns the state of the token account with given address.
	Account(db swap.ReadOnlyKVStore, account swap.Address) (*TokenAccount, error)
}

// BaseController implements Controller over the token account bucket.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a base controller using the default account bucket.
func NewController() BaseController {
	return BaseController{bucket: NewAccountBucket()}
}

func (c BaseController) Transfer(db swap.KVStore, src, dest swap.Address, amount uint64, authority swap.Address) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}
	if src.Equals(dest) {
		return errors.Wrap(errors.ErrInput, "source and destination are the same account")
	}

	var from TokenAccount
	if err := c.bucket.One(db, src, &from); err != nil {
		return errors.Wrapf(err, "source account %s", src)
	}
	if !from.Owner.Equals(authority) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s does not own source account", authority)
	}
	if from.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, transfer %d", from.Amount, amount)
	}

	var to TokenAccount
	if err := c.bucket.One(db, dest, &to); err != nil {
		return errors.Wrapf(err, "destination account %s", dest)
	}
	if !from.Mint.Equals(to.Mint) {
		return errors.Wrapf(errors.ErrType, "cannot transfer between mints %s and %s", from.Mint, to.Mint)
	}
	if to.Amount+amount < to.Amount {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}

	from.Amount -= amount
	to.Amount += amount

	if err := c.bucket.Put(db, src, &from); err != nil {
		return errors.Wrap(err, "cannot update source account")
	}
	if err := c.bucket.Put(db, dest, &to); err != nil {
		return errors.Wrap(err, "cannot update destination account")
	}
	return nil
}

func (c BaseController) SetOwner(db swap.KVStore, account swap.Address, newOwner, authority swap.Address) error {
	if err := newOwner.Validate(); err != nil {
		return errors.Wrap(err, "new owner")
	}

	var acct TokenAccount
	if err := c.bucket.One(db, account, &acct); err != nil {
		return errors.Wrapf(err, "account %s", account)
	}
	if !acct.Owner.Equals(authority) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s does not own account", authority)
	}

	acct.Owner = newOwner.Clone()
	return c.bucket.Put(db, account, &acct)
}

func (c BaseController) Account(db swap.ReadOnlyKVStore, account swap.Address) (*TokenAccount, error) {
	var acct TokenAccount
	if err := c.bucket.One(db, account, &acct); err != nil {
		return nil, errors.Wrapf(err, "account %s", account)
	}
	return &acct, nil
}

// Issue credits amount freshly minted tokens to the account, creating the
// account if it does not exist yet. It is meant for genesis setup and is
// not reachable through any message handler.
func (c BaseController) Issue(db swap.KVStore, account swap.Address, mint swap.Address, owner swap.Address, amount uint64) error {
	var acct TokenAccount
	switch err := c.bucket.One(db, account, &acct); {
	case err == nil:
		if !acct.Mint.Equals(mint) {
			return errors.Wrapf(errors.ErrType, "account holds mint %s", acct.Mint)
		}
		if acct.Amount+amount < acct.Amount {
			return errors.Wrap(errors.ErrOverflow, "account balance")
		}
		acct.Amount += amount
	case errors.ErrNotFound.Is(err):
		acct = TokenAccount{Mint: mint.Clone(), Owner: owner.Clone(), Amount: amount}
	default:
		return errors.Wrapf(err, "account %s", account)
	}
	return c.bucket.Put(db, account, &acct)
}
