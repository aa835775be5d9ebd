package token

import (
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
	"github.com/AlphaPrime8/fixed-rate-swap/orm"
)

var _ orm.Model = (*Mint)(nil)

// Validate ensures the mint descriptor is complete.
func (m *Mint) Validate() error {
	if m.Ticker == "" {
		return errors.Wrap(errors.ErrEmpty, "ticker")
	}
	return nil
}

// Copy returns a copy of the mint descriptor.
func (m *Mint) Copy() orm.CloneableData {
	return &Mint{
		Ticker:   m.Ticker,
		Decimals: m.Decimals,
	}
}

// NewMintBucket returns a bucket for keeping mint descriptors, indexed by
// the mint address.
func NewMintBucket() orm.ModelBucket {
	return orm.NewModelBucket("mints", &Mint{})
}

var _ orm.Model = (*TokenAccount)(nil)

// Validate ensures the account is linked to a mint and an owner.
func (t *TokenAccount) Validate() error {
	if err := t.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := t.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// Copy returns a deep copy of the account.
func (t *TokenAccount) Copy() orm.CloneableData {
	return &TokenAccount{
		Mint:   t.Mint.Clone(),
		Owner:  t.Owner.Clone(),
		Amount: t.Amount,
	}
}

// NewAccountBucket returns a bucket for keeping token accounts. Accounts
// are indexed by their address.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket("tokens", &TokenAccount{})
}
