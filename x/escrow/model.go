package escrow

import (
	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
	"github.com/AlphaPrime8/fixed-rate-swap/orm"
)

var _ orm.Model = (*EscrowRecord)(nil)

// Validate ensures the record is consistent before it hits the store.
func (e *EscrowRecord) Validate() error {
	if err := validateSeed(e.Seed); err != nil {
		return err
	}
	if err := e.Initializer.Validate(); err != nil {
		return errors.Wrap(err, "initializer")
	}
	if err := e.DepositAccount.Validate(); err != nil {
		return errors.Wrap(err, "deposit account")
	}
	if err := e.ReceiveAccount.Validate(); err != nil {
		return errors.Wrap(err, "receive account")
	}
	if e.DepositAccount.Equals(e.ReceiveAccount) {
		return errors.Wrap(errors.ErrInput, "deposit and receive account are the same")
	}
	if e.Rate == 0 {
		return errors.Wrap(errors.ErrAmount, "rate")
	}
	if e.Bump > 255 {
		return errors.Wrapf(errors.ErrInput, "bump %d does not fit a byte", e.Bump)
	}
	return nil
}

// Copy returns a deep copy of the record.
func (e *EscrowRecord) Copy() orm.CloneableData {
	return &EscrowRecord{
		Initializer:     e.Initializer.Clone(),
		DepositAccount:  e.DepositAccount.Clone(),
		ReceiveAccount:  e.ReceiveAccount.Clone(),
		RemainingAmount: e.RemainingAmount,
		Rate:            e.Rate,
		Seed:            e.Seed,
		Bump:            e.Bump,
	}
}

// Custodian derives the keyless condition that owns the deposit account
// while the record stored under seed is active. The bump byte is part of
// the derivation so it must be read back from the record.
func Custodian(seed string, bump uint8) swap.Condition {
	data := make([]byte, 0, len(seed)+1)
	data = append(data, seed...)
	data = append(data, bump)
	return swap.NewCondition("escrow", "custody", data)
}

// NewBucket returns a bucket for keeping escrow records, indexed by seed.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket("esc", &EscrowRecord{})
}
