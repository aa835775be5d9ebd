package escrow

import (
	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
)

const (
	pathInitializeMsg = "escrow/initialize"
	pathExchangeMsg   = "escrow/exchange"
	pathCancelMsg     = "escrow/cancel"

	maxSeedSize int = 32
)

var _ swap.Msg = (*InitializeMsg)(nil)
var _ swap.Msg = (*ExchangeMsg)(nil)
var _ swap.Msg = (*CancelMsg)(nil)

// Path fulfills swap.Msg interface to allow routing
func (InitializeMsg) Path() string {
	return pathInitializeMsg
}

// Path fulfills swap.Msg interface to allow routing
func (ExchangeMsg) Path() string {
	return pathExchangeMsg
}

// Path fulfills swap.Msg interface to allow routing
func (CancelMsg) Path() string {
	return pathCancelMsg
}

// Validate makes sure that this is sensible
func (m *InitializeMsg) Validate() error {
	if err := validateSeed(m.Seed); err != nil {
		return err
	}
	if err := m.DepositAccount.Validate(); err != nil {
		return errors.Wrap(err, "deposit account")
	}
	if err := m.ReceiveAccount.Validate(); err != nil {
		return errors.Wrap(err, "receive account")
	}
	if m.DepositAccount.Equals(m.ReceiveAccount) {
		return errors.Wrap(errors.ErrInput, "deposit and receive account are the same")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount")
	}
	if m.Rate == 0 {
		return errors.Wrap(errors.ErrAmount, "rate")
	}
	return nil
}

// Validate makes sure that this is sensible
func (m *ExchangeMsg) Validate() error {
	if err := validateSeed(m.Seed); err != nil {
		return err
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if m.Source.Equals(m.Destination) {
		return errors.Wrap(errors.ErrInput, "source and destination are the same")
	}
	if m.SwapAmount == 0 {
		return errors.Wrap(errors.ErrAmount, "swap amount")
	}
	return nil
}

// Validate makes sure that this is sensible
func (m *CancelMsg) Validate() error {
	return validateSeed(m.Seed)
}

func validateSeed(seed string) error {
	if seed == "" {
		return errors.Wrap(errors.ErrEmpty, "seed")
	}
	if len(seed) > maxSeedSize {
		return errors.Wrapf(errors.ErrInput, "seed longer than %d characters", maxSeedSize)
	}
	return nil
}
