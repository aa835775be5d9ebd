package escrow

import (
	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
	"github.com/AlphaPrime8/fixed-rate-swap/orm"
	"github.com/AlphaPrime8/fixed-rate-swap/x"
	"github.com/AlphaPrime8/fixed-rate-swap/x/token"
)

const (
	// pay escrow cost up-front
	initializeEscrowCost int64 = 300
	exchangeEscrowCost   int64 = 0
	cancelEscrowCost     int64 = 0
)

// initialBump seeds the custodian derivation. It is stored on the record
// so the derivation can evolve without breaking active escrows.
const initialBump = 255

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r swap.Registry, auth x.Authenticator, ctrl token.Controller) {
	bucket := NewBucket()

	r.Handle(&InitializeMsg{}, InitializeHandler{auth, bucket, ctrl})
	r.Handle(&ExchangeMsg{}, ExchangeHandler{auth, bucket, ctrl})
	r.Handle(&CancelMsg{}, CancelHandler{auth, bucket, ctrl})
}

// InitializeHandler opens new escrows.
type InitializeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   token.Controller
}

var _ swap.Handler = InitializeHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h InitializeHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}

	return &swap.CheckResult{GasAllocated: initializeEscrowCost}, nil
}

// Deliver stores the record and hands the deposit account over to the
// custodian if all preconditions are met.
func (h InitializeHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	msg, initializer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	record := &EscrowRecord{
		Initializer:     initializer,
		DepositAccount:  msg.DepositAccount,
		ReceiveAccount:  msg.ReceiveAccount,
		RemainingAmount: msg.Amount,
		Rate:            msg.Rate,
		Seed:            msg.Seed,
		Bump:            initialBump,
	}
	if err := h.bucket.Put(db, []byte(msg.Seed), record); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}

	// Hand the deposit over to the custodian. From here on only this
	// extension can move it.
	custodian := Custodian(msg.Seed, initialBump).Address()
	if err := h.bank.SetOwner(db, msg.DepositAccount, custodian, initializer); err != nil {
		return nil, errors.Wrap(err, "cannot custody deposit account")
	}

	return &swap.DeliverResult{Data: []byte(msg.Seed)}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h InitializeHandler) validate(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*InitializeMsg, swap.Address, error) {
	var msg InitializeMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	switch has, err := h.bucket.Has(db, []byte(msg.Seed)); {
	case err != nil:
		return nil, nil, errors.Wrap(err, "cannot check escrow existence")
	case has:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "escrow %q", msg.Seed)
	}

	deposit, err := h.bank.Account(db, msg.DepositAccount)
	if err != nil {
		return nil, nil, errors.Wrap(err, "deposit account")
	}
	if !h.auth.HasAddress(ctx, deposit.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "deposit account owner")
	}
	if deposit.Amount < msg.Amount {
		return nil, nil, errors.Wrapf(errors.ErrInsufficientAmount, "deposit account holds %d", deposit.Amount)
	}

	receive, err := h.bank.Account(db, msg.ReceiveAccount)
	if err != nil {
		return nil, nil, errors.Wrap(err, "receive account")
	}
	if !receive.Owner.Equals(deposit.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "receive account owner")
	}

	return &msg, deposit.Owner, nil
}

// ExchangeHandler swaps taker tokens against a custodied deposit.
type ExchangeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   token.Controller
}

var _ swap.Handler = ExchangeHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h ExchangeHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}

	return &swap.CheckResult{GasAllocated: exchangeEscrowCost}, nil
}

// Deliver moves the taker payment to the initializer and the matching
// deposit cut to the taker, then decrements the record.
func (h ExchangeHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	msg, record, taker, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// overflow was ruled out during validation
	cost := msg.SwapAmount * record.Rate

	// Taker leg first: pay the initializer.
	if err := h.bank.Transfer(db, msg.Source, record.ReceiveAccount, msg.SwapAmount, taker); err != nil {
		return nil, errors.Wrap(err, "taker payment")
	}

	// Deposit leg: the custodian releases the matching cut.
	custodian := Custodian(record.Seed, uint8(record.Bump)).Address()
	if err := h.bank.Transfer(db, record.DepositAccount, msg.Destination, cost, custodian); err != nil {
		return nil, errors.Wrap(err, "deposit release")
	}

	record.RemainingAmount -= cost
	if err := h.bucket.Put(db, []byte(record.Seed), record); err != nil {
		return nil, errors.Wrap(err, "cannot update escrow")
	}

	return &swap.DeliverResult{Data: []byte(record.Seed)}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ExchangeHandler) validate(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*ExchangeMsg, *EscrowRecord, swap.Address, error) {
	var msg ExchangeMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	var record EscrowRecord
	if err := h.bucket.One(db, []byte(msg.Seed), &record); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load escrow from the store")
	}

	source, err := h.bank.Account(db, msg.Source)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "source account")
	}
	if !h.auth.HasAddress(ctx, source.Owner) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "source account owner")
	}

	cost := msg.SwapAmount * record.Rate
	if cost/record.Rate != msg.SwapAmount {
		return nil, nil, nil, errors.Wrapf(errors.ErrOverflow, "%d tokens at rate %d", msg.SwapAmount, record.Rate)
	}
	if cost > record.RemainingAmount {
		return nil, nil, nil, errors.Wrapf(ErrInsufficientRemaining, "%d requested, %d remaining", cost, record.RemainingAmount)
	}

	return &msg, &record, source.Owner, nil
}

// CancelHandler closes escrows and returns the deposit account.
type CancelHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   token.Controller
}

var _ swap.Handler = CancelHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CancelHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}

	return &swap.CheckResult{GasAllocated: cancelEscrowCost}, nil
}

// Deliver returns the deposit account to the initializer and destroys the
// record. A record is destroyed exactly once; a second cancel cannot find
// it anymore.
func (h CancelHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	record, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	custodian := Custodian(record.Seed, uint8(record.Bump)).Address()
	if err := h.bank.SetOwner(db, record.DepositAccount, record.Initializer, custodian); err != nil {
		return nil, errors.Wrap(err, "cannot return deposit account")
	}
	if err := h.bucket.Delete(db, []byte(record.Seed)); err != nil {
		return nil, errors.Wrap(err, "cannot delete escrow")
	}

	return &swap.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CancelHandler) validate(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*EscrowRecord, error) {
	var msg CancelMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	var record EscrowRecord
	if err := h.bucket.One(db, []byte(msg.Seed), &record); err != nil {
		return nil, errors.Wrap(err, "cannot load escrow from the store")
	}

	// Only the initializer may close the offer.
	if !h.auth.HasAddress(ctx, record.Initializer) {
		return nil, errors.ErrUnauthorized
	}

	return &record, nil
}
