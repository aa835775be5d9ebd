package escrow

import (
	"context"
	"math"
	"testing"

	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
	"github.com/AlphaPrime8/fixed-rate-swap/orm"
	"github.com/AlphaPrime8/fixed-rate-swap/store"
	"github.com/AlphaPrime8/fixed-rate-swap/swaptest"
	"github.com/AlphaPrime8/fixed-rate-swap/swaptest/assert"
	"github.com/AlphaPrime8/fixed-rate-swap/x"
	"github.com/AlphaPrime8/fixed-rate-swap/x/token"
)

const testSeed = "myseed"

// fixture wires a token ledger with two mints and four funded accounts:
// alice offers mint A for mint B, bob takes the other side.
type fixture struct {
	db     store.CacheableKVStore
	bucket orm.ModelBucket
	bank   token.BaseController

	mintA swap.Address
	mintB swap.Address

	alice swap.Condition
	bob   swap.Condition

	deposit  swap.Address // alice, mint A, 200_000_000
	receive  swap.Address // alice, mint B, empty
	takerPay swap.Address // bob, mint B, 50_000_000
	takerGet swap.Address // bob, mint A, empty
}

func newFixture(t testing.TB) *fixture {
	t.Helper()
	f := &fixture{
		db:       store.MemStore(),
		bucket:   NewBucket(),
		bank:     token.NewController(),
		mintA:    swaptest.NewCondition().Address(),
		mintB:    swaptest.NewCondition().Address(),
		alice:    swaptest.NewCondition(),
		bob:      swaptest.NewCondition(),
		deposit:  swaptest.NewCondition().Address(),
		receive:  swaptest.NewCondition().Address(),
		takerPay: swaptest.NewCondition().Address(),
		takerGet: swaptest.NewCondition().Address(),
	}
	assert.Nil(t, f.bank.Issue(f.db, f.deposit, f.mintA, f.alice.Address(), 200_000_000))
	assert.Nil(t, f.bank.Issue(f.db, f.receive, f.mintB, f.alice.Address(), 0))
	assert.Nil(t, f.bank.Issue(f.db, f.takerPay, f.mintB, f.bob.Address(), 50_000_000))
	assert.Nil(t, f.bank.Issue(f.db, f.takerGet, f.mintA, f.bob.Address(), 0))
	return f
}

// initialize opens the standard offer: 200M of mint A at rate 10.
func (f *fixture) initialize(t testing.TB) {
	t.Helper()
	h := InitializeHandler{&swaptest.Auth{Signer: f.alice}, f.bucket, f.bank}
	tx := &swaptest.Tx{Msg: &InitializeMsg{
		Seed:           testSeed,
		DepositAccount: f.deposit,
		ReceiveAccount: f.receive,
		Amount:         200_000_000,
		Rate:           10,
	}}
	if _, err := h.Deliver(context.Background(), f.db, tx); err != nil {
		t.Fatalf("initialize failed: %+v", err)
	}
}

func (f *fixture) balance(t testing.TB, acct swap.Address) uint64 {
	t.Helper()
	a, err := f.bank.Account(f.db, acct)
	assert.Nil(t, err)
	return a.Amount
}

func TestInitializeHandler(t *testing.T) {
	cases := map[string]struct {
		mod     func(f *fixture, msg *InitializeMsg)
		auth    func(f *fixture) x.Authenticator
		wantErr *errors.Error
	}{
		"success": {},
		"duplicate seed": {
			mod: func(f *fixture, msg *InitializeMsg) {
				rec := &EscrowRecord{
					Initializer:     f.alice.Address(),
					DepositAccount:  f.deposit,
					ReceiveAccount:  f.receive,
					RemainingAmount: 1,
					Rate:            1,
					Seed:            testSeed,
					Bump:            initialBump,
				}
				assert.Nil(t, f.bucket.Put(f.db, []byte(testSeed), rec))
			},
			wantErr: errors.ErrDuplicate,
		},
		"signer does not own deposit account": {
			auth:    func(f *fixture) x.Authenticator { return &swaptest.Auth{Signer: f.bob} },
			wantErr: errors.ErrUnauthorized,
		},
		"deposit account holds too little": {
			mod: func(f *fixture, msg *InitializeMsg) {
				msg.Amount = 300_000_000
			},
			wantErr: errors.ErrInsufficientAmount,
		},
		"receive account owned by someone else": {
			mod: func(f *fixture, msg *InitializeMsg) {
				msg.ReceiveAccount = f.takerPay
			},
			wantErr: errors.ErrUnauthorized,
		},
		"deposit account does not exist": {
			mod: func(f *fixture, msg *InitializeMsg) {
				msg.DepositAccount = swaptest.NewCondition().Address()
			},
			wantErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			msg := &InitializeMsg{
				Seed:           testSeed,
				DepositAccount: f.deposit,
				ReceiveAccount: f.receive,
				Amount:         200_000_000,
				Rate:           10,
			}
			if tc.mod != nil {
				tc.mod(f, msg)
			}
			var auth x.Authenticator = &swaptest.Auth{Signer: f.alice}
			if tc.auth != nil {
				auth = tc.auth(f)
			}
			h := InitializeHandler{auth, f.bucket, f.bank}
			tx := &swaptest.Tx{Msg: msg}
			ctx := context.Background()

			res, err := h.Check(ctx, f.db, tx)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, initializeEscrowCost, res.GasAllocated)

			if _, err := h.Deliver(ctx, f.db, tx); err != nil {
				t.Fatalf("deliver failed: %+v", err)
			}

			var rec EscrowRecord
			assert.Nil(t, f.bucket.One(f.db, []byte(testSeed), &rec))
			assert.Equal(t, f.alice.Address(), rec.Initializer)
			assert.Equal(t, uint64(200_000_000), rec.RemainingAmount)
			assert.Equal(t, uint64(10), rec.Rate)

			// deposit account is now custodied
			acct, err := f.bank.Account(f.db, f.deposit)
			assert.Nil(t, err)
			custodian := Custodian(testSeed, uint8(rec.Bump)).Address()
			assert.Equal(t, custodian, acct.Owner)
		})
	}
}

func TestExchangeHandler(t *testing.T) {
	cases := map[string]struct {
		mod          func(f *fixture, msg *ExchangeMsg)
		auth         func(f *fixture) x.Authenticator
		wantErr      *errors.Error // from Check and Deliver alike
		wantDelErr   *errors.Error // only Deliver fails
		wantPay      uint64
		wantGet      uint64
		wantRemains  uint64
		wantReceived uint64
	}{
		"success": {
			wantPay: 45_000_000, wantGet: 50_000_000,
			wantRemains: 150_000_000, wantReceived: 5_000_000,
		},
		"exceeds remaining balance": {
			mod: func(f *fixture, msg *ExchangeMsg) {
				msg.SwapAmount = 21_000_000 // cost 210M > 200M
			},
			wantErr: ErrInsufficientRemaining,
		},
		"rate multiplication overflows": {
			mod: func(f *fixture, msg *ExchangeMsg) {
				msg.SwapAmount = math.MaxUint64/10 + 1
			},
			wantErr: errors.ErrOverflow,
		},
		"unknown escrow": {
			mod: func(f *fixture, msg *ExchangeMsg) {
				msg.Seed = "unknown"
			},
			wantErr: errors.ErrNotFound,
		},
		"signer does not own source account": {
			auth:    func(f *fixture) x.Authenticator { return &swaptest.Auth{Signer: f.alice} },
			wantErr: errors.ErrUnauthorized,
		},
		"taker cannot afford the payment": {
			mod: func(f *fixture, msg *ExchangeMsg) {
				// bob holds 50M of mint B but not 60M.
				msg.SwapAmount = 18_000_000
				assert.Nil(t, f.bank.Transfer(f.db, f.takerPay, f.receive, 40_000_000, f.bob.Address()))
			},
			wantDelErr: errors.ErrInsufficientAmount,
		},
		"source holds the wrong mint": {
			mod: func(f *fixture, msg *ExchangeMsg) {
				assert.Nil(t, f.bank.Issue(f.db, f.takerGet, f.mintA, f.bob.Address(), 10_000_000))
				msg.Source = f.takerGet
				msg.Destination = f.takerPay
			},
			wantDelErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			f.initialize(t)
			msg := &ExchangeMsg{
				Seed:        testSeed,
				Source:      f.takerPay,
				Destination: f.takerGet,
				SwapAmount:  5_000_000,
			}
			if tc.mod != nil {
				tc.mod(f, msg)
			}
			var auth x.Authenticator = &swaptest.Auth{Signer: f.bob}
			if tc.auth != nil {
				auth = tc.auth(f)
			}
			h := ExchangeHandler{auth, f.bucket, f.bank}
			tx := &swaptest.Tx{Msg: msg}
			ctx := context.Background()

			_, err := h.Check(ctx, f.db, tx)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)

			_, err = h.Deliver(ctx, f.db, tx)
			if tc.wantDelErr != nil {
				assert.IsErr(t, tc.wantDelErr, err)
				return
			}
			assert.Nil(t, err)

			assert.Equal(t, tc.wantPay, f.balance(t, f.takerPay))
			assert.Equal(t, tc.wantGet, f.balance(t, f.takerGet))
			assert.Equal(t, tc.wantReceived, f.balance(t, f.receive))

			var rec EscrowRecord
			assert.Nil(t, f.bucket.One(f.db, []byte(testSeed), &rec))
			assert.Equal(t, tc.wantRemains, rec.RemainingAmount)
			assert.Equal(t, tc.wantRemains, f.balance(t, f.deposit))
		})
	}
}

func TestCancelHandler(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)
	ctx := context.Background()
	tx := &swaptest.Tx{Msg: &CancelMsg{Seed: testSeed}}

	// only the initializer may cancel
	h := CancelHandler{&swaptest.Auth{Signer: f.bob}, f.bucket, f.bank}
	_, err := h.Check(ctx, f.db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	h = CancelHandler{&swaptest.Auth{Signer: f.alice}, f.bucket, f.bank}
	if _, err := h.Deliver(ctx, f.db, tx); err != nil {
		t.Fatalf("cancel failed: %+v", err)
	}

	// deposit account is back in alice's hands, untouched
	acct, err := f.bank.Account(f.db, f.deposit)
	assert.Nil(t, err)
	assert.Equal(t, f.alice.Address(), acct.Owner)
	assert.Equal(t, uint64(200_000_000), acct.Amount)

	// the record is destroyed exactly once
	has, err := f.bucket.Has(f.db, []byte(testSeed))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
	_, err = h.Deliver(ctx, f.db, tx)
	assert.IsErr(t, errors.ErrNotFound, err)
}

// TestEscrowLifecycle walks the full offer lifecycle: open, two partial
// exchanges, then cancel with the leftover returned.
func TestEscrowLifecycle(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)
	ctx := context.Background()

	exchange := ExchangeHandler{&swaptest.Auth{Signer: f.bob}, f.bucket, f.bank}
	tx := &swaptest.Tx{Msg: &ExchangeMsg{
		Seed:        testSeed,
		Source:      f.takerPay,
		Destination: f.takerGet,
		SwapAmount:  5_000_000,
	}}
	for i := 0; i < 2; i++ {
		if _, err := exchange.Deliver(ctx, f.db, tx); err != nil {
			t.Fatalf("exchange %d failed: %+v", i, err)
		}
	}

	var rec EscrowRecord
	assert.Nil(t, f.bucket.One(f.db, []byte(testSeed), &rec))
	assert.Equal(t, uint64(100_000_000), rec.RemainingAmount)
	assert.Equal(t, uint64(100_000_000), f.balance(t, f.takerGet))
	assert.Equal(t, uint64(10_000_000), f.balance(t, f.receive))
	assert.Equal(t, uint64(40_000_000), f.balance(t, f.takerPay))

	cancel := CancelHandler{&swaptest.Auth{Signer: f.alice}, f.bucket, f.bank}
	if _, err := cancel.Deliver(ctx, f.db, &swaptest.Tx{Msg: &CancelMsg{Seed: testSeed}}); err != nil {
		t.Fatalf("cancel failed: %+v", err)
	}

	acct, err := f.bank.Account(f.db, f.deposit)
	assert.Nil(t, err)
	assert.Equal(t, f.alice.Address(), acct.Owner)
	assert.Equal(t, uint64(100_000_000), acct.Amount)

	// a closed offer is gone for takers too
	_, err = exchange.Deliver(ctx, f.db, tx)
	assert.IsErr(t, errors.ErrNotFound, err)
}

// TestExchangeAtomicity delivers a failing exchange against a cache wrap
// and verifies that discarding it leaves no trace, even though the first
// transfer leg had already been applied.
func TestExchangeAtomicity(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)
	ctx := context.Background()

	// destination holds mint B, so the deposit leg must fail after the
	// taker leg went through
	h := ExchangeHandler{&swaptest.Auth{Signer: f.bob}, f.bucket, f.bank}
	tx := &swaptest.Tx{Msg: &ExchangeMsg{
		Seed:        testSeed,
		Source:      f.takerPay,
		Destination: f.receive,
		SwapAmount:  5_000_000,
	}}

	cache := f.db.CacheWrap()
	_, err := h.Deliver(ctx, cache, tx)
	assert.IsErr(t, errors.ErrType, err)
	cache.Discard()

	assert.Equal(t, uint64(50_000_000), f.balance(t, f.takerPay))
	assert.Equal(t, uint64(0), f.balance(t, f.receive))

	var rec EscrowRecord
	assert.Nil(t, f.bucket.One(f.db, []byte(testSeed), &rec))
	assert.Equal(t, uint64(200_000_000), rec.RemainingAmount)
}
