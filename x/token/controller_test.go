package token

import (
	"testing"

	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
	"github.com/AlphaPrime8/fixed-rate-swap/store"
	"github.com/AlphaPrime8/fixed-rate-swap/swaptest"
	"github.com/AlphaPrime8/fixed-rate-swap/swaptest/assert"
)

func TestControllerTransfer(t *testing.T) {
	mint := swaptest.NewCondition().Address()
	otherMint := swaptest.NewCondition().Address()
	alice := swaptest.NewCondition().Address()
	bob := swaptest.NewCondition().Address()

	srcAcct := swaptest.NewCondition().Address()
	destAcct := swaptest.NewCondition().Address()
	foreignAcct := swaptest.NewCondition().Address()

	cases := map[string]struct {
		src       swap.Address
		dest      swap.Address
		amount    uint64
		authority swap.Address
		wantErr   *errors.Error
		wantSrc   uint64
		wantDest  uint64
	}{
		"success": {
			src: srcAcct, dest: destAcct, amount: 400, authority: alice,
			wantSrc: 600, wantDest: 450,
		},
		"whole balance": {
			src: srcAcct, dest: destAcct, amount: 1000, authority: alice,
			wantSrc: 0, wantDest: 1050,
		},
		"zero amount": {
			src: srcAcct, dest: destAcct, amount: 0, authority: alice,
			wantErr: errors.ErrAmount,
		},
		"same account": {
			src: srcAcct, dest: srcAcct, amount: 10, authority: alice,
			wantErr: errors.ErrInput,
		},
		"insufficient balance": {
			src: srcAcct, dest: destAcct, amount: 1001, authority: alice,
			wantErr: errors.ErrInsufficientAmount,
		},
		"wrong authority": {
			src: srcAcct, dest: destAcct, amount: 400, authority: bob,
			wantErr: errors.ErrUnauthorized,
		},
		"mint mismatch": {
			src: srcAcct, dest: foreignAcct, amount: 400, authority: alice,
			wantErr: errors.ErrType,
		},
		"missing source": {
			src: swaptest.NewCondition().Address(), dest: destAcct, amount: 400, authority: alice,
			wantErr: errors.ErrNotFound,
		},
		"missing destination": {
			src: srcAcct, dest: swaptest.NewCondition().Address(), amount: 400, authority: alice,
			wantErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			assert.Nil(t, ctrl.Issue(db, srcAcct, mint, alice, 1000))
			assert.Nil(t, ctrl.Issue(db, destAcct, mint, bob, 50))
			assert.Nil(t, ctrl.Issue(db, foreignAcct, otherMint, bob, 0))

			err := ctrl.Transfer(db, tc.src, tc.dest, tc.amount, tc.authority)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			assert.Nil(t, err)

			src, err := ctrl.Account(db, tc.src)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSrc, src.Amount)
			dest, err := ctrl.Account(db, tc.dest)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantDest, dest.Amount)
		})
	}
}

func TestControllerSetOwner(t *testing.T) {
	mint := swaptest.NewCondition().Address()
	alice := swaptest.NewCondition().Address()
	bob := swaptest.NewCondition().Address()
	acct := swaptest.NewCondition().Address()

	db := store.MemStore()
	ctrl := NewController()
	assert.Nil(t, ctrl.Issue(db, acct, mint, alice, 5))

	// only the current owner can give the account away
	err := ctrl.SetOwner(db, acct, bob, bob)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	assert.Nil(t, ctrl.SetOwner(db, acct, bob, alice))
	got, err := ctrl.Account(db, acct)
	assert.Nil(t, err)
	assert.Equal(t, bob, got.Owner)

	// after the handover the old owner has no power
	err = ctrl.SetOwner(db, acct, alice, alice)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	err = ctrl.SetOwner(db, swaptest.NewCondition().Address(), bob, alice)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestControllerIssue(t *testing.T) {
	mint := swaptest.NewCondition().Address()
	otherMint := swaptest.NewCondition().Address()
	alice := swaptest.NewCondition().Address()
	acct := swaptest.NewCondition().Address()

	db := store.MemStore()
	ctrl := NewController()

	assert.Nil(t, ctrl.Issue(db, acct, mint, alice, 100))
	assert.Nil(t, ctrl.Issue(db, acct, mint, alice, 23))
	got, err := ctrl.Account(db, acct)
	assert.Nil(t, err)
	assert.Equal(t, uint64(123), got.Amount)

	err = ctrl.Issue(db, acct, otherMint, alice, 1)
	assert.IsErr(t, errors.ErrType, err)
}
