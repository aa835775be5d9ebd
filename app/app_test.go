package app_test

import (
	"context"
	"fmt"
	"testing"

	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/app"
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
	"github.com/AlphaPrime8/fixed-rate-swap/store"
	"github.com/AlphaPrime8/fixed-rate-swap/swaptest"
	"github.com/AlphaPrime8/fixed-rate-swap/swaptest/assert"
	"github.com/AlphaPrime8/fixed-rate-swap/x/escrow"
	"github.com/AlphaPrime8/fixed-rate-swap/x/token"
	"github.com/AlphaPrime8/fixed-rate-swap/x/utils"
)

// TestFullStack drives the whole offer lifecycle through genesis loading,
// the decorator chain and the router, the way a node embedding this engine
// would.
func TestFullStack(t *testing.T) {
	alice := swaptest.NewCondition()
	bob := swaptest.NewCondition()
	mintA := swaptest.NewCondition().Address()
	mintB := swaptest.NewCondition().Address()
	deposit := swaptest.NewCondition().Address()
	receive := swaptest.NewCondition().Address()
	takerPay := swaptest.NewCondition().Address()
	takerGet := swaptest.NewCondition().Address()

	raw := fmt.Sprintf(`
	{
		"app_options": {
			"token": {
				"mints": [
					{"address": %q, "ticker": "AAA", "decimals": 6},
					{"address": %q, "ticker": "BBB", "decimals": 6}
				],
				"accounts": [
					{"address": %q, "mint": %q, "owner": %q, "amount": 1000},
					{"address": %q, "mint": %q, "owner": %q, "amount": 0},
					{"address": %q, "mint": %q, "owner": %q, "amount": 100},
					{"address": %q, "mint": %q, "owner": %q, "amount": 0}
				]
			}
		}
	}`,
		mintA, mintB,
		deposit, mintA, alice.Address(),
		receive, mintB, alice.Address(),
		takerPay, mintB, bob.Address(),
		takerGet, mintA, bob.Address(),
	)

	gen, err := app.ParseGenesis([]byte(raw))
	assert.Nil(t, err)

	db := store.MemStore()
	assert.Nil(t, app.ChainInitializers(token.Initializer{}).FromGenesis(gen.AppOptions, db))

	auth := &swaptest.CtxAuth{Key: "auth"}
	bank := token.NewController()
	r := app.NewRouter()
	escrow.RegisterRoutes(r, auth, bank)
	h := app.ChainDecorators(
		utils.NewRecovery(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(r)

	asAlice := auth.SetConditions(context.Background(), alice)
	asBob := auth.SetConditions(context.Background(), bob)

	// alice opens the offer: 1000 AAA at 5 AAA per BBB
	_, err = h.Deliver(asAlice, db, &swaptest.Tx{Msg: &escrow.InitializeMsg{
		Seed:           "offer",
		DepositAccount: deposit,
		ReceiveAccount: receive,
		Amount:         1000,
		Rate:           5,
	}})
	assert.Nil(t, err)

	// a broken exchange is rolled back as a whole: the destination holds
	// the wrong mint, so the second transfer leg fails after the first
	// leg was applied
	_, err = h.Deliver(asBob, db, &swaptest.Tx{Msg: &escrow.ExchangeMsg{
		Seed:        "offer",
		Source:      takerPay,
		Destination: receive,
		SwapAmount:  20,
	}})
	assert.IsErr(t, errors.ErrType, err)
	assertBalance(t, bank, db, takerPay, 100)
	assertBalance(t, bank, db, receive, 0)

	// a proper exchange: bob pays 20 BBB for 100 AAA
	_, err = h.Deliver(asBob, db, &swaptest.Tx{Msg: &escrow.ExchangeMsg{
		Seed:        "offer",
		Source:      takerPay,
		Destination: takerGet,
		SwapAmount:  20,
	}})
	assert.Nil(t, err)
	assertBalance(t, bank, db, takerPay, 80)
	assertBalance(t, bank, db, takerGet, 100)
	assertBalance(t, bank, db, receive, 20)
	assertBalance(t, bank, db, deposit, 900)

	// bob cannot cancel
	_, err = h.Deliver(asBob, db, &swaptest.Tx{Msg: &escrow.CancelMsg{Seed: "offer"}})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// alice can, and gets her deposit account back
	_, err = h.Deliver(asAlice, db, &swaptest.Tx{Msg: &escrow.CancelMsg{Seed: "offer"}})
	assert.Nil(t, err)
	acct, err := bank.Account(db, deposit)
	assert.Nil(t, err)
	assert.Equal(t, alice.Address(), acct.Owner)
	assertBalance(t, bank, db, deposit, 900)

	// the offer is gone
	_, err = h.Deliver(asAlice, db, &swaptest.Tx{Msg: &escrow.CancelMsg{Seed: "offer"}})
	assert.IsErr(t, errors.ErrNotFound, err)
}

func assertBalance(t testing.TB, bank token.Controller, db swap.ReadOnlyKVStore, acct swap.Address, want uint64) {
	t.Helper()
	a, err := bank.Account(db, acct)
	assert.Nil(t, err)
	assert.Equal(t, want, a.Amount)
}
