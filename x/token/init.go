package token

import (
	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
)

const optKey = "token"

// GenesisMint declares an asset class in the genesis file.
type GenesisMint struct {
	Address  swap.Address `json:"address"`
	Ticker   string       `json:"ticker"`
	Decimals uint32       `json:"decimals"`
}

// GenesisAccount declares a funded token account in the genesis file.
// Addresses are given in the encoded form accepted by ParseAddress.
type GenesisAccount struct {
	Address swap.Address `json:"address"`
	Mint    swap.Address `json:"mint"`
	Owner   swap.Address `json:"owner"`
	Amount  uint64       `json:"amount"`
}

type genesisOpts struct {
	Mints    []GenesisMint    `json:"mints"`
	Accounts []GenesisAccount `json:"accounts"`
}

// Initializer loads mints and initial token accounts from the genesis file.
type Initializer struct{}

var _ swap.Initializer = Initializer{}

// FromGenesis parses mint and account declarations from genesis and saves
// them to the database.
func (Initializer) FromGenesis(opts swap.Options, kv swap.KVStore) error {
	var gen genesisOpts
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return errors.Wrap(err, "cannot parse token options")
	}

	mints := NewMintBucket()
	for i, m := range gen.Mints {
		if err := m.Address.Validate(); err != nil {
			return errors.Wrapf(err, "mint #%d address", i)
		}
		mint := Mint{Ticker: m.Ticker, Decimals: m.Decimals}
		if err := mints.Put(kv, m.Address, &mint); err != nil {
			return errors.Wrapf(err, "mint #%d", i)
		}
	}

	ctrl := NewController()
	for i, acct := range gen.Accounts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d address", i)
		}
		if err := ctrl.Issue(kv, acct.Address, acct.Mint, acct.Owner, acct.Amount); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}
