package app

import (
	"encoding/json"

	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
)

// Genesis is the initial state of the ledger, designed to be expressed as
// one json document with a section per extension.
type Genesis struct {
	AppOptions swap.Options `json:"app_options"`
}

// ParseGenesis loads a Genesis struct from raw json content.
func ParseGenesis(raw []byte) (Genesis, error) {
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrap(err, "cannot unmarshal genesis")
	}
	return gen, nil
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...swap.Initializer) swap.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []swap.Initializer
}

// FromGenesis will pass opts to all initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts swap.Options, kv swap.KVStore) error {
	for _, i := range c.inits {
		if i == nil {
			continue
		}
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
