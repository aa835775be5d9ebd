package swaptest

import (
	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/crypto"
)

// NewKey returns a newly generated signer instance.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a newly generated identity.
func NewCondition() swap.Condition {
	return NewKey().PublicKey().Condition()
}
