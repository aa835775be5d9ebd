package escrow

import (
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
)

// Error codes 1010-1019 are reserved for this package.
var (
	// ErrInsufficientRemaining is returned when an exchange asks for more
	// deposit tokens than the escrow still offers.
	ErrInsufficientRemaining = errors.Register(1010, "insufficient remaining escrow balance")
)
