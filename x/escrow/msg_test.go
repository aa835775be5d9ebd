package escrow

import (
	"strings"
	"testing"

	"github.com/AlphaPrime8/fixed-rate-swap/errors"
	"github.com/AlphaPrime8/fixed-rate-swap/swaptest"
	"github.com/AlphaPrime8/fixed-rate-swap/swaptest/assert"
)

func TestInitializeMsgValidate(t *testing.T) {
	deposit := swaptest.NewCondition().Address()
	receive := swaptest.NewCondition().Address()

	cases := map[string]struct {
		mod     func(*InitializeMsg)
		wantErr *errors.Error
	}{
		"valid": {},
		"missing seed": {
			mod:     func(m *InitializeMsg) { m.Seed = "" },
			wantErr: errors.ErrEmpty,
		},
		"seed too long": {
			mod:     func(m *InitializeMsg) { m.Seed = strings.Repeat("x", maxSeedSize+1) },
			wantErr: errors.ErrInput,
		},
		"broken deposit account": {
			mod:     func(m *InitializeMsg) { m.DepositAccount = []byte{1, 2, 3} },
			wantErr: errors.ErrInput,
		},
		"deposit equals receive": {
			mod:     func(m *InitializeMsg) { m.ReceiveAccount = m.DepositAccount },
			wantErr: errors.ErrInput,
		},
		"zero amount": {
			mod:     func(m *InitializeMsg) { m.Amount = 0 },
			wantErr: errors.ErrAmount,
		},
		"zero rate": {
			mod:     func(m *InitializeMsg) { m.Rate = 0 },
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg := &InitializeMsg{
				Seed:           "myseed",
				DepositAccount: deposit,
				ReceiveAccount: receive,
				Amount:         100,
				Rate:           2,
			}
			if tc.mod != nil {
				tc.mod(msg)
			}
			err := msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestExchangeMsgValidate(t *testing.T) {
	source := swaptest.NewCondition().Address()
	dest := swaptest.NewCondition().Address()

	cases := map[string]struct {
		mod     func(*ExchangeMsg)
		wantErr *errors.Error
	}{
		"valid": {},
		"missing seed": {
			mod:     func(m *ExchangeMsg) { m.Seed = "" },
			wantErr: errors.ErrEmpty,
		},
		"source equals destination": {
			mod:     func(m *ExchangeMsg) { m.Destination = m.Source },
			wantErr: errors.ErrInput,
		},
		"broken destination": {
			mod:     func(m *ExchangeMsg) { m.Destination = []byte{255} },
			wantErr: errors.ErrInput,
		},
		"zero swap amount": {
			mod:     func(m *ExchangeMsg) { m.SwapAmount = 0 },
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg := &ExchangeMsg{
				Seed:        "myseed",
				Source:      source,
				Destination: dest,
				SwapAmount:  5,
			}
			if tc.mod != nil {
				tc.mod(msg)
			}
			err := msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestCancelMsgValidate(t *testing.T) {
	assert.Nil(t, (&CancelMsg{Seed: "myseed"}).Validate())
	assert.IsErr(t, errors.ErrEmpty, (&CancelMsg{}).Validate())
	long := strings.Repeat("s", maxSeedSize+1)
	assert.IsErr(t, errors.ErrInput, (&CancelMsg{Seed: long}).Validate())
}

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "escrow/initialize", (&InitializeMsg{}).Path())
	assert.Equal(t, "escrow/exchange", (&ExchangeMsg{}).Path())
	assert.Equal(t, "escrow/cancel", (&CancelMsg{}).Path())
}
