package swap_test

import (
	"encoding/json"
	"testing"

	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/swaptest/assert"
)

func TestReadOptions(t *testing.T) {
	opts := swap.Options{
		"token": json.RawMessage(`{"accounts": [{"amount": 50}]}`),
	}

	var parsed struct {
		Accounts []struct {
			Amount uint64 `json:"amount"`
		} `json:"accounts"`
	}
	assert.Nil(t, opts.ReadOptions("token", &parsed))
	assert.Equal(t, 1, len(parsed.Accounts))
	assert.Equal(t, uint64(50), parsed.Accounts[0].Amount)

	// a missing key is a noop, not an error
	var ignored map[string]string
	assert.Nil(t, opts.ReadOptions("no-such-key", &ignored))

	broken := swap.Options{"token": json.RawMessage(`{"accounts": `)}
	if err := broken.ReadOptions("token", &parsed); err == nil {
		t.Fatal("want an error for malformed json")
	}
}
