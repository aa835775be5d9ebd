package escrow

import (
	"testing"

	"github.com/AlphaPrime8/fixed-rate-swap/errors"
	"github.com/AlphaPrime8/fixed-rate-swap/swaptest"
	"github.com/AlphaPrime8/fixed-rate-swap/swaptest/assert"
)

func validRecord() *EscrowRecord {
	return &EscrowRecord{
		Initializer:     swaptest.NewCondition().Address(),
		DepositAccount:  swaptest.NewCondition().Address(),
		ReceiveAccount:  swaptest.NewCondition().Address(),
		RemainingAmount: 100,
		Rate:            2,
		Seed:            "myseed",
		Bump:            initialBump,
	}
}

func TestEscrowRecordValidate(t *testing.T) {
	assert.Nil(t, validRecord().Validate())

	// zero remaining amount is a legal, inert state
	rec := validRecord()
	rec.RemainingAmount = 0
	assert.Nil(t, rec.Validate())

	rec = validRecord()
	rec.Seed = ""
	assert.IsErr(t, errors.ErrEmpty, rec.Validate())

	rec = validRecord()
	rec.Initializer = nil
	assert.IsErr(t, errors.ErrInput, rec.Validate())

	rec = validRecord()
	rec.ReceiveAccount = rec.DepositAccount
	assert.IsErr(t, errors.ErrInput, rec.Validate())

	rec = validRecord()
	rec.Rate = 0
	assert.IsErr(t, errors.ErrAmount, rec.Validate())

	rec = validRecord()
	rec.Bump = 256
	assert.IsErr(t, errors.ErrInput, rec.Validate())
}

func TestEscrowRecordCopy(t *testing.T) {
	rec := validRecord()
	cpy := rec.Copy().(*EscrowRecord)
	assert.Equal(t, rec, cpy)

	cpy.RemainingAmount = 7
	cpy.Initializer[0]++
	assert.Equal(t, uint64(100), rec.RemainingAmount)
	if rec.Initializer.Equals(cpy.Initializer) {
		t.Fatal("copy shares the initializer address")
	}
}

func TestCustodianDerivation(t *testing.T) {
	a := Custodian("myseed", 255)
	b := Custodian("myseed", 255)
	assert.Equal(t, a.Address(), b.Address())

	if a.Address().Equals(Custodian("myseed", 254).Address()) {
		t.Fatal("bump must change the derived address")
	}
	if a.Address().Equals(Custodian("otherseed", 255).Address()) {
		t.Fatal("seed must change the derived address")
	}

	// parts must round-trip through the condition encoding
	ext, typ, data, err := a.Parse()
	assert.Nil(t, err)
	assert.Equal(t, "escrow", ext)
	assert.Equal(t, "custody", typ)
	assert.Equal(t, append([]byte("myseed"), 255), data)
}
