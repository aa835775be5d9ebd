package x

import (
	swap "github.com/AlphaPrime8/fixed-rate-swap"
)

//--------------- serialization stuff ---------------------

// MustMarshal will succeed or panic
func MustMarshal(obj swap.Marshaller) []byte {
	bz, err := obj.Marshal()
	if err != nil {
		panic(err)
	}
	return bz
}

// MustUnmarshal will succeed or panic
func MustUnmarshal(obj swap.Persistent, bz []byte) {
	if err := obj.Unmarshal(bz); err != nil {
		panic(err)
	}
}

//-------------------- Validation ---------

// Validater is any struct that can be validated.
type Validater interface {
	Validate() error
}

// MustValidate panics if the object is not valid
func MustValidate(obj Validater) {
	if err := obj.Validate(); err != nil {
		panic(err)
	}
}

// MarshalValidater is something that can be validated and
// serialized
type MarshalValidater interface {
	swap.Marshaller
	Validater
}

// MustMarshalValid marshals the object, but panics
// if the object is not valid or has trouble marshalling
func MustMarshalValid(obj MarshalValidater) []byte {
	MustValidate(obj)
	return MustMarshal(obj)
}
