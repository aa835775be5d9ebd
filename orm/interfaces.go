package orm

import (
	swap "github.com/AlphaPrime8/fixed-rate-swap"
)

// Object is what is stored in the bucket
// Key is joined with the prefix to set the full key
// Value is the data stored
//
// this can be a light wrapper around a protobuf-defined type
type Object interface {
	Keyed
	Cloneable

	// Validate returns error if the object is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validate() error

	Value() swap.Persistent
}

// Keyed is anything that can identify itself
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable will create a new object that can be loaded into
type Cloneable interface {
	Clone() Object
}

// CloneableData is an intelligent Value that can be embedded
// in a simple object to handle much of the details.
type CloneableData interface {
	swap.Persistent
	Validate() error
	Copy() CloneableData
}

// Model is implemented by any entity that can be stored using ModelBucket.
//
// This is the same interface as CloneableData. Using the right type names
// provides an easier to read API.
type Model interface {
	swap.Persistent
	Validate() error
	Copy() CloneableData
}
