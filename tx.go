package swap

import (
	"reflect"

	"github.com/AlphaPrime8/fixed-rate-swap/errors"
)

// Msg is a request for the engine to take an action
// (make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Validate returns error if the message does not pass stateless
	// checks. Stateful checks belong to the handler.
	Validate() error

	// Path returns the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to it.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string
}

// Marshaller is anything that can be represented in binary
//
// Marshall may validate the data before serializing it and
// unless you previously validated the struct,
// errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
//
// As with Marshaller, this may do internal validation on the data
// and errors should be expected.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the data sent from the user to the engine.
// It includes the actual message, along with information needed
// to authenticate the sender (cryptographic signatures),
// and anything else needed to pass through middleware.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message from the transaction and assigns it to the
// destination. Destination must be a non-nil pointer to a Msg implementation.
// The message held by the transaction must be assignable to the destination,
// otherwise ErrType is returned.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrState, "transaction without a message")
	}

	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non-nil pointer, got %T", destination)
	}
	src := reflect.ValueOf(msg)
	if !src.Type().AssignableTo(dst.Type()) {
		return errors.Wrapf(errors.ErrType, "got %T, expected %T", msg, destination)
	}
	dst.Elem().Set(src.Elem())

	return destination.Validate()
}
