package assert

import (
	"reflect"
	"testing"

	"github.com/AlphaPrime8/fixed-rate-swap/errors"
)

// Tester is the minimal subset of testing.TB needed to run most assert commands
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if given value is not nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// Use %+v so that if we are printing an error that supports
		// stack traces then a full stack trace is shown.
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) (isnil bool) {
	if value == nil {
		return true
	}

	defer func() {
		if recover() != nil {
			isnil = false
		}
	}()

	// The argument must be a chan, func, interface, map, pointer, or slice
	// value; if it is not, IsNil panics.
	isnil = reflect.ValueOf(value).IsNil()

	return isnil
}

// Equal fails the test if two values are not equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal \nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics will run given function and recover any panic. It will fail the test
// if given function call did not panic.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	fn()
}

// IsErr is a convenient helper that checks if the errors are a match
// and prints out the difference if not as well as failing the assertion.
func IsErr(t testing.TB, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	w, ok := want.(interface{ Is(error) bool })
	if !ok || !w.Is(got) {
		t.Fatalf("want %q, got %q", want, got)
	}
}

// FieldError ensures that the error contains the given root error kind.
// To test that no error was found, use `nil` as the want value.
func FieldError(t testing.TB, err error, want *errors.Error) {
	t.Helper()
	if want == nil {
		if err != nil {
			t.Fatalf("expected no error, got %q", err)
		}
		return
	}
	if !want.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}
