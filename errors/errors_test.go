package errors

import (
	stdlib "errors"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestCause(t *testing.T) {
	std := stdlib.New("this is a stdlib error")

	cases := map[string]struct {
		err  error
		root error
	}{
		"Errors are self-causing": {
			err:  ErrNotFound,
			root: ErrNotFound,
		},
		"Wrap reveals root cause": {
			err:  Wrap(ErrNotFound, "foo"),
			root: ErrNotFound,
		},
		"Cause works for stderr as root": {
			err:  Wrap(std, "some helpful text"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrNotFound,
			b:      ErrModel,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      errors.Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      errors.Wrap(ErrOverflow, "too big"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrNotFound,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"not equal to a wrapped stdlib error": {
			a:      ErrNotFound,
			b:      errors.Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*customError)(nil),
			wantIs: true,
		},
		"nil is not a non-nil error": {
			a:      nil,
			b:      ErrNotFound,
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result: %v", got)
			}
		})
	}
}

type customError struct{}

func (customError) Error() string {
	return "custom error"
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestWrappedIs(t *testing.T) {
	err := Wrap(ErrDuplicate, "banana")
	if !ErrDuplicate.Is(err) {
		t.Fatal("expected the root cause to be matched")
	}

	err = Wrap(err, "one more level")
	if !ErrDuplicate.Is(err) {
		t.Fatal("expected the root cause to be matched through multiple layers")
	}
}

func TestWrappedUnwrappedMessages(t *testing.T) {
	err := Wrap(ErrNotFound, "outer")
	const want = "outer: not found"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("totally unexpected")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}

func TestRegisterDuplicateCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	// Code 2 is already taken by ErrUnauthorized.
	Register(2, "must not be accepted")
}

func TestStacktraceAttachedOnce(t *testing.T) {
	err := Wrap(fmt.Errorf("core"), "level one")
	first := stackTrace(err)
	if first == nil {
		t.Fatal("expected a stack trace to be attached")
	}
	err = Wrap(err, "level two")
	if got := stackTrace(err); len(got) != len(first) {
		t.Fatal("wrapping a second time must not attach a new stack trace")
	}
}
