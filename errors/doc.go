/*

Package errors implements custom error interfaces for the swap engine.

The idea is to reuse as many errors from this package as possible and define
custom package errors only when an error is very specific to an extension. If
a new error instance is needed, declare it using the Register function.

Errors are consumed via the Is method of each declared error kind:

  if errors.ErrNotFound.Is(err) {

Create errors only at the edge, where the failing condition is detected. In
all other places wrap the returned error with additional context:

  if err := db Get(key); err != nil {
      return errors.Wrap(err, "cannot load record")
  }

*/
package errors
