// Package errs holds the error vocabulary shared by the domain, application and
// adapter layers of the pizza ordering service.
//
// Every type pairs a sentinel (ErrValueIsInvalid, ErrObjectNotFound, ...) with a
// struct carrying the offending parameter. Unwrap returns the sentinel, so callers
// classify with errors.Is and inspect details with errors.As:
//
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: caller input
//     was rejected; ParamName is the field the message is keyed by
//   - ObjectNotFoundError: a referenced order, pizza or customer does not exist
//   - ObjectAlreadyExistsError: a write collided with a unique natural key
//
// Fields flattens a joined validation error into the field -> message map that
// the HTTP layer renders.
package errs
