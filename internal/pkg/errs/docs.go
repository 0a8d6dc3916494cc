// Package errs provides the typed errors shared by the workshop service.
//
// Every error type pairs a sentinel (ErrValueIsInvalid, ErrObjectNotFound, ...)
// with a struct carrying the offending parameter and an optional cause.
// Unwrap always returns the sentinel, so callers classify failures with
// errors.Is and the HTTP adapter maps them to status codes without string
// matching:
//
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: 400
//   - ObjectNotFoundError: 404
//   - VersionIsInvalidError: 409 (optimistic locking conflict)
package errs
