// Package errs provides the error types shared across the storefront service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the details, usable with errors.As
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// Types:
//   - ObjectNotFoundError: a looked-up object does not exist
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: single value checks
//   - ValidationError: field-scoped form validation failures
//   - NetworkError: a remote call did not succeed
//   - MalformedDateError: a date string could not be parsed
package errs
