// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) used with errors.Is
//   - A struct type carrying error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for classification
//
// The HTTP boundary translates these classes to status codes: required/invalid
// values and state conflicts become 400, missing objects become 404, everything
// else becomes 500.
package errs
