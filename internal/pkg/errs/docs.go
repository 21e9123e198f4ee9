// Package errs provides the standardized error types used across the order
// ingestion service.
//
// Error types map onto the failure taxonomy of the system:
//   - ObjectNotFoundError: a referenced order (or other object) does not exist
//   - ValueIsRequiredError: a required value is missing (e.g. a fragment
//     without a delivery date)
//   - ValueIsInvalidError: a value fails validation
//   - ExternalDependencyError: a mailbox or calendar call failed; state was
//     not advanced and the operation is safe to retry
//
// Each type follows the same pattern: a sentinel error variable, a struct
// with detail fields and an optional Cause, constructors, Error() formatting
// and Unwrap() so errors.Is can classify against the sentinel.
//
// Parsing-layer misses (a date pattern not matching, a table row that cannot
// be read) are deliberately NOT errors: the extraction layer reports absence
// through optional results and never raises.
package errs
