// Package errors provides the coded error type used across the combat tracker.
//
// Every failure that crosses a package boundary is an *Error carrying a Code, a
// human-readable Message and an optional Cause. Callers branch on the code and
// show the message.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("saved encounter not found")
//	err := errors.OutOfRangef("payload is %d characters", size)
//
// Adding metadata:
//
//	err := errors.DataLoss("saved encounters payload is not an array").
//	    WithMeta("key", key)
//
// Wrapping errors keeps the wrapped code:
//
//	if err := medium.Set(ctx, key, value); err != nil {
//	    return errors.Wrap(err, "failed to write saved encounters")
//	}
//
// # Error Checking
//
//	if errors.IsFailedPrecondition(err) {
//	    // version mismatch, show errors.GetMessage(err)
//	}
//
// # Codes by failure
//
//   - Unavailable: the storage medium cannot be used at all
//   - Internal: a storage read or write failed
//   - ResourceExhausted: the storage medium refused a write for quota reasons
//   - DataLoss: persisted data is not valid JSON or fails structural validation
//   - InvalidArgument: a share payload or caller input is malformed
//   - OutOfRange: a share payload or share URL exceeds its length ceiling
//   - FailedPrecondition: data was produced by an incompatible format version
//   - Aborted: the user declined a confirmation
//   - NotFound: a saved encounter does not exist
//   - Canceled: the caller abandoned the operation
package errors
