// Package errs provides the error taxonomy shared by every layer of the order service.
//
// Validation family: ValueIsRequiredError, ValueIsInvalidError and ValueIsOutOfRangeError.
// Callers must correct the input. Use IsValidation to test for any of them.
//
// ObjectNotFoundError: a referenced order, product or courier does not exist.
//
// InvalidStateTransitionError: the requested status change is not an edge of the
// order workflow. It is never worth retrying.
//
// ConcurrencyConflictError: a version-gated write lost a race. The caller may re-read
// the order and decide again.
//
// Each type carries a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) returned by
// Unwrap, so errors.Is works through any amount of fmt.Errorf wrapping.
package errs
