package reimburse

import "errors"

var (
	// ErrNotFound means no row exists for the given id. Maps to 404.
	ErrNotFound = errors.New("Reimbursement not found")

	// ErrMultipleFound means more than one row matched a primary-key lookup,
	// which indicates a deeper invariant violation. Maps to 500, not 404.
	ErrMultipleFound = errors.New("Multiple reimbursements found")

	// ErrNotPending means a decision was attempted on an already-decided
	// reimbursement. Maps to 400.
	ErrNotPending = errors.New("Reimbursement is not pending")
)
