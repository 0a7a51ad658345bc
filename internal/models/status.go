package models

// Status is the lifecycle state of a reimbursement. A reimbursement is
// created pending and transitions exactly once, to approved or rejected.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Decided reports whether s is one of the two terminal states.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}
