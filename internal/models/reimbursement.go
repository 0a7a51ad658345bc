package models

import "time"

// Reimbursement is a member's repayment request, filed against one of their
// accounts. Records are immutable apart from the single decision transition:
// DecisionMadeAt and DecisionByID stay null until an admin decides, and
// NotificationSentAt is reserved (declared, serialized, never written).
type Reimbursement struct {
	BankResource
	BankAccountID      int64      `gorm:"index" json:"bank_account_id"`
	Status             Status     `gorm:"type:varchar(16);index;default:'pending'" json:"status"`
	Amount             int64      `json:"amount"`
	Description        string     `json:"description"`
	DecisionMadeAt     *time.Time `json:"decision_made_at"`
	DecisionByID       *int64     `json:"decision_by_id"`
	NotificationSentAt *time.Time `json:"notification_sent_at"`
}
