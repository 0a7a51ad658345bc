package models

// BankAdmin is the decision-maker referenced by Reimbursement.DecisionByID.
type BankAdmin struct {
	BankResource
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
