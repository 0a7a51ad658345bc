package models

type BankAccount struct {
	BankResource
	BankMemberID int64 `gorm:"index" json:"bank_member_id"`
}
