package repository

import (
	"reimbursement-backend/internal/models"

	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// EmailForAccount resolves the owning member's email for a bank account by
// joining through the account row.
func (r *MemberRepository) EmailForAccount(accountID int64) (string, error) {
	var emails []string
	err := r.db.Model(&models.BankMember{}).
		Joins("JOIN bank_accounts ON bank_accounts.bank_member_id = bank_members.id").
		Where("bank_accounts.id = ?", accountID).
		Limit(1).
		Pluck("bank_members.email", &emails).Error
	if err != nil {
		return "", err
	}
	if len(emails) == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return emails[0], nil
}
