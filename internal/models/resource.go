package models

import "time"

// Resource holds the columns every table shares: integer identity, creation
// timestamps and a reserved soft-delete marker. UpdatedAt is set once at
// creation and is not refreshed by any operation; DeletedAt is never written.
type Resource struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime:false" json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// BankResource adds the bank ownership column shared by every entity that
// lives under a bank.
type BankResource struct {
	Resource
	BankID int64 `gorm:"index" json:"bank_id"`
}
