package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"reimbursement-backend/internal/config"
	"reimbursement-backend/internal/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a bank with one admin, one member and N accounts. Entities other
// than reimbursements have no creation endpoints; this is how they are
// provisioned.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	accounts := flag.Int("accounts", 1, "number of bank accounts to create for the member")
	flag.Parse()

	cfg := config.Load()
	db := config.InitDB(cfg)

	if err := db.AutoMigrate(
		&models.Bank{},
		&models.BankAdmin{},
		&models.BankMember{},
		&models.BankAccount{},
		&models.Reimbursement{},
		&models.DecisionLog{},
	); err != nil {
		log.Printf("migration warning: %v", err)
	}

	now := time.Now().UTC()
	base := models.Resource{CreatedAt: now, UpdatedAt: now}

	bank := &models.Bank{
		Resource: base,
		Name:     "Bank of America",
		Location: "123 Bank St, San Francisco, CA 94105",
	}
	if err := db.Create(bank).Error; err != nil {
		log.Fatal("seed bank: ", err)
	}

	admin := &models.BankAdmin{
		BankResource: models.BankResource{Resource: base, BankID: bank.ID},
		FirstName:    "BANK" + randomHex(),
		LastName:     "ADMIN" + randomHex(),
		Email:        randomHex() + "@gmail.com",
		Phone:        randomHex()[:10],
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatal("seed admin: ", err)
	}

	member := &models.BankMember{
		BankResource: models.BankResource{Resource: base, BankID: bank.ID},
		FirstName:    "BANK" + randomHex(),
		LastName:     "MEMBER" + randomHex(),
		Email:        randomHex() + "@gmail.com",
		Phone:        randomHex()[:10],
		AddressLine1: "123 Main St",
		AddressLine2: "",
		City:         "San Francisco",
		State:        "CA",
		Zip:          "94105",
		Country:      "USA",
	}
	if err := db.Create(member).Error; err != nil {
		log.Fatal("seed member: ", err)
	}

	fmt.Printf("bank=%d admin=%d member=%d\n", bank.ID, admin.ID, member.ID)

	for i := 0; i < *accounts; i++ {
		account := &models.BankAccount{
			BankResource: models.BankResource{Resource: base, BankID: bank.ID},
			BankMemberID: member.ID,
		}
		if err := db.Create(account).Error; err != nil {
			log.Fatal("seed account: ", err)
		}
		fmt.Printf("account=%d\n", account.ID)
	}
}

func randomHex() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
