package models

type BankMember struct {
	BankResource
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `gorm:"column:address_line_1" json:"address_line_1"`
	AddressLine2 string `gorm:"column:address_line_2" json:"address_line_2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Country      string `json:"country"`
}
