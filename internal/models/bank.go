package models

type Bank struct {
	Resource
	Name     string `json:"name"`
	Location string `json:"location"`
}
