package models

// Contact - запись справочника экстренных и коммунальных служб
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}
