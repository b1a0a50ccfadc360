package domain

import "time"

// Address is a postal address attached to an account. Only one is active at a time.
type Address struct {
	ID         int64     `json:"id"`
	AccountID  int64     `json:"account_id"`
	DoorNumber string    `json:"door_number"`
	StreetName string    `json:"street_name"`
	District   string    `json:"district"`
	State      string    `json:"state"`
	Pincode    string    `json:"pincode"`
	Country    string    `json:"country"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}
