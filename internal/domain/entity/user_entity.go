package entity

import (
	"time"
)

// Telephone is the persisted shape of a validated telephone pair.
type Telephone struct {
	Number   int64 `json:"number"`
	AreaCode int64 `json:"area_code"`
}

// User is the aggregate root for the identity domain.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID         string
	Email      string
	Password   string
	Name       string
	Telephones []Telephone
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
