package entity

import "time"

// User backs the identity directory the key issuance flow delegates to.
// Club owners reference these ids; the uniqueness of owner-to-club binding
// is enforced by the club service, not here.
type User struct {
	ID           int64     `gorm:"primaryKey"`
	CreatedAt    time.Time `json:"-"`
	Login        string    `gorm:"uniqueIndex;not null"`
	DisplayName  string
	Email        string
	PasswordHash string `gorm:"not null" json:"-"`
}
