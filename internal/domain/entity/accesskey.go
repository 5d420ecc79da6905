package entity

import "time"

const (
	KeyStateValid   = "valid"
	KeyStateInvalid = "invalid"
)

// AccessKey is a bearer credential. State only ever moves valid -> invalid,
// either by the scheduled expiry event or by the startup sweep.
type AccessKey struct {
	ID        uint      `gorm:"primaryKey"`
	KeyCode   string    `gorm:"uniqueIndex;not null"`
	State     string    `gorm:"not null;default:valid"`
	CreatedAt time.Time
}

func (AccessKey) TableName() string {
	return "keys"
}
