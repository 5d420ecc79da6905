package entity

import "time"

type Club struct {
	ID         uint      `gorm:"primaryKey" json:"club_id"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
	Name       string    `gorm:"column:club_name;not null" json:"club_name"`
	OwnerID    *int64    `gorm:"index" json:"owner_id"`
	PostalCode int       `json:"postal_code"`
	Phone      string    `json:"phone"`
	Mail       string    `json:"mail"`
	Address    string    `json:"address"`
	Members    []Member  `gorm:"foreignKey:ClubID" json:"members,omitempty"`
}
