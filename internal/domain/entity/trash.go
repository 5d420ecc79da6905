package entity

import "time"

// TrashRecord is an append-only archival snapshot of a removed entity.
// Nothing in the API reads or deletes these rows.
type TrashRecord struct {
	ID          uint      `gorm:"primaryKey;column:trash_id"`
	Datetime    time.Time `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Details     string    `gorm:"type:text"`
}

func (TrashRecord) TableName() string {
	return "trash"
}
