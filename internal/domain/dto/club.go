package dto

import "github.com/clubstack/club-api/internal/domain/entity"

type ClubWithMembers struct {
	ClubID   uint            `json:"club_id"`
	ClubName string          `json:"club_name"`
	OwnerID  *int64          `json:"owner_id"`
	Members  []entity.Member `json:"members"`
}

// ClubUpdate carries a partial update: nil fields keep their current value.
type ClubUpdate struct {
	Name       *string
	OwnerID    *int64
	PostalCode *int
	Phone      *string
	Mail       *string
	Address    *string
}
