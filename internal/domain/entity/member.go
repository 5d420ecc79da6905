package entity

import "time"

const (
	TermConditionRegular      = "Regular"
	TermConditionSpecialNeeds = "Special_needs"
)

type Member struct {
	ID                     uint      `gorm:"primaryKey" json:"member_id"`
	CreatedAt              time.Time `json:"-"`
	UpdatedAt              time.Time `json:"-"`
	Name                   string    `gorm:"not null" json:"name"`
	ClubID                 uint      `gorm:"index;not null" json:"club_id"`
	DateOfBirth            string    `json:"date_of_birth"`
	Place                  string    `json:"place"`
	Status                 string    `json:"status"`
	TermCondition          string    `gorm:"default:Regular" json:"term_condition"`
	Genre                  string    `json:"genre"`
	Address                string    `json:"address"`
	EducationalInstitution string    `json:"educational_institution"`
}

// NormalizeTermCondition coerces anything outside the two known values to the
// default. The column itself accepts any string, so the service layer is the
// only place the enum is enforced.
func NormalizeTermCondition(v string) string {
	if v == TermConditionSpecialNeeds {
		return v
	}
	return TermConditionRegular
}
