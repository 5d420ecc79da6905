package dto

// MemberUpdate carries a partial update: nil fields keep their current value.
type MemberUpdate struct {
	Name                   *string
	DateOfBirth            *string
	Place                  *string
	Status                 *string
	TermCondition          *string
	Genre                  *string
	Address                *string
	EducationalInstitution *string
}
