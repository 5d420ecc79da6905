package errorz

import "errors"

var (
	ErrInvalidCredentials   = errors.New("user login and password are required")
	ErrAuthenticationFailed = errors.New("user authentication failed")
	ErrInvalidKey           = errors.New("invalid key")

	ErrInvalidOwner = errors.New("invalid owner_id or owner is already associated with another club")
	ErrInvalidData  = errors.New("invalid data")

	ErrClubNotFound   = errors.New("club not found")
	ErrMemberNotFound = errors.New("member not found")

	ErrNoClubsFound   = errors.New("no clubs found")
	ErrNoMembersFound = errors.New("no members found for the specified club")
	ErrNoOwnersFound  = errors.New("no club owners found")

	ErrMembersNotRemoved   = errors.New("error removing members of the club")
	ErrClubNotMovedToTrash = errors.New("error moving the club to trash")
)
