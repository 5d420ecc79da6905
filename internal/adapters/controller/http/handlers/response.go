package handlers

import (
	"errors"

	"github.com/clubstack/club-api/internal/domain/common/errorz"
	"github.com/gofiber/fiber/v2"
)

var errStatuses = []struct {
	err    error
	status int
	code   string
}{
	{errorz.ErrInvalidCredentials, fiber.StatusBadRequest, "invalid_credentials"},
	{errorz.ErrAuthenticationFailed, fiber.StatusUnauthorized, "authentication_failed"},
	{errorz.ErrInvalidKey, fiber.StatusUnauthorized, "invalid_key"},
	{errorz.ErrInvalidOwner, fiber.StatusBadRequest, "invalid_owner"},
	{errorz.ErrInvalidData, fiber.StatusBadRequest, "invalid_data"},
	{errorz.ErrClubNotFound, fiber.StatusNotFound, "club_not_found"},
	{errorz.ErrMemberNotFound, fiber.StatusNotFound, "member_not_found"},
	{errorz.ErrNoClubsFound, fiber.StatusNotFound, "no_clubs_found"},
	{errorz.ErrNoMembersFound, fiber.StatusNotFound, "no_members_found"},
	{errorz.ErrNoOwnersFound, fiber.StatusNotFound, "no_owners_found"},
	{errorz.ErrMembersNotRemoved, fiber.StatusInternalServerError, "members_not_removed"},
	{errorz.ErrClubNotMovedToTrash, fiber.StatusInternalServerError, "club_not_moved_to_trash"},
}

// respondError maps a service error onto its wire code and status. Unknown
// errors are store-level failures: those get the caller's fallback code with
// a generic message, never the raw error text.
func respondError(c *fiber.Ctx, err error, fallbackCode, fallbackMessage string) error {
	for _, e := range errStatuses {
		if errors.Is(err, e.err) {
			return c.Status(e.status).JSON(fiber.Map{
				"code":    e.code,
				"message": e.err.Error(),
			})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    fallbackCode,
		"message": fallbackMessage,
	})
}

func respondBadRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    code,
		"message": message,
	})
}
