package handlers

import (
	"github.com/clubstack/club-api/internal/domain/dto"
	"github.com/gofiber/fiber/v2"
)

func (h *ClubHandler) GetClubOwners(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)

	owners, err := h.clubService.ListOwners(c.UserContext(), page, perPage)
	if err != nil {
		return respondError(c, err, "no_owners_found", "No club owners found")
	}
	return c.JSON(owners)
}

func (h *ClubHandler) GetClubOwnerDetails(c *fiber.Ctx) error {
	clubID, err := clubIDParam(c)
	if err != nil {
		return respondBadRequest(c, "invalid_data", "club_id must be numeric")
	}

	owner, err := h.clubService.OwnerDetails(c.UserContext(), clubID)
	if err != nil {
		return respondError(c, err, "club_not_found", "Club not found or owner details not available")
	}
	return c.JSON(owner)
}

type editClubOwnerRequest struct {
	ClubID  uint  `json:"club_id" form:"club_id" validate:"required"`
	OwnerID int64 `json:"owner_id" form:"owner_id" validate:"required"`
}

func (h *ClubHandler) EditClubOwner(c *fiber.Ctx) error {
	var req editClubOwnerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid_data", "Malformed request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondBadRequest(c, "invalid_data", "club_id and owner_id are required fields")
	}

	_, err := h.clubService.Update(c.UserContext(), req.ClubID, dto.ClubUpdate{OwnerID: &req.OwnerID})
	if err != nil {
		return respondError(c, err, "owner_not_updated", "Error updating the club owner")
	}

	return c.JSON(fiber.Map{
		"message": "Club owner updated successfully",
		"club_id": req.ClubID,
	})
}

type deleteClubOwnerRequest struct {
	ClubID uint `json:"club_id" form:"club_id" validate:"required"`
}

func (h *ClubHandler) DeleteClubOwner(c *fiber.Ctx) error {
	var req deleteClubOwnerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid_data", "Malformed request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondBadRequest(c, "invalid_data", "club_id is a required field")
	}

	if err := h.clubService.DeleteOwner(c.UserContext(), req.ClubID); err != nil {
		return respondError(c, err, "owner_not_deleted", "Error deleting the club owner")
	}

	return c.JSON(fiber.Map{
		"message": "Club owner deleted successfully",
		"club_id": req.ClubID,
	})
}
