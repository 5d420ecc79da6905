package handlers

import (
	"context"
	"strconv"

	"github.com/clubstack/club-api/cmd/app"
	"github.com/clubstack/club-api/internal/adapters/database/postgres"
	"github.com/clubstack/club-api/internal/domain/dto"
	"github.com/clubstack/club-api/internal/domain/entity"
	"github.com/clubstack/club-api/internal/domain/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type clubService interface {
	Add(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Update(ctx context.Context, clubID uint, upd dto.ClubUpdate) (*entity.Club, error)
	Remove(ctx context.Context, clubID uint) error
	DeleteOwner(ctx context.Context, clubID uint) error
	OwnerDetails(ctx context.Context, clubID uint) (dto.ClubOwner, error)
	ListWithMembers(ctx context.Context, page, perPage int) ([]dto.ClubWithMembers, error)
	MembersByClub(ctx context.Context, clubID uint, page, perPage int) (dto.ClubWithMembers, error)
	ListOwners(ctx context.Context, page, perPage int) ([]dto.ClubOwner, error)
}

type ClubHandler struct {
	clubService clubService
	validator   *validator.Validate
}

func NewClubHandler(a *app.App) *ClubHandler {
	clubStorage := postgres.NewClubStorage(a.DB)
	memberStorage := postgres.NewMemberStorage(a.DB)
	trashStorage := postgres.NewTrashStorage(a.DB)
	userService := service.NewUserService(postgres.NewUserStorage(a.DB))

	return &ClubHandler{
		clubService: service.NewClubService(clubStorage, memberStorage, trashStorage, userService),
		validator:   validator.New(),
	}
}

type addClubRequest struct {
	ClubName   string `json:"club_name" form:"club_name" validate:"required"`
	OwnerID    int64  `json:"owner_id" form:"owner_id"`
	PostalCode int    `json:"postal_code" form:"postal_code"`
	Phone      string `json:"phone" form:"phone"`
	Mail       string `json:"mail" form:"mail"`
	Address    string `json:"address" form:"address"`
}

func (h *ClubHandler) AddClub(c *fiber.Ctx) error {
	var req addClubRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid_data", "Malformed request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondBadRequest(c, "invalid_data", "club_name is a required field")
	}

	club := &entity.Club{
		Name:       req.ClubName,
		OwnerID:    &req.OwnerID,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		Mail:       req.Mail,
		Address:    req.Address,
	}
	created, err := h.clubService.Add(c.UserContext(), club)
	if err != nil {
		return respondError(c, err, "club_not_added", "Error adding the club")
	}

	return c.JSON(fiber.Map{
		"message": "Club added successfully",
		"club_id": created.ID,
	})
}

type updateClubRequest struct {
	ClubID     uint    `json:"club_id" form:"club_id" validate:"required"`
	ClubName   *string `json:"club_name" form:"club_name"`
	OwnerID    *int64  `json:"owner_id" form:"owner_id"`
	PostalCode *int    `json:"postal_code" form:"postal_code"`
	Phone      *string `json:"phone" form:"phone"`
	Mail       *string `json:"mail" form:"mail"`
	Address    *string `json:"address" form:"address"`
}

func (h *ClubHandler) UpdateClub(c *fiber.Ctx) error {
	var req updateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid_data", "Malformed request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondBadRequest(c, "invalid_data", "club_id is a required field")
	}

	_, err := h.clubService.Update(c.UserContext(), req.ClubID, dto.ClubUpdate{
		Name:       req.ClubName,
		OwnerID:    req.OwnerID,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		Mail:       req.Mail,
		Address:    req.Address,
	})
	if err != nil {
		return respondError(c, err, "club_not_updated", "Error updating the club")
	}

	return c.JSON(fiber.Map{
		"message": "Club updated successfully",
		"club_id": req.ClubID,
	})
}

type removeClubRequest struct {
	ClubID uint `json:"club_id" form:"club_id" validate:"required"`
}

func (h *ClubHandler) RemoveClub(c *fiber.Ctx) error {
	var req removeClubRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid_data", "Malformed request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondBadRequest(c, "invalid_data", "club_id is a required field")
	}

	if err := h.clubService.Remove(c.UserContext(), req.ClubID); err != nil {
		return respondError(c, err, "club_not_moved_to_trash", "Error moving the club to trash")
	}

	return c.JSON(fiber.Map{
		"message": "Club moved to trash successfully",
		"club_id": req.ClubID,
	})
}

func (h *ClubHandler) GetAllClubsWithMembers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)

	clubs, err := h.clubService.ListWithMembers(c.UserContext(), page, perPage)
	if err != nil {
		return respondError(c, err, "no_clubs_found", "No clubs found")
	}
	return c.JSON(clubs)
}

func (h *ClubHandler) GetMembersByClub(c *fiber.Ctx) error {
	clubID, err := clubIDParam(c)
	if err != nil {
		return respondBadRequest(c, "invalid_data", "club_id must be numeric")
	}
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)

	club, err := h.clubService.MembersByClub(c.UserContext(), clubID, page, perPage)
	if err != nil {
		return respondError(c, err, "no_members_found", "No members found for the specified club")
	}
	return c.JSON(club)
}

func clubIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("club_id"), 10, 32)
	return uint(id), err
}
