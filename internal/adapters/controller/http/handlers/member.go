package handlers

import (
	"context"

	"github.com/clubstack/club-api/cmd/app"
	"github.com/clubstack/club-api/internal/adapters/database/postgres"
	"github.com/clubstack/club-api/internal/domain/dto"
	"github.com/clubstack/club-api/internal/domain/entity"
	"github.com/clubstack/club-api/internal/domain/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type memberService interface {
	Add(ctx context.Context, member *entity.Member) (*entity.Member, error)
	Remove(ctx context.Context, id uint) error
	Update(ctx context.Context, id uint, upd dto.MemberUpdate) (*entity.Member, error)
}

type MemberHandler struct {
	memberService memberService
	validator     *validator.Validate
}

func NewMemberHandler(a *app.App) *MemberHandler {
	memberStorage := postgres.NewMemberStorage(a.DB)
	clubStorage := postgres.NewClubStorage(a.DB)

	return &MemberHandler{
		memberService: service.NewMemberService(memberStorage, clubStorage),
		validator:     validator.New(),
	}
}

type addMemberRequest struct {
	ClubID                 uint   `json:"club_id" form:"club_id" validate:"required"`
	Name                   string `json:"name" form:"name"`
	DateOfBirth            string `json:"date_of_birth" form:"date_of_birth"`
	Place                  string `json:"place" form:"place"`
	Status                 string `json:"status" form:"status"`
	TermCondition          string `json:"term_condition" form:"term_condition"`
	Genre                  string `json:"genre" form:"genre"`
	Address                string `json:"address" form:"address"`
	EducationalInstitution string `json:"educational_institution" form:"educational_institution"`
}

func (h *MemberHandler) AddMember(c *fiber.Ctx) error {
	var req addMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid_data", "Malformed request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondBadRequest(c, "invalid_data", "club_id is a required field")
	}

	member := &entity.Member{
		ClubID:                 req.ClubID,
		Name:                   req.Name,
		DateOfBirth:            req.DateOfBirth,
		Place:                  req.Place,
		Status:                 req.Status,
		TermCondition:          req.TermCondition,
		Genre:                  req.Genre,
		Address:                req.Address,
		EducationalInstitution: req.EducationalInstitution,
	}
	created, err := h.memberService.Add(c.UserContext(), member)
	if err != nil {
		return respondError(c, err, "member_not_added", "Error adding the member")
	}

	return c.JSON(fiber.Map{
		"message":   "Member added successfully",
		"member_id": created.ID,
	})
}

type removeMemberRequest struct {
	MemberID uint `json:"member_id" form:"member_id" validate:"required"`
}

func (h *MemberHandler) RemoveMember(c *fiber.Ctx) error {
	var req removeMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid_data", "Malformed request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondBadRequest(c, "invalid_data", "member_id is a required field")
	}

	if err := h.memberService.Remove(c.UserContext(), req.MemberID); err != nil {
		return respondError(c, err, "member_not_removed", "Error removing the member")
	}

	return c.JSON(fiber.Map{
		"message":   "Member removed successfully",
		"member_id": req.MemberID,
	})
}

type updateMemberRequest struct {
	MemberID               uint    `json:"member_id" form:"member_id" validate:"required"`
	Name                   *string `json:"name" form:"name"`
	DateOfBirth            *string `json:"date_of_birth" form:"date_of_birth"`
	Place                  *string `json:"place" form:"place"`
	Status                 *string `json:"status" form:"status"`
	TermCondition          *string `json:"term_condition" form:"term_condition"`
	Genre                  *string `json:"genre" form:"genre"`
	Address                *string `json:"address" form:"address"`
	EducationalInstitution *string `json:"educational_institution" form:"educational_institution"`
}

func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	var req updateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid_data", "Malformed request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return respondBadRequest(c, "invalid_data", "member_id is a required field")
	}

	_, err := h.memberService.Update(c.UserContext(), req.MemberID, dto.MemberUpdate{
		Name:                   req.Name,
		DateOfBirth:            req.DateOfBirth,
		Place:                  req.Place,
		Status:                 req.Status,
		TermCondition:          req.TermCondition,
		Genre:                  req.Genre,
		Address:                req.Address,
		EducationalInstitution: req.EducationalInstitution,
	})
	if err != nil {
		return respondError(c, err, "member_not_updated", "Error updating the member")
	}

	return c.JSON(fiber.Map{
		"message":   "Member updated successfully",
		"member_id": req.MemberID,
	})
}
