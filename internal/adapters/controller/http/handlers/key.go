package handlers

import (
	"context"

	"github.com/clubstack/club-api/cmd/app"
	"github.com/gofiber/fiber/v2"
)

type accessKeyService interface {
	Issue(ctx context.Context, login, password string) (string, error)
}

type KeyHandler struct {
	accessKeys accessKeyService
}

func NewKeyHandler(a *app.App) *KeyHandler {
	return &KeyHandler{
		accessKeys: a.AccessKeys,
	}
}

type generateKeyRequest struct {
	UserLogin string `json:"user_login" form:"user_login"`
	UserPass  string `json:"user_pass" form:"user_pass"`
}

func (h *KeyHandler) GenerateKey(c *fiber.Ctx) error {
	var req generateKeyRequest
	// An unparseable body leaves the credentials empty, which the service
	// rejects with the proper error.
	_ = c.BodyParser(&req)

	key, err := h.accessKeys.Issue(c.UserContext(), req.UserLogin, req.UserPass)
	if err != nil {
		return respondError(c, err, "key_not_generated", "Error generating the key")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Key generated successfully",
		"key":     key,
	})
}
