package middlewares

import (
	"context"
	"time"

	"github.com/clubstack/club-api/cmd/app"
	"github.com/clubstack/club-api/pkg/logger/types"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type accessKeyService interface {
	Authorize(ctx context.Context, code string) bool
}

type Handler struct {
	accessKeys accessKeyService
	logger     *types.Logger
}

func New(a *app.App) *Handler {
	return &Handler{
		accessKeys: a.AccessKeys,
		logger:     a.Logger,
	}
}

func (h *Handler) RequestID(c *fiber.Ctx) error {
	id := c.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals("request_id", id)
	c.Set(fiber.HeaderXRequestID, id)
	return c.Next()
}

func (h *Handler) Logger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	h.logger.Infof("%s %s | %d | %s | request_id=%v",
		c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start), c.Locals("request_id"))
	return err
}

// KeyAuth gates protected routes on the `key` request parameter. The store is
// consulted on every request: expiry fires asynchronously, so a key can go
// invalid between two calls.
func (h *Handler) KeyAuth(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		key = c.FormValue("key")
	}
	if key == "" {
		var body struct {
			Key string `json:"key"`
		}
		if err := c.BodyParser(&body); err == nil {
			key = body.Key
		}
	}

	if !h.accessKeys.Authorize(c.UserContext(), key) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":    "invalid_key",
			"message": "Invalid key",
		})
	}
	return c.Next()
}
