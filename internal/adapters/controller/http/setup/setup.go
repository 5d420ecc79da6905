package setup

import (
	"github.com/clubstack/club-api/cmd/app"
	"github.com/clubstack/club-api/internal/adapters/controller/http/handlers"
	"github.com/clubstack/club-api/internal/adapters/controller/http/middlewares"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

func Setup(a *app.App) {
	middle := middlewares.New(a)
	keyHandler := handlers.NewKeyHandler(a)
	clubHandler := handlers.NewClubHandler(a)
	memberHandler := handlers.NewMemberHandler(a)

	a.Fiber.Use(middle.RequestID)
	if viper.GetBool("settings.debug") {
		a.Fiber.Use(middle.Logger)
	}

	a.Fiber.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := a.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := a.Fiber.Group("/club/v1")

	// Issuance is the one unauthenticated route; everything registered after
	// the KeyAuth middleware requires a valid key.
	v1.Post("/generate-key", keyHandler.GenerateKey)

	v1.Use(middle.KeyAuth)

	v1.Post("/add", clubHandler.AddClub)
	v1.Post("/update", clubHandler.UpdateClub)
	v1.Post("/remove", clubHandler.RemoveClub)
	v1.Get("/get-all-clubs-with-members", clubHandler.GetAllClubsWithMembers)
	v1.Get("/get-members-by-club/:club_id", clubHandler.GetMembersByClub)

	v1.Get("/get-club-owners", clubHandler.GetClubOwners)
	v1.Get("/get-club-owner-details/:club_id", clubHandler.GetClubOwnerDetails)
	v1.Post("/edit-club-owner", clubHandler.EditClubOwner)
	v1.Post("/delete-club-owner", clubHandler.DeleteClubOwner)

	v1.Post("/add-member", memberHandler.AddMember)
	v1.Post("/remove-member", memberHandler.RemoveMember)
	v1.Post("/update-member", memberHandler.UpdateMember)
}
