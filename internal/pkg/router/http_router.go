package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorconnect/backend/internal/pkg/database"
	"github.com/creatorconnect/backend/internal/pkg/dealevents"
	"github.com/creatorconnect/backend/internal/pkg/middleware"
	"github.com/creatorconnect/backend/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// wire the notification subscriber to deal transition events
	dealevents.GetDispatcher().Subscribe(dealevents.NewNotifier(database.GetDB()))

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
