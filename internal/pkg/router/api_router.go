package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/creatorconnect/backend/app/controllers"
	"github.com/creatorconnect/backend/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")

	// auth
	v1.Post("/register", controllers.HandleRegister)
	v1.Post("/login", controllers.HandleLogin)
	v1.Post("/logout", controllers.HandleLogout)
	v1.Get("/me", middleware.RequireAuth, controllers.HandleMe)

	// profiles
	v1.Get("/profile", middleware.RequireAuth, controllers.HandleGetProfile)
	v1.Put("/profile", middleware.RequireAuth, controllers.HandleUpdateProfile)

	// campaigns
	v1.Get("/campaigns", controllers.HandleListCampaigns)
	v1.Get("/campaigns/:id", controllers.HandleGetCampaign)
	v1.Post("/campaigns", middleware.RequireBrand, controllers.HandleCreateCampaign)
	v1.Post("/campaigns/:id/close", middleware.RequireBrand, controllers.HandleCloseCampaign)

	// proposals
	v1.Get("/proposals", middleware.RequireAuth, controllers.HandleListProposals)
	v1.Post("/proposals", middleware.RequireBrand, controllers.HandleCreateProposal)
	v1.Post("/proposals/:id/accept", middleware.RequireCreator, controllers.HandleAcceptProposal)
	v1.Post("/proposals/:id/decline", middleware.RequireCreator, controllers.HandleDeclineProposal)
	v1.Post("/proposals/:id/withdraw", middleware.RequireBrand, controllers.HandleWithdrawProposal)

	// deals
	v1.Get("/deals", middleware.RequireAuth, controllers.HandleListDeals)
	v1.Post("/deals", middleware.RequireBrand, controllers.HandleCreateDeal)
	v1.Get("/deals/:uuid", middleware.RequireAuth, controllers.HandleGetDeal)
	v1.Get("/deals/:uuid/timeline", middleware.RequireAuth, controllers.HandleGetDealTimeline)
	v1.Post("/deals/:uuid/transition", middleware.RequireAuth, controllers.HandleDealTransition)
	v1.Post("/deals/:uuid/terminate", middleware.RequireAuth, controllers.HandleTerminateDeal)

	// conversations & messages
	v1.Get("/conversations", middleware.RequireAuth, controllers.HandleListConversations)
	v1.Post("/conversations", middleware.RequireAuth, controllers.HandleStartConversation)
	v1.Get("/conversations/:uuid/messages", middleware.RequireAuth, controllers.HandleListMessages)
	v1.Post("/conversations/:uuid/messages", middleware.RequireAuth, controllers.HandleSendMessage)

	// notifications (polled by clients)
	v1.Get("/notifications", middleware.RequireAuth, controllers.HandleListNotifications)
	v1.Post("/notifications/:id/read", middleware.RequireAuth, controllers.HandleMarkNotificationRead)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
