package routes

import (
	"dispatch-backend/config"
	"dispatch-backend/constants"
	addressbookController "dispatch-backend/controllers/addressbook"
	authController "dispatch-backend/controllers/auth"
	distanceController "dispatch-backend/controllers/distance"
	requestController "dispatch-backend/controllers/request"
	httpServices "dispatch-backend/httpServices/naver"
	"dispatch-backend/logger"
	"dispatch-backend/middleware"
	distanceService "dispatch-backend/services/distance"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	mapsClient := httpServices.NewMapsClient(cfg)
	estimator := distanceService.NewEstimator(mapsClient, cfg.Naver.Enabled)
	asyncLogger := logger.NewAsyncLogger(db)

	auth := authController.NewAuthController(db, cfg)
	addressBook := addressbookController.NewAddressBookController(db)
	requests := requestController.NewRequestController(db)
	distance := distanceController.NewDistanceController(estimator)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()
	app.Use(middleware.RequestLogger(asyncLogger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	/*=============================================================================
	| Auth Routes
	===============================================================================*/
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", auth.Signup)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/find-id", auth.FindID)
	authGroup.Post("/reset-password", auth.ResetPassword)
	authGroup.Post("/change-password", middleware.RequireAuth(cfg), auth.ChangePassword)

	/*=============================================================================
	| Address Book Routes (login required)
	===============================================================================*/
	addressBookGroup := app.Group("/address-book", middleware.RequireAuth(cfg))
	addressBookGroup.Get("/", addressBook.List)
	addressBookGroup.Post("/", addressBook.Create)
	addressBookGroup.Get("/companies", middleware.RequireRole(constants.RoleAdmin), addressBook.Companies)
	addressBookGroup.Patch("/:id", addressBook.Update)
	addressBookGroup.Delete("/:id", addressBook.Delete)

	/*=============================================================================
	| Dispatch Request Routes
	===============================================================================*/
	requestGroup := app.Group("/requests")
	requestGroup.Post("/", middleware.RequireAuth(cfg), requests.Store)
	requestGroup.Get("/", requests.List)
	requestGroup.Get("/recent", middleware.RequireAuth(cfg), requests.Recent)
	requestGroup.Get("/:id", requests.Show)
	requestGroup.Patch("/:id/status", middleware.OptionalAuth(cfg), requests.UpdateStatus)

	/*=============================================================================
	| Distance Routes
	===============================================================================*/
	app.Post("/distance", distance.Estimate)
}
