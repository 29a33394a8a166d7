package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "surveyku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar yang berlaku untuk semua route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
