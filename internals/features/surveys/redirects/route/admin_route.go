package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	redirectController "surveyku_backend/internals/features/surveys/redirects/controller"
)

// RedirectAdminRoutes: listing read-only untuk operator.
func RedirectAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := redirectController.NewRedirectAdminController(db)

	api.Get("/redirects", ctrl.ListRedirects)
	api.Get("/redirect-events", ctrl.ListEvents)
}
