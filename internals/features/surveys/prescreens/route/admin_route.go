package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	prescreenController "surveyku_backend/internals/features/surveys/prescreens/controller"
)

// PrescreenAdminRoutes: CRUD pertanyaan prescreen per project.
func PrescreenAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := prescreenController.NewPrescreenQuestionAdminController(db)

	api.Get("/projects/:projectKey/questions", ctrl.List)
	api.Post("/projects/:projectKey/questions", ctrl.Create)
	api.Put("/questions/:id", ctrl.Update)
	api.Delete("/questions/:id", ctrl.Delete)
}
