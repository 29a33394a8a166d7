package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	projectController "surveyku_backend/internals/features/surveys/projects/controller"
)

// ProjectAdminRoutes: CRUD project (reference data pipeline).
func ProjectAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := projectController.NewProjectAdminController(db)

	projects := api.Group("/projects")
	projects.Get("/", ctrl.List)
	projects.Post("/", ctrl.Create)
	projects.Get("/:projectKey", ctrl.Get)
	projects.Put("/:projectKey", ctrl.Update)
	projects.Delete("/:projectKey", ctrl.Delete)
}
