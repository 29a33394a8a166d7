package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	prescreenController "surveyku_backend/internals/features/surveys/prescreens/controller"
)

// PrescreenUserRoutes: gerbang prescreen sisi respondent.
func PrescreenUserRoutes(app fiber.Router, db *gorm.DB) {
	flowCtrl := prescreenController.NewPrescreenFlowController(db)

	// ❓ pertanyaan yang belum dijawab
	app.Get("/prescreen-pending/:projectKey/:externalId", flowCtrl.PendingQuestions)

	// 📩 submit jawaban (upsert per pertanyaan)
	app.Post("/prescreen-answers/:projectKey/:externalId", flowCtrl.SubmitAnswers)
}
