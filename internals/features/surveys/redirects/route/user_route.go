package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	redirectController "surveyku_backend/internals/features/surveys/redirects/controller"
	redirectService "surveyku_backend/internals/features/surveys/redirects/service"
)

// SurveyPipelineRoutes: endpoint publik yang dilalui respondent.
func SurveyPipelineRoutes(app fiber.Router, db *gorm.DB, cache *redirectService.SurveyURLCache) {
	liveCtrl := redirectController.NewSurveyLiveController(db, cache)
	thanksCtrl := redirectController.NewThanksController(db)

	// 🔀 redirect keluar ke provider
	app.Get("/survey-live/:projectKey", liveCtrl.RedirectLive)
	app.Get("/survey-test/:projectKey", liveCtrl.RedirectTest)

	// 📬 callback disposisi dari provider
	app.Get("/thanks-index", thanksCtrl.Index)
	app.Get("/surveydone", thanksCtrl.LegacyDone) // alias lama

	// halaman thanks internal (target 302 dari thanks-index)
	app.Get("/thanks", thanksCtrl.Page)
}
