// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"surveyku_backend/internals/configs"
	prescreenRoute "surveyku_backend/internals/features/surveys/prescreens/route"
	projectRoute "surveyku_backend/internals/features/surveys/projects/route"
	redirectRoute "surveyku_backend/internals/features/surveys/redirects/route"
	redirectService "surveyku_backend/internals/features/surveys/redirects/service"
	supplierRoute "surveyku_backend/internals/features/surveys/suppliers/route"
	authMiddleware "surveyku_backend/internals/middlewares/auth"
	middlewares "surveyku_backend/internals/middlewares"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// cache template survey: dimiliki composition root, di-inject ke controller
	surveyURLCache := redirectService.NewSurveyURLCache(configs.SurveyURLCacheTTL)

	// ===================== PUBLIC (pipeline respondent) =====================
	log.Println("[INFO] Setting up survey pipeline routes...")
	redirectRoute.SurveyPipelineRoutes(app, db, surveyURLCache)

	log.Println("[INFO] Setting up prescreen routes...")
	prescreenRoute.PrescreenUserRoutes(app, db)

	// ===================== ADMIN (JWT + rate limit) =====================
	log.Println("[INFO] Setting up admin routes...")
	admin := app.Group("/api/a",
		middlewares.AdminRateLimiter(),
		authMiddleware.AdminAuth(),
	)
	projectRoute.ProjectAdminRoutes(admin, db)
	supplierRoute.SupplierAdminRoutes(admin, db)
	prescreenRoute.PrescreenAdminRoutes(admin, db)
	redirectRoute.RedirectAdminRoutes(admin, db)
}
