package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	supplierController "surveyku_backend/internals/features/surveys/suppliers/controller"
)

// SupplierAdminRoutes: CRUD supplier (reference data pipeline).
func SupplierAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := supplierController.NewSupplierAdminController(db)

	suppliers := api.Group("/suppliers")
	suppliers.Get("/", ctrl.List)
	suppliers.Post("/", ctrl.Create)
	suppliers.Get("/:supplierKey", ctrl.Get)
	suppliers.Put("/:supplierKey", ctrl.Update)
	suppliers.Delete("/:supplierKey", ctrl.Delete)
}
