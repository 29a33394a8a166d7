package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	supplierDTO "surveyku_backend/internals/features/surveys/suppliers/dto"
	supplierModel "surveyku_backend/internals/features/surveys/suppliers/model"
	supplierService "surveyku_backend/internals/features/surveys/suppliers/service"
	helper "surveyku_backend/internals/helpers"
)

type SupplierAdminController struct {
	DB *gorm.DB
}

func NewSupplierAdminController(db *gorm.DB) *SupplierAdminController {
	return &SupplierAdminController{DB: db}
}

// 📋 List: GET /api/a/suppliers?q=&page=&per_page=
func (ctrl *SupplierAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&supplierModel.SupplierModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("supplier_code ILIKE ? OR supplier_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] hitung suppliers gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data supplier")
	}

	var rows []supplierModel.SupplierModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] ambil suppliers gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data supplier")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 Get: GET /api/a/suppliers/:supplierKey (id atau code)
func (ctrl *SupplierAdminController) Get(c *fiber.Ctx) error {
	supplier, err := supplierService.FindSupplierByKey(c.UserContext(), ctrl.DB, c.Params("supplierKey"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Supplier tidak ditemukan")
		}
		log.Println("[ERROR] ambil supplier gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil supplier")
	}
	return helper.JsonOK(c, "ok", supplier)
}

// ➕ Create: POST /api/a/suppliers
func (ctrl *SupplierAdminController) Create(c *fiber.Ctx) error {
	var req supplierDTO.SupplierCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	countries, _ := json.Marshal(req.Countries)
	if req.Countries == nil {
		countries = []byte("[]")
	}

	row := supplierModel.SupplierModel{
		SupplierID:             uuid.New(),
		SupplierCode:           strings.TrimSpace(req.Code),
		SupplierName:           strings.TrimSpace(req.Name),
		SupplierCompleteURL:    strings.TrimSpace(req.CompleteURL),
		SupplierTerminateURL:   strings.TrimSpace(req.TerminateURL),
		SupplierOverQuotaURL:   strings.TrimSpace(req.OverQuotaURL),
		SupplierQualityTermURL: strings.TrimSpace(req.QualityTermURL),
		SupplierSurveyCloseURL: strings.TrimSpace(req.SurveyCloseURL),
		SupplierCountries:      countries,
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode supplier sudah dipakai")
		}
		log.Println("[ERROR] simpan supplier gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan supplier")
	}
	return helper.JsonCreated(c, "Supplier dibuat", row)
}

// ✏️ Update: PUT /api/a/suppliers/:supplierKey
func (ctrl *SupplierAdminController) Update(c *fiber.Ctx) error {
	var req supplierDTO.SupplierUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	supplier, err := supplierService.FindSupplierByKey(c.UserContext(), ctrl.DB, c.Params("supplierKey"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Supplier tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil supplier")
	}

	if req.Code != nil {
		supplier.SupplierCode = strings.TrimSpace(*req.Code)
	}
	if req.Name != nil {
		supplier.SupplierName = strings.TrimSpace(*req.Name)
	}
	if req.CompleteURL != nil {
		supplier.SupplierCompleteURL = strings.TrimSpace(*req.CompleteURL)
	}
	if req.TerminateURL != nil {
		supplier.SupplierTerminateURL = strings.TrimSpace(*req.TerminateURL)
	}
	if req.OverQuotaURL != nil {
		supplier.SupplierOverQuotaURL = strings.TrimSpace(*req.OverQuotaURL)
	}
	if req.QualityTermURL != nil {
		supplier.SupplierQualityTermURL = strings.TrimSpace(*req.QualityTermURL)
	}
	if req.SurveyCloseURL != nil {
		supplier.SupplierSurveyCloseURL = strings.TrimSpace(*req.SurveyCloseURL)
	}
	if req.Countries != nil {
		countries, _ := json.Marshal(req.Countries)
		supplier.SupplierCountries = countries
	}

	if err := ctrl.DB.Save(supplier).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode supplier sudah dipakai")
		}
		log.Println("[ERROR] update supplier gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui supplier")
	}
	return helper.JsonUpdated(c, "Supplier diperbarui", supplier)
}

// 🗑 Delete: DELETE /api/a/suppliers/:supplierKey
func (ctrl *SupplierAdminController) Delete(c *fiber.Ctx) error {
	supplier, err := supplierService.FindSupplierByKey(c.UserContext(), ctrl.DB, c.Params("supplierKey"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Supplier tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil supplier")
	}

	if err := ctrl.DB.Delete(&supplierModel.SupplierModel{}, "supplier_id = ?", supplier.SupplierID).Error; err != nil {
		log.Println("[ERROR] hapus supplier gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus supplier")
	}
	return helper.JsonDeleted(c, "Supplier dihapus", fiber.Map{"id": supplier.SupplierID})
}
