package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	redirectModel "surveyku_backend/internals/features/surveys/redirects/model"
	helper "surveyku_backend/internals/helpers"
)

// RedirectAdminController: baca-saja untuk operator (tidak ada mutasi —
// baris redirect/event hanya ditulis pipeline).
type RedirectAdminController struct {
	DB *gorm.DB
}

func NewRedirectAdminController(db *gorm.DB) *RedirectAdminController {
	return &RedirectAdminController{DB: db}
}

// 📋 ListRedirects: GET /api/a/redirects?projectId=&supplierId=&result=&page=&per_page=
func (ctrl *RedirectAdminController) ListRedirects(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&redirectModel.SurveyRedirectModel{})
	if v := strings.TrimSpace(c.Query("projectId")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "projectId tidak valid")
		}
		q = q.Where("survey_redirect_project_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("supplierId")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "supplierId tidak valid")
		}
		q = q.Where("survey_redirect_supplier_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("result")); v != "" {
		q = q.Where("survey_redirect_result = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] hitung survey redirects gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data redirect")
	}

	var rows []redirectModel.SurveyRedirectModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] ambil survey redirects gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data redirect")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 📋 ListEvents: GET /api/a/redirect-events?pid=&projectId=&page=&per_page=
func (ctrl *RedirectAdminController) ListEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&redirectModel.SupplierRedirectEventModel{})
	if v := strings.TrimSpace(c.Query("pid")); v != "" {
		q = q.Where("supplier_redirect_event_pid = ?", v)
	}
	if v := strings.TrimSpace(c.Query("projectId")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "projectId tidak valid")
		}
		q = q.Where("supplier_redirect_event_project_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] hitung redirect events gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	var rows []redirectModel.SupplierRedirectEventModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] ambil redirect events gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
