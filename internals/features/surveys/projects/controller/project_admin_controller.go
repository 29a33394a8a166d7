package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	projectDTO "surveyku_backend/internals/features/surveys/projects/dto"
	projectModel "surveyku_backend/internals/features/surveys/projects/model"
	projectService "surveyku_backend/internals/features/surveys/projects/service"
	helper "surveyku_backend/internals/helpers"
)

type ProjectAdminController struct {
	DB *gorm.DB
}

func NewProjectAdminController(db *gorm.DB) *ProjectAdminController {
	return &ProjectAdminController{DB: db}
}

// 📋 List: GET /api/a/projects?q=&page=&per_page=
func (ctrl *ProjectAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&projectModel.ProjectModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("project_code ILIKE ? OR project_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] hitung projects gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data project")
	}

	var rows []projectModel.ProjectModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] ambil projects gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data project")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 Get: GET /api/a/projects/:projectKey (id atau code)
func (ctrl *ProjectAdminController) Get(c *fiber.Ctx) error {
	project, err := projectService.FindProjectByKey(c.UserContext(), ctrl.DB, c.Params("projectKey"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		log.Println("[ERROR] ambil project gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil project")
	}
	return helper.JsonOK(c, "ok", project)
}

// ➕ Create: POST /api/a/projects
func (ctrl *ProjectAdminController) Create(c *fiber.Ctx) error {
	var req projectDTO.ProjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := projectModel.ProjectModel{
		ProjectID:            uuid.New(),
		ProjectCode:          strings.TrimSpace(req.Code),
		ProjectName:          strings.TrimSpace(req.Name),
		ProjectSurveyURLLive: strings.TrimSpace(req.SurveyURLLive),
		ProjectSurveyURLTest: strings.TrimSpace(req.SurveyURLTest),
		ProjectPrescreen:     req.Prescreen,
		ProjectCountry:       req.Country,
		ProjectLanguage:      req.Language,
		ProjectCPI:           req.CPI,
	}
	if req.SupplierID != "" {
		sid, _ := uuid.Parse(req.SupplierID)
		row.ProjectSupplierID = &sid
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode project sudah dipakai")
		}
		log.Println("[ERROR] simpan project gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan project")
	}
	return helper.JsonCreated(c, "Project dibuat", row)
}

// ✏️ Update: PUT /api/a/projects/:projectKey
func (ctrl *ProjectAdminController) Update(c *fiber.Ctx) error {
	var req projectDTO.ProjectUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	project, err := projectService.FindProjectByKey(c.UserContext(), ctrl.DB, c.Params("projectKey"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil project")
	}

	if req.Code != nil {
		project.ProjectCode = strings.TrimSpace(*req.Code)
	}
	if req.Name != nil {
		project.ProjectName = strings.TrimSpace(*req.Name)
	}
	if req.SurveyURLLive != nil {
		project.ProjectSurveyURLLive = strings.TrimSpace(*req.SurveyURLLive)
	}
	if req.SurveyURLTest != nil {
		project.ProjectSurveyURLTest = strings.TrimSpace(*req.SurveyURLTest)
	}
	if req.Prescreen != nil {
		project.ProjectPrescreen = *req.Prescreen
	}
	if req.SupplierID != nil {
		if *req.SupplierID == "" {
			project.ProjectSupplierID = nil
		} else {
			sid, _ := uuid.Parse(*req.SupplierID)
			project.ProjectSupplierID = &sid
		}
	}
	if req.Country != nil {
		project.ProjectCountry = *req.Country
	}
	if req.Language != nil {
		project.ProjectLanguage = *req.Language
	}
	if req.CPI != nil {
		project.ProjectCPI = *req.CPI
	}

	if err := ctrl.DB.Save(project).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode project sudah dipakai")
		}
		log.Println("[ERROR] update project gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui project")
	}
	return helper.JsonUpdated(c, "Project diperbarui", project)
}

// 🗑 Delete: DELETE /api/a/projects/:projectKey
func (ctrl *ProjectAdminController) Delete(c *fiber.Ctx) error {
	project, err := projectService.FindProjectByKey(c.UserContext(), ctrl.DB, c.Params("projectKey"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil project")
	}

	if err := ctrl.DB.Delete(&projectModel.ProjectModel{}, "project_id = ?", project.ProjectID).Error; err != nil {
		log.Println("[ERROR] hapus project gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus project")
	}
	return helper.JsonDeleted(c, "Project dihapus", fiber.Map{"id": project.ProjectID})
}
