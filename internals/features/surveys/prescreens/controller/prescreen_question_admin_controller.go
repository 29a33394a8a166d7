package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	projectService "surveyku_backend/internals/features/surveys/projects/service"
	prescreenDTO "surveyku_backend/internals/features/surveys/prescreens/dto"
	prescreenModel "surveyku_backend/internals/features/surveys/prescreens/model"
	helper "surveyku_backend/internals/helpers"
)

type PrescreenQuestionAdminController struct {
	DB *gorm.DB
}

func NewPrescreenQuestionAdminController(db *gorm.DB) *PrescreenQuestionAdminController {
	return &PrescreenQuestionAdminController{DB: db}
}

// 📋 List: GET /api/a/projects/:projectKey/questions (termasuk yang non-aktif)
func (ctrl *PrescreenQuestionAdminController) List(c *fiber.Ctx) error {
	project, err := projectService.FindProjectByKey(c.UserContext(), ctrl.DB, c.Params("projectKey"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil project")
	}

	var questions []prescreenModel.PrescreenQuestionModel
	if err := ctrl.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("prescreen_option_sort_order ASC")
		}).
		Where("prescreen_question_project_id = ?", project.ProjectID).
		Order("prescreen_question_sort_order ASC").
		Find(&questions).Error; err != nil {
		log.Println("[ERROR] ambil pertanyaan prescreen gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan")
	}

	return helper.JsonOK(c, "ok", questions)
}

// ➕ Create: POST /api/a/projects/:projectKey/questions
// sort_order = max(yang pernah ada, termasuk soft-deleted) + 1 — slot tidak
// pernah dipakai ulang.
func (ctrl *PrescreenQuestionAdminController) Create(c *fiber.Ctx) error {
	project, err := projectService.FindProjectByKey(c.UserContext(), ctrl.DB, c.Params("projectKey"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil project")
	}

	var req prescreenDTO.QuestionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	question := prescreenModel.PrescreenQuestionModel{
		PrescreenQuestionID:            uuid.New(),
		PrescreenQuestionProjectID:     project.ProjectID,
		PrescreenQuestionTitle:         req.Title,
		PrescreenQuestionText:          req.Question,
		PrescreenQuestionControlType:   req.ControlType,
		PrescreenQuestionTextMinLength: req.TextMinLength,
		PrescreenQuestionTextMaxLength: req.TextMaxLength,
		PrescreenQuestionTextType:      req.TextType,
		PrescreenQuestionActive:        true,
	}
	if req.Active != nil {
		question.PrescreenQuestionActive = *req.Active
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		// Unscoped: baris soft-deleted tetap dihitung supaya slot tidak dipakai ulang
		if err := tx.Unscoped().Model(&prescreenModel.PrescreenQuestionModel{}).
			Where("prescreen_question_project_id = ?", project.ProjectID).
			Select("COALESCE(MAX(prescreen_question_sort_order), 0)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		question.PrescreenQuestionSortOrder = maxOrder + 1

		question.Options = buildOptions(question.PrescreenQuestionID, req.Options)
		return tx.Create(&question).Error
	}); err != nil {
		log.Println("[ERROR] simpan pertanyaan prescreen gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pertanyaan")
	}

	return helper.JsonCreated(c, "Pertanyaan prescreen dibuat", question)
}

// ✏️ Update: PUT /api/a/questions/:id — options diganti utuh kalau dikirim.
func (ctrl *PrescreenQuestionAdminController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pertanyaan tidak valid")
	}

	var req prescreenDTO.QuestionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var question prescreenModel.PrescreenQuestionModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&question, "prescreen_question_id = ?", id).Error; err != nil {
			return err
		}

		if req.Title != nil {
			question.PrescreenQuestionTitle = *req.Title
		}
		if req.Question != nil {
			question.PrescreenQuestionText = *req.Question
		}
		if req.ControlType != nil {
			question.PrescreenQuestionControlType = *req.ControlType
		}
		if req.TextMinLength != nil {
			question.PrescreenQuestionTextMinLength = *req.TextMinLength
		}
		if req.TextMaxLength != nil {
			question.PrescreenQuestionTextMaxLength = *req.TextMaxLength
		}
		if req.TextType != nil {
			question.PrescreenQuestionTextType = *req.TextType
		}
		if req.Active != nil {
			question.PrescreenQuestionActive = *req.Active
		}

		if err := tx.Save(&question).Error; err != nil {
			return err
		}

		if req.Options != nil {
			if err := tx.Where("prescreen_option_question_id = ?", question.PrescreenQuestionID).
				Delete(&prescreenModel.PrescreenOptionModel{}).Error; err != nil {
				return err
			}
			opts := buildOptions(question.PrescreenQuestionID, req.Options)
			if len(opts) > 0 {
				if err := tx.Create(&opts).Error; err != nil {
					return err
				}
			}
			question.Options = opts
		}
		return nil
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
		}
		log.Println("[ERROR] update pertanyaan prescreen gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pertanyaan")
	}

	return helper.JsonUpdated(c, "Pertanyaan prescreen diperbarui", question)
}

// 🗑 Delete: DELETE /api/a/questions/:id — soft delete; sort_order-nya tetap
// terhitung untuk pertanyaan berikutnya.
func (ctrl *PrescreenQuestionAdminController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pertanyaan tidak valid")
	}

	res := ctrl.DB.Where("prescreen_question_id = ?", id).Delete(&prescreenModel.PrescreenQuestionModel{})
	if res.Error != nil {
		log.Println("[ERROR] hapus pertanyaan prescreen gagal:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pertanyaan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pertanyaan prescreen dihapus", fiber.Map{"id": id})
}

func buildOptions(questionID uuid.UUID, reqs []prescreenDTO.QuestionOptionRequest) []prescreenModel.PrescreenOptionModel {
	opts := make([]prescreenModel.PrescreenOptionModel, 0, len(reqs))
	for i, o := range reqs {
		enabled := true
		if o.Enabled != nil {
			enabled = *o.Enabled
		}
		sortOrder := o.SortOrder
		if sortOrder == 0 {
			sortOrder = i + 1
		}
		opts = append(opts, prescreenModel.PrescreenOptionModel{
			PrescreenOptionID:         uuid.New(),
			PrescreenOptionQuestionID: questionID,
			PrescreenOptionLabel:      o.Label,
			PrescreenOptionValue:      o.Value,
			PrescreenOptionEnabled:    enabled,
			PrescreenOptionValidate:   o.Validate,
			PrescreenOptionQuota:      o.Quota,
			PrescreenOptionSortOrder:  sortOrder,
		})
	}
	return opts
}
