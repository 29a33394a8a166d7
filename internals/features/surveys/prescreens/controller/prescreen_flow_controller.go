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
	"gorm.io/gorm/clause"

	projectService "surveyku_backend/internals/features/surveys/projects/service"
	prescreenDTO "surveyku_backend/internals/features/surveys/prescreens/dto"
	prescreenModel "surveyku_backend/internals/features/surveys/prescreens/model"
	respondentService "surveyku_backend/internals/features/surveys/respondents/service"
	supplierService "surveyku_backend/internals/features/surveys/suppliers/service"
	helper "surveyku_backend/internals/helpers"
)

// PrescreenFlowController: sisi respondent dari gerbang prescreen — pertanyaan
// pending dan submit jawaban. Validasi jawaban per-pertanyaan (wajib isi,
// panjang teks, dsb) urusan client; server hanya menjamin jawaban tercatat
// sebelum pertanyaan keluar dari daftar pending.
type PrescreenFlowController struct {
	DB *gorm.DB
}

func NewPrescreenFlowController(db *gorm.DB) *PrescreenFlowController {
	return &PrescreenFlowController{DB: db}
}

// ❓ PendingQuestions: GET /prescreen-pending/:projectKey/:externalId?supplierId=
// Pastikan respondent ada, lalu kembalikan pertanyaan aktif yang BELUM
// dijawab, urut sort_order.
func (ctrl *PrescreenFlowController) PendingQuestions(c *fiber.Ctx) error {
	project, err := projectService.FindProjectByKey(c.UserContext(), ctrl.DB, c.Params("projectKey"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonPipeError(c, fiber.StatusNotFound, "project not found")
		}
		log.Println("[ERROR] project lookup gagal:", err)
		return helper.JsonPipeError(c, fiber.StatusInternalServerError, "project lookup failed")
	}

	externalID := strings.TrimSpace(c.Params("externalId"))
	if externalID == "" {
		return helper.JsonPipeError(c, fiber.StatusBadRequest, "missing external id")
	}
	supplierID := ctrl.resolveSupplierID(c, strings.TrimSpace(c.Query("supplierId")))

	respondent, _, err := respondentService.ResolveRespondent(ctrl.DB, project.ProjectID, externalID, supplierID)
	if err != nil {
		log.Println("[ERROR] resolve respondent gagal:", err)
		return helper.JsonPipeError(c, fiber.StatusInternalServerError, "failed to resolve respondent")
	}

	var questions []prescreenModel.PrescreenQuestionModel
	if err := ctrl.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Where("prescreen_option_enabled = ?", true).
				Order("prescreen_option_sort_order ASC")
		}).
		Where("prescreen_question_project_id = ? AND prescreen_question_active = ?", project.ProjectID, true).
		Order("prescreen_question_sort_order ASC").
		Find(&questions).Error; err != nil {
		log.Println("[ERROR] ambil pertanyaan prescreen gagal:", err)
		return helper.JsonPipeError(c, fiber.StatusInternalServerError, "failed to load questions")
	}

	var answeredIDs []uuid.UUID
	if err := ctrl.DB.Model(&prescreenModel.PrescreenAnswerModel{}).
		Where("prescreen_answer_respondent_id = ?", respondent.RespondentID).
		Pluck("prescreen_answer_question_id", &answeredIDs).Error; err != nil {
		log.Println("[ERROR] ambil jawaban prescreen gagal:", err)
		return helper.JsonPipeError(c, fiber.StatusInternalServerError, "failed to load answers")
	}
	answered := make(map[uuid.UUID]struct{}, len(answeredIDs))
	for _, id := range answeredIDs {
		answered[id] = struct{}{}
	}

	items := make([]prescreenDTO.PendingQuestionItem, 0, len(questions))
	for i := range questions {
		if _, done := answered[questions[i].PrescreenQuestionID]; done {
			continue
		}
		items = append(items, prescreenDTO.NewPendingQuestionItem(&questions[i]))
	}

	return c.JSON(fiber.Map{"items": items})
}

// 📩 SubmitAnswers: POST /prescreen-answers/:projectKey/:externalId
// Body {supplierId, answers:[{questionId, value}]}. Upsert per
// (respondent, question) — submit ulang menimpa jawaban lama.
func (ctrl *PrescreenFlowController) SubmitAnswers(c *fiber.Ctx) error {
	project, err := projectService.FindProjectByKey(c.UserContext(), ctrl.DB, c.Params("projectKey"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonPipeError(c, fiber.StatusNotFound, "project not found")
		}
		log.Println("[ERROR] project lookup gagal:", err)
		return helper.JsonPipeError(c, fiber.StatusInternalServerError, "project lookup failed")
	}

	externalID := strings.TrimSpace(c.Params("externalId"))
	if externalID == "" {
		return helper.JsonPipeError(c, fiber.StatusBadRequest, "missing external id")
	}

	var req prescreenDTO.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		log.Println("[ERROR] parse body jawaban prescreen gagal:", err)
		return helper.JsonPipeError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonPipeError(c, fiber.StatusBadRequest, "invalid answers payload")
	}

	supplierID := ctrl.resolveSupplierID(c, strings.TrimSpace(req.SupplierID))
	respondent, _, err := respondentService.ResolveRespondent(ctrl.DB, project.ProjectID, externalID, supplierID)
	if err != nil {
		log.Println("[ERROR] resolve respondent gagal:", err)
		return helper.JsonPipeError(c, fiber.StatusInternalServerError, "failed to resolve respondent")
	}

	saved := 0
	for _, in := range req.Answers {
		questionID, perr := uuid.Parse(in.QuestionID)
		if perr != nil {
			return helper.JsonPipeError(c, fiber.StatusBadRequest, "invalid questionId: "+in.QuestionID)
		}

		// pertanyaan harus milik project ini (jangan nyangkut lintas project)
		var q prescreenModel.PrescreenQuestionModel
		if qerr := ctrl.DB.
			Where("prescreen_question_id = ? AND prescreen_question_project_id = ?", questionID, project.ProjectID).
			First(&q).Error; qerr != nil {
			if errors.Is(qerr, gorm.ErrRecordNotFound) {
				return helper.JsonPipeError(c, fiber.StatusBadRequest, "unknown questionId: "+in.QuestionID)
			}
			log.Println("[ERROR] cek pertanyaan gagal:", qerr)
			return helper.JsonPipeError(c, fiber.StatusInternalServerError, "failed to check question")
		}

		row := prescreenModel.PrescreenAnswerModel{
			PrescreenAnswerID:           uuid.New(),
			PrescreenAnswerRespondentID: respondent.RespondentID,
			PrescreenAnswerQuestionID:   questionID,
		}
		if in.Value.IsList {
			raw, merr := json.Marshal(in.Value.List)
			if merr != nil {
				return helper.JsonPipeError(c, fiber.StatusBadRequest, "invalid answer value")
			}
			row.PrescreenAnswerValues = raw
		} else {
			row.PrescreenAnswerTextValue = in.Value.Text
		}

		if uerr := ctrl.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "prescreen_answer_respondent_id"},
				{Name: "prescreen_answer_question_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"prescreen_answer_text_value",
				"prescreen_answer_values",
				"updated_at",
			}),
		}).Create(&row).Error; uerr != nil {
			log.Println("[ERROR] simpan jawaban prescreen gagal:", uerr)
			return helper.JsonPipeError(c, fiber.StatusInternalServerError, "failed to save answers")
		}
		saved++
	}

	return c.JSON(fiber.Map{"ok": true, "saved": saved})
}

func (ctrl *PrescreenFlowController) resolveSupplierID(c *fiber.Ctx, key string) *uuid.UUID {
	if key == "" {
		return nil
	}
	s, err := supplierService.FindSupplierByKey(c.UserContext(), ctrl.DB, key)
	if err != nil {
		log.Printf("[WARN] supplierId %q tidak dikenal: %v", key, err)
		return nil
	}
	return &s.SupplierID
}
