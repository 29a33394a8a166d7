package controller

import (
	"errors"
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"surveyku_backend/internals/configs"
	redirectModel "surveyku_backend/internals/features/surveys/redirects/model"
	redirectService "surveyku_backend/internals/features/surveys/redirects/service"
	respondentService "surveyku_backend/internals/features/surveys/respondents/service"
	supplierModel "surveyku_backend/internals/features/surveys/suppliers/model"
	supplierService "surveyku_backend/internals/features/surveys/suppliers/service"
	helper "surveyku_backend/internals/helpers"
)

type ThanksController struct {
	DB *gorm.DB
}

func NewThanksController(db *gorm.DB) *ThanksController {
	return &ThanksController{DB: db}
}

// 📬 Index: GET /thanks-index?auth=&pid=|rid=
// Terima callback provider → petakan auth → temukan SurveyRedirect asal →
// simpan outcome → catat event (best-effort) → 302 ke halaman thanks dengan
// next URL supplier (kalau ada).
func (ctrl *ThanksController) Index(c *fiber.Ctx) error {
	// 1) auth dulu, sebelum sentuh DB sama sekali
	result, outcome, ok := redirectService.MapAuthCode(c.Query("auth"))
	if !ok {
		return helper.JsonPipeError(c, fiber.StatusBadRequest, "invalid or missing auth")
	}

	// 2) pid utama, rid alias legacy
	pid := strings.TrimSpace(c.Query("pid"))
	if pid == "" {
		pid = strings.TrimSpace(c.Query("rid"))
	}
	if pid == "" {
		return helper.JsonPipeError(c, fiber.StatusBadRequest, "missing pid")
	}

	// 3) temukan konteks redirect asal
	redirect, err := ctrl.findRedirect(pid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonPipeError(c, fiber.StatusBadRequest, "redirect context not found")
		}
		log.Println("[ERROR] lookup survey redirect gagal:", err)
		return helper.JsonPipeError(c, fiber.StatusInternalServerError, "redirect lookup failed")
	}

	// 4) lazy resolve respondent + tempel balik ke baris redirect (best-effort)
	if redirect.SurveyRedirectRespondentID == nil && redirect.SurveyRedirectExternalID != "" {
		if r, _, rerr := respondentService.ResolveRespondent(
			ctrl.DB,
			redirect.SurveyRedirectProjectID,
			redirect.SurveyRedirectExternalID,
			redirect.SurveyRedirectSupplierID,
		); rerr != nil {
			log.Println("[WARN] lazy resolve respondent gagal:", rerr)
		} else {
			redirect.SurveyRedirectRespondentID = &r.RespondentID
			if uerr := ctrl.DB.Model(&redirectModel.SurveyRedirectModel{}).
				Where("survey_redirect_id = ?", redirect.SurveyRedirectID).
				Update("survey_redirect_respondent_id", r.RespondentID).Error; uerr != nil {
				log.Println("[WARN] backfill respondent_id ke redirect gagal:", uerr)
			}
		}
	}

	// 5) simpan result — idempotent: nilai sama di-skip, nilai beda overwrite
	// (last-write-wins untuk callback duplikat/terlambat)
	if redirect.SurveyRedirectResult == nil || *redirect.SurveyRedirectResult != result {
		if uerr := ctrl.DB.Model(&redirectModel.SurveyRedirectModel{}).
			Where("survey_redirect_id = ?", redirect.SurveyRedirectID).
			Update("survey_redirect_result", result).Error; uerr != nil {
			log.Println("[ERROR] gagal menyimpan result disposisi:", uerr)
			return helper.JsonPipeError(c, fiber.StatusInternalServerError, "failed to persist disposition")
		}
		redirect.SurveyRedirectResult = &result
	}

	// 6) event log append-only, best-effort — duplikat callback = dua baris,
	// itu memang perilaku audit trail
	event := redirectModel.SupplierRedirectEventModel{
		SupplierRedirectEventID:           uuid.New(),
		SupplierRedirectEventProjectID:    redirect.SurveyRedirectProjectID,
		SupplierRedirectEventSupplierID:   redirect.SurveyRedirectSupplierID,
		SupplierRedirectEventRespondentID: redirect.SurveyRedirectRespondentID,
		SupplierRedirectEventPID:          redirect.SurveyRedirectID,
		SupplierRedirectEventOutcome:      outcome,
	}
	if eerr := ctrl.DB.Create(&event).Error; eerr != nil {
		log.Println("[WARN] gagal menulis supplier redirect event:", eerr)
	}

	// 7) bounce URL supplier sesuai outcome, token diisi kode supplier
	next := ""
	if redirect.SurveyRedirectSupplierID != nil {
		var sup supplierModel.SupplierModel
		if serr := ctrl.DB.First(&sup, "supplier_id = ?", *redirect.SurveyRedirectSupplierID).Error; serr != nil {
			log.Println("[WARN] supplier untuk bounce tidak ditemukan:", serr)
		} else if tmpl := supplierService.OutcomeURL(&sup, result); tmpl != "" {
			next = helper.ApplyURLTokens(tmpl, map[string]string{"identifier": sup.SupplierCode})
		}
	}

	// 8) 302 ke halaman thanks internal
	v := url.Values{}
	v.Set("status", string(outcome))
	v.Set("pid", redirect.SurveyRedirectID)
	if next != "" {
		v.Set("next", next)
	}
	thanksURL := configs.ThanksURL
	if thanksURL == "" {
		thanksURL = "/thanks"
	}
	sep := "?"
	if strings.Contains(thanksURL, "?") {
		sep = "&"
	}
	return c.Redirect(thanksURL+sep+v.Encode(), fiber.StatusFound)
}

// LegacyDone: GET /surveydone — alias lama, cuma meneruskan ke /thanks-index
// dengan seluruh query string apa adanya.
func (ctrl *ThanksController) LegacyDone(c *fiber.Ctx) error {
	target := "/thanks-index"
	if qs := string(c.Request().URI().QueryString()); qs != "" {
		target += "?" + qs
	}
	return c.Redirect(target, fiber.StatusFound)
}

// Pesan halaman thanks per outcome (kosakata event log, bukan result).
var thanksMessages = map[redirectModel.EventOutcome]string{
	redirectModel.OutcomeComplete:    "Terima kasih! Survey Anda sudah selesai.",
	redirectModel.OutcomeTerminate:   "Maaf, Anda tidak memenuhi kriteria survey ini.",
	redirectModel.OutcomeOverQuota:   "Kuota survey ini sudah terpenuhi.",
	redirectModel.OutcomeQualityTerm: "Sesi survey Anda dihentikan.",
	redirectModel.OutcomeSurveyClose: "Survey ini sudah ditutup.",
}

// Page: GET /thanks?status=&pid=&next= — target 302 dari Index.
func (ctrl *ThanksController) Page(c *fiber.Ctx) error {
	status := redirectModel.EventOutcome(c.Query("status"))
	msg, ok := thanksMessages[status]
	if !ok {
		msg = "Terima kasih atas partisipasi Anda."
	}
	return c.JSON(fiber.Map{
		"status":  status,
		"message": msg,
		"pid":     c.Query("pid"),
		"next":    c.Query("next"),
	})
}

// findRedirect: kalau pid berbentuk tracking id (20 char alnum) → lookup PK;
// selain itu, atau kalau PK miss, fallback ke baris TERBARU dengan external id
// sama. Most-recent-wins memang rawan salah atribusi kalau external id dipakai
// ulang lintas retry — perilaku lama yang sengaja dipertahankan.
func (ctrl *ThanksController) findRedirect(pid string) (*redirectModel.SurveyRedirectModel, error) {
	var row redirectModel.SurveyRedirectModel
	if helper.LooksLikeTrackingID(pid) {
		err := ctrl.DB.First(&row, "survey_redirect_id = ?", pid).Error
		if err == nil {
			return &row, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if err := ctrl.DB.Where("survey_redirect_external_id = ?", pid).
		Order("created_at DESC").
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
