package controller

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"surveyku_backend/internals/configs"
	projectService "surveyku_backend/internals/features/surveys/projects/service"
	redirectModel "surveyku_backend/internals/features/surveys/redirects/model"
	redirectService "surveyku_backend/internals/features/surveys/redirects/service"
	respondentService "surveyku_backend/internals/features/surveys/respondents/service"
	supplierService "surveyku_backend/internals/features/surveys/suppliers/service"
	helper "surveyku_backend/internals/helpers"
)

type SurveyLiveController struct {
	DB    *gorm.DB
	Cache *redirectService.SurveyURLCache
}

func NewSurveyLiveController(db *gorm.DB, cache *redirectService.SurveyURLCache) *SurveyLiveController {
	return &SurveyLiveController{DB: db, Cache: cache}
}

// 🔀 RedirectLive: GET /survey-live/:projectKey?supplierId=&id=
// Resolve template live project → stamp tracking id → catat SurveyRedirect →
// 302 ke provider.
func (ctrl *SurveyLiveController) RedirectLive(c *fiber.Ctx) error {
	return ctrl.redirect(c, false)
}

// RedirectTest: sama persis dengan RedirectLive tapi pakai template test dan
// TIDAK menulis baris SurveyRedirect (link uji admin, bukan trafik respondent).
func (ctrl *SurveyLiveController) RedirectTest(c *fiber.Ctx) error {
	return ctrl.redirect(c, true)
}

func (ctrl *SurveyLiveController) redirect(c *fiber.Ctx, testMode bool) error {
	projectKey := strings.TrimSpace(c.Params("projectKey"))
	externalID := strings.TrimSpace(c.Query("id"))
	supplierID := ctrl.resolveSupplierID(c.UserContext(), strings.TrimSpace(c.Query("supplierId")))

	// 1–3) resolve template via cache; lookup DB dibatasi timeout keras
	cacheKey := projectKey
	if testMode {
		cacheKey = "test:" + projectKey
	}
	entry, ok := ctrl.Cache.Get(cacheKey)
	if !ok {
		ctx, cancel := context.WithTimeout(c.UserContext(), configs.SurveyLookupTimeout)
		defer cancel()

		project, err := projectService.FindProjectByKey(ctx, ctrl.DB, projectKey)
		if err != nil {
			// entri basi lebih baik daripada gagal total
			if stale, found := ctrl.Cache.GetStale(cacheKey); found {
				log.Println("[WARN] project lookup gagal, pakai template cache basi:", err)
				entry = stale
			} else if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
				return helper.JsonPipeError(c, fiber.StatusGatewayTimeout, "project lookup timed out")
			} else if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonPipeError(c, fiber.StatusNotFound, "project not found")
			} else {
				log.Println("[ERROR] project lookup gagal:", err)
				return helper.JsonPipeError(c, fiber.StatusInternalServerError, "project lookup failed")
			}
		} else {
			tmpl := project.ProjectSurveyURLLive
			if testMode {
				tmpl = project.ProjectSurveyURLTest
			}
			if strings.TrimSpace(tmpl) == "" {
				return helper.JsonPipeError(c, fiber.StatusBadRequest, "project survey url is not configured")
			}
			entry = redirectService.SurveyURLEntry{ProjectID: project.ProjectID, Template: tmpl}

			// simpan di bawah key input DAN id/code kanonik
			idKey := project.ProjectID.String()
			codeKey := project.ProjectCode
			if testMode {
				idKey, codeKey = "test:"+idKey, "test:"+codeKey
			}
			ctrl.Cache.Put(entry, cacheKey, idKey, codeKey)
		}
	}

	// 4) best-effort: pastikan baris respondent ada
	var respondentID *uuid.UUID
	if r := respondentService.EnsureRespondent(ctrl.DB, entry.ProjectID, externalID, supplierID); r != nil {
		respondentID = &r.RespondentID
	}

	// 5–6) tracking id + substitusi token
	trackingID := helper.GenerateTrackingID()
	tokens := map[string]string{
		"identifier": trackingID,
		"pid":        trackingID,
		"projectId":  entry.ProjectID.String(),
	}
	if supplierID != nil {
		tokens["supplierId"] = supplierID.String()
	}
	dest := helper.ApplyURLTokens(entry.Template, tokens)

	// 7–8) wajib absolut + http(s)
	u, err := url.Parse(dest)
	if err != nil {
		return helper.JsonPipeError(c, fiber.StatusBadRequest, "survey url template produced an invalid url")
	}
	if !u.IsAbs() {
		if configs.AppBaseURL == "" {
			return helper.JsonPipeError(c, fiber.StatusInternalServerError, "APP_BASE_URL is not configured for relative survey urls")
		}
		base, berr := url.Parse(configs.AppBaseURL)
		if berr != nil {
			return helper.JsonPipeError(c, fiber.StatusInternalServerError, "APP_BASE_URL is invalid")
		}
		u = base.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return helper.JsonPipeError(c, fiber.StatusBadRequest, "unsupported survey url scheme")
	}

	// 9) paksa rid = tracking id — kunci korelasi kanonik, menang atas apapun
	// yang dihasilkan template
	q := u.Query()
	q.Set("rid", trackingID)
	u.RawQuery = q.Encode()
	finalURL := u.String()

	// 10) catat redirect sebelum 302 — tanpa ini thanks-index tidak akan
	// menemukan konteksnya. Skippable via WRITE_REDIRECTS untuk kondisi darurat.
	if !testMode && configs.WriteRedirects {
		row := redirectModel.SurveyRedirectModel{
			SurveyRedirectID:             trackingID,
			SurveyRedirectProjectID:      entry.ProjectID,
			SurveyRedirectSupplierID:     supplierID,
			SurveyRedirectRespondentID:   respondentID,
			SurveyRedirectExternalID:     externalID,
			SurveyRedirectDestinationURL: finalURL,
		}
		if err := ctrl.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "survey_redirect_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"survey_redirect_destination_url",
				"survey_redirect_external_id",
				"updated_at",
			}),
		}).Create(&row).Error; err != nil {
			log.Println("[ERROR] gagal menulis survey redirect:", err)
		}
	}

	// 11)
	return c.Redirect(finalURL, fiber.StatusFound)
}

// resolveSupplierID menerima uuid ATAU kode supplier (dual key, konsisten
// dengan project). Supplier yang tidak dikenal tidak menggagalkan redirect —
// diperlakukan seperti "tanpa supplier".
func (ctrl *SurveyLiveController) resolveSupplierID(ctx context.Context, key string) *uuid.UUID {
	if key == "" {
		return nil
	}
	s, err := supplierService.FindSupplierByKey(ctx, ctrl.DB, key)
	if err != nil {
		log.Printf("[WARN] supplierId %q tidak dikenal: %v", key, err)
		return nil
	}
	return &s.SupplierID
}
