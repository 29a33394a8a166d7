package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	prescreenModel "surveyku_backend/internals/features/surveys/prescreens/model"
	projectModel "surveyku_backend/internals/features/surveys/projects/model"
	respondentModel "surveyku_backend/internals/features/surveys/respondents/model"
	supplierModel "surveyku_backend/internals/features/surveys/suppliers/model"
)

type prescreenFixture struct {
	app     *fiber.App
	db      *gorm.DB
	project projectModel.ProjectModel
}

func newPrescreenFixture(t *testing.T) *prescreenFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&projectModel.ProjectModel{},
		&supplierModel.SupplierModel{},
		&respondentModel.RespondentModel{},
		&prescreenModel.PrescreenQuestionModel{},
		&prescreenModel.PrescreenOptionModel{},
		&prescreenModel.PrescreenAnswerModel{},
	))

	f := &prescreenFixture{db: db}
	f.project = projectModel.ProjectModel{
		ProjectID:        uuid.New(),
		ProjectCode:      "PRJ1",
		ProjectName:      "Project Uji",
		ProjectPrescreen: true,
	}
	require.NoError(t, db.Create(&f.project).Error)

	flowCtrl := NewPrescreenFlowController(db)
	adminCtrl := NewPrescreenQuestionAdminController(db)

	app := fiber.New()
	app.Get("/prescreen-pending/:projectKey/:externalId", flowCtrl.PendingQuestions)
	app.Post("/prescreen-answers/:projectKey/:externalId", flowCtrl.SubmitAnswers)
	app.Get("/projects/:projectKey/questions", adminCtrl.List)
	app.Post("/projects/:projectKey/questions", adminCtrl.Create)
	app.Put("/questions/:id", adminCtrl.Update)
	app.Delete("/questions/:id", adminCtrl.Delete)
	f.app = app
	return f
}

func (f *prescreenFixture) addQuestion(t *testing.T, title, controlType string, sortOrder int, active bool, options ...string) prescreenModel.PrescreenQuestionModel {
	t.Helper()
	q := prescreenModel.PrescreenQuestionModel{
		PrescreenQuestionID:          uuid.New(),
		PrescreenQuestionProjectID:   f.project.ProjectID,
		PrescreenQuestionTitle:       title,
		PrescreenQuestionText:        title + "?",
		PrescreenQuestionControlType: controlType,
		PrescreenQuestionSortOrder:   sortOrder,
		PrescreenQuestionActive:      active,
	}
	for i, opt := range options {
		q.Options = append(q.Options, prescreenModel.PrescreenOptionModel{
			PrescreenOptionID:         uuid.New(),
			PrescreenOptionQuestionID: q.PrescreenQuestionID,
			PrescreenOptionLabel:      opt,
			PrescreenOptionValue:      opt,
			PrescreenOptionEnabled:    true,
			PrescreenOptionSortOrder:  i + 1,
		})
	}
	require.NoError(t, f.db.Create(&q).Error)
	return q
}

func (f *prescreenFixture) do(t *testing.T, method, target string, body interface{}) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	return resp
}

type pendingResponse struct {
	Items []struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Question    string `json:"question"`
		ControlType string `json:"controlType"`
		Options     []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"options"`
	} `json:"items"`
}

func (f *prescreenFixture) pending(t *testing.T, externalID string) pendingResponse {
	t.Helper()
	resp := f.do(t, http.MethodGet, "/prescreen-pending/PRJ1/"+externalID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out pendingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ---------------------------------------------------------------------------
// pending questions
// ---------------------------------------------------------------------------

func TestPendingQuestions_AllUnanswered(t *testing.T) {
	f := newPrescreenFixture(t)
	q1 := f.addQuestion(t, "Usia", prescreenModel.ControlText, 1, true)
	q2 := f.addQuestion(t, "Warna", prescreenModel.ControlRadio, 2, true, "Merah", "Biru")

	out := f.pending(t, "ext1")
	require.Len(t, out.Items, 2)
	assert.Equal(t, q1.PrescreenQuestionID.String(), out.Items[0].ID)
	assert.Equal(t, q2.PrescreenQuestionID.String(), out.Items[1].ID)
	assert.Equal(t, "RADIO", out.Items[1].ControlType)
	require.Len(t, out.Items[1].Options, 2)
	assert.Equal(t, "Merah", out.Items[1].Options[0].Label)
}

// Jawab Q1 → pending tinggal Q2, urutan tetap.
func TestPendingQuestions_AnsweredDropsOut(t *testing.T) {
	f := newPrescreenFixture(t)
	q1 := f.addQuestion(t, "Usia", prescreenModel.ControlText, 1, true)
	q2 := f.addQuestion(t, "Warna", prescreenModel.ControlRadio, 2, true, "Merah", "Biru")

	resp := f.do(t, http.MethodPost, "/prescreen-answers/PRJ1/ext1", fiber.Map{
		"answers": []fiber.Map{{"questionId": q1.PrescreenQuestionID.String(), "value": "30"}},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := f.pending(t, "ext1")
	require.Len(t, out.Items, 1)
	assert.Equal(t, q2.PrescreenQuestionID.String(), out.Items[0].ID)
}

// Jawaban respondent lain tidak memengaruhi daftar pending saya.
func TestPendingQuestions_PerRespondent(t *testing.T) {
	f := newPrescreenFixture(t)
	q1 := f.addQuestion(t, "Usia", prescreenModel.ControlText, 1, true)

	resp := f.do(t, http.MethodPost, "/prescreen-answers/PRJ1/ext1", fiber.Map{
		"answers": []fiber.Map{{"questionId": q1.PrescreenQuestionID.String(), "value": "30"}},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := f.pending(t, "ext2")
	assert.Len(t, out.Items, 1)
}

func TestPendingQuestions_InactiveExcluded(t *testing.T) {
	f := newPrescreenFixture(t)
	f.addQuestion(t, "Nonaktif", prescreenModel.ControlText, 1, false)
	q2 := f.addQuestion(t, "Aktif", prescreenModel.ControlText, 2, true)

	out := f.pending(t, "ext1")
	require.Len(t, out.Items, 1)
	assert.Equal(t, q2.PrescreenQuestionID.String(), out.Items[0].ID)
}

func TestPendingQuestions_DisabledOptionsHidden(t *testing.T) {
	f := newPrescreenFixture(t)
	q := f.addQuestion(t, "Warna", prescreenModel.ControlRadio, 1, true, "Merah", "Biru")
	require.NoError(t, f.db.Model(&prescreenModel.PrescreenOptionModel{}).
		Where("prescreen_option_question_id = ? AND prescreen_option_label = ?", q.PrescreenQuestionID, "Biru").
		Update("prescreen_option_enabled", false).Error)

	out := f.pending(t, "ext1")
	require.Len(t, out.Items, 1)
	require.Len(t, out.Items[0].Options, 1)
	assert.Equal(t, "Merah", out.Items[0].Options[0].Label)
}

func TestPendingQuestions_ProjectNotFound(t *testing.T) {
	f := newPrescreenFixture(t)
	resp := f.do(t, http.MethodGet, "/prescreen-pending/TIDAK-ADA/ext1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ---------------------------------------------------------------------------
// submit answers
// ---------------------------------------------------------------------------

func TestSubmitAnswers_TextAndList(t *testing.T) {
	f := newPrescreenFixture(t)
	q1 := f.addQuestion(t, "Usia", prescreenModel.ControlText, 1, true)
	q2 := f.addQuestion(t, "Hobi", prescreenModel.ControlCheckbox, 2, true, "Baca", "Lari")

	resp := f.do(t, http.MethodPost, "/prescreen-answers/PRJ1/ext1", fiber.Map{
		"answers": []fiber.Map{
			{"questionId": q1.PrescreenQuestionID.String(), "value": "30"},
			{"questionId": q2.PrescreenQuestionID.String(), "value": []string{"Baca", "Lari"}},
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		OK    bool `json:"ok"`
		Saved int  `json:"saved"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.OK)
	assert.Equal(t, 2, body.Saved)

	var rows []prescreenModel.PrescreenAnswerModel
	require.NoError(t, f.db.Order("created_at ASC").Find(&rows).Error)
	require.Len(t, rows, 2)

	byQuestion := map[uuid.UUID]prescreenModel.PrescreenAnswerModel{}
	for _, r := range rows {
		byQuestion[r.PrescreenAnswerQuestionID] = r
	}
	assert.Equal(t, "30", byQuestion[q1.PrescreenQuestionID].PrescreenAnswerTextValue)
	assert.JSONEq(t, `["Baca","Lari"]`, string(byQuestion[q2.PrescreenQuestionID].PrescreenAnswerValues))
}

// Submit ulang pertanyaan yang sama = overwrite, bukan baris baru.
func TestSubmitAnswers_Upsert(t *testing.T) {
	f := newPrescreenFixture(t)
	q1 := f.addQuestion(t, "Usia", prescreenModel.ControlText, 1, true)

	for _, val := range []string{"30", "31"} {
		resp := f.do(t, http.MethodPost, "/prescreen-answers/PRJ1/ext1", fiber.Map{
			"answers": []fiber.Map{{"questionId": q1.PrescreenQuestionID.String(), "value": val}},
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	var rows []prescreenModel.PrescreenAnswerModel
	require.NoError(t, f.db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "31", rows[0].PrescreenAnswerTextValue)
}

func TestSubmitAnswers_EmptyAnswersRejected(t *testing.T) {
	f := newPrescreenFixture(t)

	resp := f.do(t, http.MethodPost, "/prescreen-answers/PRJ1/ext1", fiber.Map{
		"answers": []fiber.Map{},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitAnswers_QuestionFromOtherProjectRejected(t *testing.T) {
	f := newPrescreenFixture(t)

	other := projectModel.ProjectModel{ProjectID: uuid.New(), ProjectCode: "PRJ2", ProjectName: "Lain"}
	require.NoError(t, f.db.Create(&other).Error)
	foreign := prescreenModel.PrescreenQuestionModel{
		PrescreenQuestionID:          uuid.New(),
		PrescreenQuestionProjectID:   other.ProjectID,
		PrescreenQuestionTitle:       "Asing",
		PrescreenQuestionText:        "Asing?",
		PrescreenQuestionControlType: prescreenModel.ControlText,
		PrescreenQuestionSortOrder:   1,
		PrescreenQuestionActive:      true,
	}
	require.NoError(t, f.db.Create(&foreign).Error)

	resp := f.do(t, http.MethodPost, "/prescreen-answers/PRJ1/ext1", fiber.Map{
		"answers": []fiber.Map{{"questionId": foreign.PrescreenQuestionID.String(), "value": "x"}},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ---------------------------------------------------------------------------
// admin: sort_order monoton
// ---------------------------------------------------------------------------

func (f *prescreenFixture) createViaAPI(t *testing.T, title string) prescreenModel.PrescreenQuestionModel {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/projects/PRJ1/questions", fiber.Map{
		"title":        title,
		"question":     title + "?",
		"control_type": "TEXT",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var q prescreenModel.PrescreenQuestionModel
	require.NoError(t, f.db.
		Where("prescreen_question_project_id = ? AND prescreen_question_title = ?", f.project.ProjectID, title).
		First(&q).Error)
	return q
}

func TestQuestionCreate_SortOrderIncrements(t *testing.T) {
	f := newPrescreenFixture(t)

	q1 := f.createViaAPI(t, "Pertama")
	q2 := f.createViaAPI(t, "Kedua")
	assert.Equal(t, 1, q1.PrescreenQuestionSortOrder)
	assert.Equal(t, 2, q2.PrescreenQuestionSortOrder)
}

// Slot sort_order tidak pernah dipakai ulang: hapus pertanyaan terakhir,
// pertanyaan baru tetap dapat nomor berikutnya.
func TestQuestionCreate_SortOrderNeverReused(t *testing.T) {
	f := newPrescreenFixture(t)

	f.createViaAPI(t, "Pertama")
	q2 := f.createViaAPI(t, "Kedua")

	resp := f.do(t, http.MethodDelete, "/questions/"+q2.PrescreenQuestionID.String(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	q3 := f.createViaAPI(t, "Ketiga")
	assert.Equal(t, 3, q3.PrescreenQuestionSortOrder)

	// dan pertanyaan terhapus benar-benar hilang dari pending
	out := f.pending(t, "ext1")
	for _, item := range out.Items {
		assert.NotEqual(t, q2.PrescreenQuestionID.String(), item.ID)
	}
}

func TestQuestionUpdate_ReplacesOptions(t *testing.T) {
	f := newPrescreenFixture(t)
	q := f.addQuestion(t, "Warna", prescreenModel.ControlRadio, 1, true, "Merah", "Biru")

	resp := f.do(t, http.MethodPut, "/questions/"+q.PrescreenQuestionID.String(), fiber.Map{
		"options": []fiber.Map{
			{"label": "Hijau", "value": "Hijau"},
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var opts []prescreenModel.PrescreenOptionModel
	require.NoError(t, f.db.Where("prescreen_option_question_id = ?", q.PrescreenQuestionID).Find(&opts).Error)
	require.Len(t, opts, 1)
	assert.Equal(t, "Hijau", opts[0].PrescreenOptionLabel)
}

func TestQuestionDelete_NotFound(t *testing.T) {
	f := newPrescreenFixture(t)
	resp := f.do(t, http.MethodDelete, "/questions/"+uuid.NewString(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
