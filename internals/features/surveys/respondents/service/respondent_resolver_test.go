package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	respondentModel "surveyku_backend/internals/features/surveys/respondents/model"
	helper "surveyku_backend/internals/helpers"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&respondentModel.RespondentModel{}))
	return db
}

func TestResolveRespondent_CreateThenGet(t *testing.T) {
	db := newTestDB(t)
	projectID := uuid.New()

	r1, created, err := ResolveRespondent(db, projectID, "ext1", nil)
	require.NoError(t, err)
	require.NotNil(t, r1)
	assert.True(t, created)
	assert.Equal(t, "ext1", r1.RespondentExternalID)

	r2, created, err := ResolveRespondent(db, projectID, "ext1", nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, r1.RespondentID, r2.RespondentID)

	var count int64
	require.NoError(t, db.Model(&respondentModel.RespondentModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// supplier_id NULL adalah identitas tersendiri: ext1 tanpa supplier dan ext1
// dengan supplier S adalah dua respondent berbeda.
func TestResolveRespondent_NullSupplierDistinct(t *testing.T) {
	db := newTestDB(t)
	projectID := uuid.New()
	supplierID := uuid.New()

	noSup, _, err := ResolveRespondent(db, projectID, "ext1", nil)
	require.NoError(t, err)

	withSup, created, err := ResolveRespondent(db, projectID, "ext1", &supplierID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, noSup.RespondentID, withSup.RespondentID)

	// lookup ulang masing-masing jalur tetap menemukan barisnya sendiri
	again, _, err := ResolveRespondent(db, projectID, "ext1", nil)
	require.NoError(t, err)
	assert.Equal(t, noSup.RespondentID, again.RespondentID)

	again, _, err = ResolveRespondent(db, projectID, "ext1", &supplierID)
	require.NoError(t, err)
	assert.Equal(t, withSup.RespondentID, again.RespondentID)
}

func TestResolveRespondent_ProjectsIsolated(t *testing.T) {
	db := newTestDB(t)

	a, _, err := ResolveRespondent(db, uuid.New(), "ext1", nil)
	require.NoError(t, err)
	b, created, err := ResolveRespondent(db, uuid.New(), "ext1", nil)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, a.RespondentID, b.RespondentID)
}

// Insert langsung kunci (project, external, NULL supplier) dua kali harus
// kena unique violation — index parsial yang menjaga identitas tanpa-supplier.
// Tanpa itu fallback 23505 di ResolveRespondent tidak pernah terpicu untuk
// baris NULL dan respondent bisa dobel.
func TestRespondentNaturalKey_NullSupplierEnforced(t *testing.T) {
	db := newTestDB(t)
	projectID := uuid.New()

	first := respondentModel.RespondentModel{
		RespondentID:         uuid.New(),
		RespondentProjectID:  projectID,
		RespondentExternalID: "ext-null",
	}
	require.NoError(t, db.Create(&first).Error)

	dup := respondentModel.RespondentModel{
		RespondentID:         uuid.New(),
		RespondentProjectID:  projectID,
		RespondentExternalID: "ext-null",
	}
	err := db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, helper.IsUniqueViolation(err))

	var count int64
	require.NoError(t, db.Model(&respondentModel.RespondentModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// kontrol: kunci ber-supplier juga tetap dijaga index komposit
	supplierID := uuid.New()
	withSup := respondentModel.RespondentModel{
		RespondentID:         uuid.New(),
		RespondentProjectID:  projectID,
		RespondentExternalID: "ext-null",
		RespondentSupplierID: &supplierID,
	}
	require.NoError(t, db.Create(&withSup).Error)

	dupSup := respondentModel.RespondentModel{
		RespondentID:         uuid.New(),
		RespondentProjectID:  projectID,
		RespondentExternalID: "ext-null",
		RespondentSupplierID: &supplierID,
	}
	err = db.Create(&dupSup).Error
	require.Error(t, err)
	assert.True(t, helper.IsUniqueViolation(err))
}

func TestResolveRespondent_Concurrent(t *testing.T) {
	db := newTestDB(t)
	projectID := uuid.New()

	const workers = 8
	ids := make([]uuid.UUID, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, _, err := ResolveRespondent(db, projectID, "ext-race", nil)
			errs[i] = err
			if r != nil {
				ids[i] = r.RespondentID
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "worker %d", i)
		assert.Equal(t, ids[0], ids[i], "semua worker harus dapat baris yang sama")
	}

	var count int64
	require.NoError(t, db.Model(&respondentModel.RespondentModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsureRespondent_EmptyExternalID(t *testing.T) {
	db := newTestDB(t)
	assert.Nil(t, EnsureRespondent(db, uuid.New(), "", nil))

	var count int64
	require.NoError(t, db.Model(&respondentModel.RespondentModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
