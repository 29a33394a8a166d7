package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	respondentModel "surveyku_backend/internals/features/surveys/respondents/model"
	helper "surveyku_backend/internals/helpers"
)

// ResolveRespondent: insert-or-get baris respondent untuk kunci natural
// (projectID, externalID, supplierID). supplierID nil artinya identitas
// "tanpa supplier" — predikat lookup-nya IS NULL, bukan wildcard.
//
// Aman dipanggil berbarengan: kalau dua request balapan insert kunci yang
// sama, yang kalah kena unique violation lalu fallback baca baris yang
// sudah ada. Kontrak: (row, created, err).
func ResolveRespondent(db *gorm.DB, projectID uuid.UUID, externalID string, supplierID *uuid.UUID) (*respondentModel.RespondentModel, bool, error) {
	if existing, err := findRespondent(db, projectID, externalID, supplierID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	row := respondentModel.RespondentModel{
		RespondentID:         uuid.New(),
		RespondentProjectID:  projectID,
		RespondentExternalID: externalID,
		RespondentSupplierID: supplierID,
	}
	if err := db.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// kalah balapan — baris sudah dibuat request lain
			existing, ferr := findRespondent(db, projectID, externalID, supplierID)
			if ferr != nil {
				return nil, false, ferr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return &row, true, nil
}

// EnsureRespondent: varian best-effort. Gagal hanya dicatat, tidak diteruskan —
// dipakai survey-live, di mana respondent yang hilang tidak boleh membatalkan
// redirect.
func EnsureRespondent(db *gorm.DB, projectID uuid.UUID, externalID string, supplierID *uuid.UUID) *respondentModel.RespondentModel {
	if externalID == "" {
		return nil
	}
	r, _, err := ResolveRespondent(db, projectID, externalID, supplierID)
	if err != nil {
		log.Println("[WARN] gagal memastikan respondent:", err)
		return nil
	}
	return r
}

func findRespondent(db *gorm.DB, projectID uuid.UUID, externalID string, supplierID *uuid.UUID) (*respondentModel.RespondentModel, error) {
	q := db.Where("respondent_project_id = ? AND respondent_external_id = ?", projectID, externalID)
	if supplierID == nil {
		q = q.Where("respondent_supplier_id IS NULL")
	} else {
		q = q.Where("respondent_supplier_id = ?", *supplierID)
	}

	var row respondentModel.RespondentModel
	if err := q.First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
