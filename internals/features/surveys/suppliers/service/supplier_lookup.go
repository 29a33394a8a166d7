package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redirectModel "surveyku_backend/internals/features/surveys/redirects/model"
	supplierModel "surveyku_backend/internals/features/surveys/suppliers/model"
)

// FindSupplierByKey: dual lookup id-atau-code, kembaran FindProjectByKey.
func FindSupplierByKey(ctx context.Context, db *gorm.DB, key string) (*supplierModel.SupplierModel, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var s supplierModel.SupplierModel
	if id, err := uuid.Parse(key); err == nil {
		err := db.WithContext(ctx).First(&s, "supplier_id = ?", id).Error
		if err == nil {
			return &s, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := db.WithContext(ctx).First(&s, "supplier_code = ?", key).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// OutcomeURL memilih template bounce supplier sesuai result disposisi.
// String kosong = supplier tidak pasang URL untuk outcome itu (valid, bukan error).
func OutcomeURL(s *supplierModel.SupplierModel, result redirectModel.RedirectResult) string {
	switch result {
	case redirectModel.ResultComplete:
		return s.SupplierCompleteURL
	case redirectModel.ResultTerminate:
		return s.SupplierTerminateURL
	case redirectModel.ResultOverQuota:
		return s.SupplierOverQuotaURL
	case redirectModel.ResultQualityTerm:
		return s.SupplierQualityTermURL
	case redirectModel.ResultClose:
		return s.SupplierSurveyCloseURL
	default:
		return ""
	}
}
