package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SupplierModel: panel supplier. Lima URL callback per outcome — template
// dengan token [identifier] yang diisi kode supplier saat disposisi.
type SupplierModel struct {
	SupplierID   uuid.UUID `gorm:"column:supplier_id;primaryKey;type:uuid" json:"supplier_id"`
	SupplierCode string    `gorm:"column:supplier_code;type:varchar(50);not null;uniqueIndex" json:"supplier_code"`
	SupplierName string    `gorm:"column:supplier_name;type:varchar(150);not null" json:"supplier_name"`

	SupplierCompleteURL    string `gorm:"column:supplier_complete_url;type:text" json:"supplier_complete_url"`
	SupplierTerminateURL   string `gorm:"column:supplier_terminate_url;type:text" json:"supplier_terminate_url"`
	SupplierOverQuotaURL   string `gorm:"column:supplier_over_quota_url;type:text" json:"supplier_over_quota_url"`
	SupplierQualityTermURL string `gorm:"column:supplier_quality_term_url;type:text" json:"supplier_quality_term_url"`
	SupplierSurveyCloseURL string `gorm:"column:supplier_survey_close_url;type:text" json:"supplier_survey_close_url"`

	// Daftar kode negara yang diizinkan, array JSON (mis. ["ID","MY"])
	SupplierCountries datatypes.JSON `gorm:"column:supplier_countries;type:jsonb;default:'[]'" json:"supplier_countries"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SupplierModel) TableName() string {
	return "suppliers"
}
