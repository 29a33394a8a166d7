package model

import (
	"time"

	"github.com/google/uuid"
)

// RedirectResult: outcome yang disimpan di kolom result survey_redirects.
// JANGAN disamakan dengan EventOutcome — dua kosakata ini memang mirip tapi
// dipelihara terpisah (ejaan beda: OVERQUOTA vs OVER_QUOTA).
type RedirectResult string

const (
	ResultComplete    RedirectResult = "COMPLETE"
	ResultTerminate   RedirectResult = "TERMINATE"
	ResultOverQuota   RedirectResult = "OVERQUOTA"
	ResultQualityTerm RedirectResult = "QUALITYTERM"
	ResultClose       RedirectResult = "CLOSE"
)

// EventOutcome: outcome yang ditulis ke supplier_redirect_events dan dipakai
// sebagai status di halaman thanks.
type EventOutcome string

const (
	OutcomeComplete    EventOutcome = "COMPLETE"
	OutcomeTerminate   EventOutcome = "TERMINATE"
	OutcomeOverQuota   EventOutcome = "OVER_QUOTA"
	OutcomeQualityTerm EventOutcome = "QUALITY_TERM"
	OutcomeSurveyClose EventOutcome = "SURVEY_CLOSE"
)

// SurveyRedirectModel: satu baris per redirect keluar ke provider.
// Primary key = tracking id hasil helper.GenerateTrackingID (bukan serial!) —
// ini kunci korelasi yang dicari thanks-index waktu callback masuk.
type SurveyRedirectModel struct {
	SurveyRedirectID string `gorm:"column:survey_redirect_id;primaryKey;type:varchar(20)" json:"survey_redirect_id"`

	SurveyRedirectProjectID    uuid.UUID  `gorm:"column:survey_redirect_project_id;type:uuid;not null;index" json:"survey_redirect_project_id"`
	SurveyRedirectSupplierID   *uuid.UUID `gorm:"column:survey_redirect_supplier_id;type:uuid;index" json:"survey_redirect_supplier_id,omitempty"`
	SurveyRedirectRespondentID *uuid.UUID `gorm:"column:survey_redirect_respondent_id;type:uuid" json:"survey_redirect_respondent_id,omitempty"`

	// Identifier asli bawaan caller (?id=...) — dipakai fallback lookup legacy
	SurveyRedirectExternalID string `gorm:"column:survey_redirect_external_id;type:varchar(100);index" json:"survey_redirect_external_id"`

	SurveyRedirectDestinationURL string `gorm:"column:survey_redirect_destination_url;type:text;not null" json:"survey_redirect_destination_url"`

	// NULL sampai disposisi pertama masuk; duplikat callback = overwrite nilai sama
	SurveyRedirectResult *RedirectResult `gorm:"column:survey_redirect_result;type:varchar(20)" json:"survey_redirect_result,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SurveyRedirectModel) TableName() string {
	return "survey_redirects"
}
