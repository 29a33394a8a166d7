package model

import (
	"time"

	"github.com/google/uuid"
)

// RespondentModel: satu pengisi survey eksternal dalam satu project.
// Kunci natural = (project_id, external_id, supplier_id); supplier_id NULL
// adalah identitas tersendiri, bukan wildcard. Dibuat lazy oleh pipeline,
// tidak pernah dihapus.
//
// Dua index unik: uk_respondents_natural untuk baris ber-supplier, plus index
// parsial uk_respondents_no_supplier — NULL dianggap distinct oleh Postgres,
// jadi tanpa index parsial dua insert balapan (project, external, NULL)
// dua-duanya lolos dan baris respondent dobel.
type RespondentModel struct {
	RespondentID         uuid.UUID  `gorm:"column:respondent_id;primaryKey;type:uuid" json:"respondent_id"`
	RespondentProjectID  uuid.UUID  `gorm:"column:respondent_project_id;type:uuid;not null;uniqueIndex:uk_respondents_natural;uniqueIndex:uk_respondents_no_supplier,where:respondent_supplier_id IS NULL" json:"respondent_project_id"`
	RespondentExternalID string     `gorm:"column:respondent_external_id;type:varchar(100);not null;uniqueIndex:uk_respondents_natural;uniqueIndex:uk_respondents_no_supplier,where:respondent_supplier_id IS NULL;index" json:"respondent_external_id"`
	RespondentSupplierID *uuid.UUID `gorm:"column:respondent_supplier_id;type:uuid;uniqueIndex:uk_respondents_natural" json:"respondent_supplier_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RespondentModel) TableName() string {
	return "respondents"
}
