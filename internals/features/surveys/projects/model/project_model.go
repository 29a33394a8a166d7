package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectModel: project survey. Dikelola admin; pipeline hanya baca.
type ProjectModel struct {
	ProjectID   uuid.UUID `gorm:"column:project_id;primaryKey;type:uuid" json:"project_id"`
	ProjectCode string    `gorm:"column:project_code;type:varchar(50);not null;uniqueIndex" json:"project_code"`
	ProjectName string    `gorm:"column:project_name;type:varchar(150);not null" json:"project_name"`

	// Template URL provider, boleh mengandung token [identifier]/[projectId]/[supplierId]
	ProjectSurveyURLLive string `gorm:"column:project_survey_url_live;type:text" json:"project_survey_url_live"`
	ProjectSurveyURLTest string `gorm:"column:project_survey_url_test;type:text" json:"project_survey_url_test"`

	// Kalau true, respondent harus lewat prescreen dulu sebelum survey-live
	ProjectPrescreen bool `gorm:"column:project_prescreen;not null;default:false" json:"project_prescreen"`

	ProjectSupplierID *uuid.UUID `gorm:"column:project_supplier_id;type:uuid;index" json:"project_supplier_id,omitempty"`
	ProjectCountry    string     `gorm:"column:project_country;type:varchar(5)" json:"project_country"`
	ProjectLanguage   string     `gorm:"column:project_language;type:varchar(5)" json:"project_language"`
	ProjectCPI        float64    `gorm:"column:project_cpi;type:numeric(10,2);default:0" json:"project_cpi"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProjectModel) TableName() string {
	return "projects"
}
