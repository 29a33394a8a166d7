package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipe kontrol pertanyaan prescreen
const (
	ControlText     = "TEXT"
	ControlRadio    = "RADIO"
	ControlCheckbox = "CHECKBOX"
	ControlDropdown = "DROPDOWN"
)

// Subtipe semantik untuk ControlText
const (
	TextTypeEmail  = "EMAIL"
	TextTypePhone  = "PHONE"
	TextTypeZip    = "ZIP"
	TextTypeCustom = "CUSTOM"
)

// PrescreenQuestionModel: pertanyaan prescreen per project, urut berdasarkan
// sort_order. sort_order monoton — pertanyaan baru selalu dapat nilai lebih
// besar dari semua yang pernah ada (termasuk yang sudah dihapus), tidak pernah
// dipadatkan ulang. Makanya pakai soft delete + max Unscoped.
type PrescreenQuestionModel struct {
	PrescreenQuestionID        uuid.UUID `gorm:"column:prescreen_question_id;primaryKey;type:uuid" json:"prescreen_question_id"`
	PrescreenQuestionProjectID uuid.UUID `gorm:"column:prescreen_question_project_id;type:uuid;not null;index:idx_prescreen_questions_project_order" json:"prescreen_question_project_id"`

	PrescreenQuestionTitle string `gorm:"column:prescreen_question_title;type:varchar(150);not null" json:"prescreen_question_title"`
	PrescreenQuestionText  string `gorm:"column:prescreen_question_text;type:text;not null" json:"prescreen_question_text"`

	PrescreenQuestionControlType string `gorm:"column:prescreen_question_control_type;type:varchar(10);not null" json:"prescreen_question_control_type"`

	// Hanya relevan untuk ControlText
	PrescreenQuestionTextMinLength int    `gorm:"column:prescreen_question_text_min_length;default:0" json:"prescreen_question_text_min_length"`
	PrescreenQuestionTextMaxLength int    `gorm:"column:prescreen_question_text_max_length;default:0" json:"prescreen_question_text_max_length"`
	PrescreenQuestionTextType      string `gorm:"column:prescreen_question_text_type;type:varchar(10)" json:"prescreen_question_text_type"`

	PrescreenQuestionSortOrder int  `gorm:"column:prescreen_question_sort_order;not null;index:idx_prescreen_questions_project_order" json:"prescreen_question_sort_order"`
	PrescreenQuestionActive    bool `gorm:"column:prescreen_question_active;not null;default:true" json:"prescreen_question_active"`

	Options []PrescreenOptionModel `gorm:"foreignKey:PrescreenOptionQuestionID;references:PrescreenQuestionID" json:"options,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (PrescreenQuestionModel) TableName() string {
	return "prescreen_questions"
}

// PrescreenOptionModel: pilihan untuk RADIO/CHECKBOX/DROPDOWN, urut per pertanyaan.
type PrescreenOptionModel struct {
	PrescreenOptionID         uuid.UUID `gorm:"column:prescreen_option_id;primaryKey;type:uuid" json:"prescreen_option_id"`
	PrescreenOptionQuestionID uuid.UUID `gorm:"column:prescreen_option_question_id;type:uuid;not null;index" json:"prescreen_option_question_id"`

	PrescreenOptionLabel string `gorm:"column:prescreen_option_label;type:varchar(150);not null" json:"prescreen_option_label"`
	PrescreenOptionValue string `gorm:"column:prescreen_option_value;type:varchar(100);not null" json:"prescreen_option_value"`

	PrescreenOptionEnabled  bool `gorm:"column:prescreen_option_enabled;not null;default:true" json:"prescreen_option_enabled"`
	PrescreenOptionValidate bool `gorm:"column:prescreen_option_validate;not null;default:false" json:"prescreen_option_validate"`
	PrescreenOptionQuota    bool `gorm:"column:prescreen_option_quota;not null;default:false" json:"prescreen_option_quota"`

	PrescreenOptionSortOrder int `gorm:"column:prescreen_option_sort_order;not null;default:0" json:"prescreen_option_sort_order"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PrescreenOptionModel) TableName() string {
	return "prescreen_options"
}
