package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PrescreenAnswerModel: satu baris per (respondent, question). Jawaban teks
// masuk text_value, jawaban pilihan (termasuk multi-select) masuk values
// sebagai array JSON. Submit ulang = overwrite, tidak ada riwayat.
type PrescreenAnswerModel struct {
	PrescreenAnswerID           uuid.UUID `gorm:"column:prescreen_answer_id;primaryKey;type:uuid" json:"prescreen_answer_id"`
	PrescreenAnswerRespondentID uuid.UUID `gorm:"column:prescreen_answer_respondent_id;type:uuid;not null;uniqueIndex:uk_prescreen_answers_respondent_question" json:"prescreen_answer_respondent_id"`
	PrescreenAnswerQuestionID   uuid.UUID `gorm:"column:prescreen_answer_question_id;type:uuid;not null;uniqueIndex:uk_prescreen_answers_respondent_question" json:"prescreen_answer_question_id"`

	PrescreenAnswerTextValue string         `gorm:"column:prescreen_answer_text_value;type:text" json:"prescreen_answer_text_value"`
	PrescreenAnswerValues    datatypes.JSON `gorm:"column:prescreen_answer_values;type:jsonb" json:"prescreen_answer_values,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PrescreenAnswerModel) TableName() string {
	return "prescreen_answers"
}
