package dto

import (
	"encoding/json"
	"errors"

	prescreenModel "surveyku_backend/internals/features/surveys/prescreens/model"
)

/* ===============================
   Pending questions (public)
=================================*/

// Field JSON camelCase — ini kontrak client script, bukan envelope admin.
type PendingQuestionItem struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Question      string              `json:"question"`
	ControlType   string              `json:"controlType"`
	TextMinLength int                 `json:"textMinLength"`
	TextMaxLength int                 `json:"textMaxLength"`
	TextType      string              `json:"textType"`
	Options       []PendingOptionItem `json:"options"`
}

type PendingOptionItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func NewPendingQuestionItem(q *prescreenModel.PrescreenQuestionModel) PendingQuestionItem {
	item := PendingQuestionItem{
		ID:            q.PrescreenQuestionID.String(),
		Title:         q.PrescreenQuestionTitle,
		Question:      q.PrescreenQuestionText,
		ControlType:   q.PrescreenQuestionControlType,
		TextMinLength: q.PrescreenQuestionTextMinLength,
		TextMaxLength: q.PrescreenQuestionTextMaxLength,
		TextType:      q.PrescreenQuestionTextType,
		Options:       make([]PendingOptionItem, 0, len(q.Options)),
	}
	for _, o := range q.Options {
		item.Options = append(item.Options, PendingOptionItem{
			ID:    o.PrescreenOptionID.String(),
			Label: o.PrescreenOptionLabel,
			Value: o.PrescreenOptionValue,
		})
	}
	return item
}

/* ===============================
   Submit answers (public)
=================================*/

type SubmitAnswersRequest struct {
	SupplierID string        `json:"supplierId"`
	Answers    []AnswerInput `json:"answers" validate:"required,min=1,dive"`
}

type AnswerInput struct {
	QuestionID string      `json:"questionId" validate:"required,uuid"`
	Value      AnswerValue `json:"value"`
}

// AnswerValue menerima string ATAU array string (jawaban teks vs multi-select).
type AnswerValue struct {
	Text   string
	List   []string
	IsList bool
}

func (v *AnswerValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v.Text = s
		v.IsList = false
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		v.List = list
		v.IsList = true
		return nil
	}
	return errors.New("value harus string atau array string")
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.IsList {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}

/* ===============================
   Admin CRUD
=================================*/

type QuestionOptionRequest struct {
	Label     string `json:"label" validate:"required,max=150"`
	Value     string `json:"value" validate:"required,max=100"`
	Enabled   *bool  `json:"enabled"`
	Validate  bool   `json:"validate"`
	Quota     bool   `json:"quota"`
	SortOrder int    `json:"sort_order"`
}

type QuestionCreateRequest struct {
	Title         string                  `json:"title" validate:"required,max=150"`
	Question      string                  `json:"question" validate:"required"`
	ControlType   string                  `json:"control_type" validate:"required,oneof=TEXT RADIO CHECKBOX DROPDOWN"`
	TextMinLength int                     `json:"text_min_length" validate:"gte=0"`
	TextMaxLength int                     `json:"text_max_length" validate:"gte=0"`
	TextType      string                  `json:"text_type" validate:"omitempty,oneof=EMAIL PHONE ZIP CUSTOM"`
	Active        *bool                   `json:"active"`
	Options       []QuestionOptionRequest `json:"options" validate:"dive"`
}

type QuestionUpdateRequest struct {
	Title         *string                 `json:"title" validate:"omitempty,max=150"`
	Question      *string                 `json:"question"`
	ControlType   *string                 `json:"control_type" validate:"omitempty,oneof=TEXT RADIO CHECKBOX DROPDOWN"`
	TextMinLength *int                    `json:"text_min_length" validate:"omitempty,gte=0"`
	TextMaxLength *int                    `json:"text_max_length" validate:"omitempty,gte=0"`
	TextType      *string                 `json:"text_type" validate:"omitempty,oneof=EMAIL PHONE ZIP CUSTOM"`
	Active        *bool                   `json:"active"`
	Options       []QuestionOptionRequest `json:"options" validate:"omitempty,dive"`
}
