package dto

type SupplierCreateRequest struct {
	Code string `json:"code" validate:"required,max=50"`
	Name string `json:"name" validate:"required,max=150"`

	CompleteURL    string `json:"complete_url"`
	TerminateURL   string `json:"terminate_url"`
	OverQuotaURL   string `json:"over_quota_url"`
	QualityTermURL string `json:"quality_term_url"`
	SurveyCloseURL string `json:"survey_close_url"`

	Countries []string `json:"countries" validate:"omitempty,dive,len=2"`
}

type SupplierUpdateRequest struct {
	Code *string `json:"code" validate:"omitempty,max=50"`
	Name *string `json:"name" validate:"omitempty,max=150"`

	CompleteURL    *string `json:"complete_url"`
	TerminateURL   *string `json:"terminate_url"`
	OverQuotaURL   *string `json:"over_quota_url"`
	QualityTermURL *string `json:"quality_term_url"`
	SurveyCloseURL *string `json:"survey_close_url"`

	Countries []string `json:"countries" validate:"omitempty,dive,len=2"`
}
