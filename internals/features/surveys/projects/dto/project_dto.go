package dto

type ProjectCreateRequest struct {
	Code string `json:"code" validate:"required,max=50"`
	Name string `json:"name" validate:"required,max=150"`

	SurveyURLLive string `json:"survey_url_live" validate:"omitempty"`
	SurveyURLTest string `json:"survey_url_test" validate:"omitempty"`

	Prescreen  bool    `json:"prescreen"`
	SupplierID string  `json:"supplier_id" validate:"omitempty,uuid"`
	Country    string  `json:"country" validate:"omitempty,max=5"`
	Language   string  `json:"language" validate:"omitempty,max=5"`
	CPI        float64 `json:"cpi" validate:"gte=0"`
}

type ProjectUpdateRequest struct {
	Code *string `json:"code" validate:"omitempty,max=50"`
	Name *string `json:"name" validate:"omitempty,max=150"`

	SurveyURLLive *string `json:"survey_url_live"`
	SurveyURLTest *string `json:"survey_url_test"`

	Prescreen  *bool    `json:"prescreen"`
	SupplierID *string  `json:"supplier_id" validate:"omitempty,uuid"`
	Country    *string  `json:"country" validate:"omitempty,max=5"`
	Language   *string  `json:"language" validate:"omitempty,max=5"`
	CPI        *float64 `json:"cpi" validate:"omitempty,gte=0"`
}
