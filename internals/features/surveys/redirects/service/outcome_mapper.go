package service

import (
	"strings"

	redirectModel "surveyku_backend/internals/features/surveys/redirects/model"
)

// MapAuthCode memetakan kode auth dari provider ke dua outcome kanonik:
// satu untuk kolom result survey_redirects, satu untuk event log.
// Input dinormalisasi (trim + lowercase). Kode angka adalah format lama
// provider — tetap diterima.
//
//	c  / 10 → COMPLETE    / COMPLETE
//	t  / 20 → TERMINATE   / TERMINATE
//	q  / 40 → OVERQUOTA   / OVER_QUOTA
//	f  / 30 → QUALITYTERM / QUALITY_TERM
//	sc / 70 → CLOSE       / SURVEY_CLOSE
//
// Selain itu ok=false — caller wajib menolak 400.
func MapAuthCode(auth string) (redirectModel.RedirectResult, redirectModel.EventOutcome, bool) {
	switch strings.ToLower(strings.TrimSpace(auth)) {
	case "c", "10":
		return redirectModel.ResultComplete, redirectModel.OutcomeComplete, true
	case "t", "20":
		return redirectModel.ResultTerminate, redirectModel.OutcomeTerminate, true
	case "q", "40":
		return redirectModel.ResultOverQuota, redirectModel.OutcomeOverQuota, true
	case "f", "30":
		return redirectModel.ResultQualityTerm, redirectModel.OutcomeQualityTerm, true
	case "sc", "70":
		return redirectModel.ResultClose, redirectModel.OutcomeSurveyClose, true
	default:
		return "", "", false
	}
}
