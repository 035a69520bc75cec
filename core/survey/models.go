package survey

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mdpdash/core"
)

// Program tracks ("functions") an MDP can rotate through.
const (
	FunctionPlanning      = "Planning"
	FunctionDigitalMerch  = "Digital Merch"
	FunctionReplenishment = "Replenishment"
	FunctionMembersMark   = "Member's Mark"
)

var Functions = []string{FunctionPlanning, FunctionDigitalMerch, FunctionReplenishment, FunctionMembersMark}

// Scores holds the four weighted category averages and the overall composite,
// all rounded to 2 decimal places. They are computed once at submission time
// and persisted with the response.
type Scores struct {
	JobKnowledge  float64 `json:"jobKnowledge"`
	QualityOfWork float64 `json:"qualityOfWork"`
	Communication float64 `json:"communication"`
	Initiative    float64 `json:"initiative"`
	Overall       float64 `json:"overall"`
}

// SurveyResponse is a single submitted performance evaluation.
// Records are append-only: once written they are never mutated or deleted.
type SurveyResponse struct {
	ID           string         `json:"id"`
	MDPName      string         `json:"mdpName"`
	FunctionName string         `json:"functionName"`
	Manager      string         `json:"manager"`
	Rotation     int            `json:"rotation"`
	Responses    map[string]int `json:"responses"` // question id (Q1..Q10) -> rating in [1,5]
	Scores
	SubmittedAt     time.Time `json:"submittedAt"` // UTC
	EmailResponse   bool      `json:"emailResponse"`
	RespondentEmail string    `json:"respondentEmail,omitempty"`
}

// DisplayOverall returns the stored overall score, falling back to an on-the-fly
// recomputation for legacy records persisted without derived scores.
func (r *SurveyResponse) DisplayOverall() float64 {
	if r.Overall != 0 {
		return r.Overall
	}
	return FallbackOverall(r.Responses)
}

// NewSurveyResponse contains information needed to submit a new SurveyResponse.
type NewSurveyResponse struct {
	MDPName         string         `json:"mdpName" validate:"required"`
	FunctionName    string         `json:"functionName" validate:"required"`
	Manager         string         `json:"manager" validate:"required"`
	Rotation        int            `json:"rotation" validate:"required"`
	Responses       map[string]int `json:"responses" validate:"required"`
	EmailResponse   bool           `json:"emailResponse"`
	RespondentEmail string         `json:"respondentEmail" validate:"omitempty,email"`
}

func (ns *NewSurveyResponse) Validate(validate *validator.Validate) error {
	ns.MDPName = core.CleanString(ns.MDPName)
	ns.FunctionName = core.CleanString(ns.FunctionName)
	ns.Manager = core.CleanString(ns.Manager)
	ns.RespondentEmail = core.CleanString(ns.RespondentEmail, true /* lower */)
	return validate.Struct(ns)
}

var (
	respondentEmailTag  = "respondent_email"
	respondentEmailText = "an email address is required to receive a copy of the submission"
)

// InitValidators registers survey-specific validations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(newSurveyResponseStructValidation, NewSurveyResponse{})
	core.RegisterCustomTranslation(validate, translator, respondentEmailTag, respondentEmailText)
}

// respondentEmail is only required when the submitter asked for a copy.
func newSurveyResponseStructValidation(sl validator.StructLevel) {
	ns := sl.Current().Interface().(NewSurveyResponse)
	if ns.EmailResponse && ns.RespondentEmail == "" {
		sl.ReportError(ns.RespondentEmail, "respondentEmail", "RespondentEmail", respondentEmailTag, "")
	}
}
