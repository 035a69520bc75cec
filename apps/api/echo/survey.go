package echoapi

import (
	"fmt"
	"net/http"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mdpdash/core/survey"
)

type surveyApi struct {
	svc        *survey.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerSurveyAPI(g *echo.Group, deps ServerDeps) {
	api := surveyApi{
		svc:        deps.SurveySvc,
		validate:   deps.Validate,
		translator: deps.Translator,
	}

	sg := g.Group("/survey-responses")
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.GET("/export", api.export)

	g.GET("/questions", api.queryQuestions)
}

// Handlers

func (api *surveyApi) create(ctx echo.Context) error {
	var data survey.NewSurveyResponse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSurveyResponse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	resp, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating survey response")
	}

	res := SubmissionResponse{
		Message: "Survey response saved successfully",
		ID:      resp.ID,
		Overall: resp.Overall,
	}
	if resp.EmailResponse && resp.RespondentEmail != "" {
		res.EmailSent = "Copy will be sent to your email"
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (api *surveyApi) query(ctx echo.Context) error {
	resps, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying survey responses")
	}
	if resps == nil {
		resps = []survey.SurveyResponse{}
	}
	return ctx.JSON(http.StatusOK, resps)
}

// export streams the CSV rendition of the collection; filter params narrow it
// and an `id` param exports a single record.
func (api *surveyApi) export(ctx echo.Context) error {
	if id := ctx.QueryParam("id"); id != "" {
		resp, err := api.svc.GetByID(id)
		if err != nil {
			if errors.Cause(err) == survey.ErrNotFound {
				return errHttpNotFound
			}
			return errors.Wrap(err, "finding survey response by ID")
		}
		content := survey.GenerateCSV([]survey.SurveyResponse{resp})
		return writeCSV(ctx, content, survey.SingleExportFilename(resp, time.Now()))
	}

	filter := new(survey.Filter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to Filter")
	}

	resps, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying survey responses")
	}
	report := survey.NewReport(resps)
	report.SetFilter(*filter)

	filename := survey.AllExportFilename(time.Now())
	if !filter.IsEmpty() {
		filename = survey.FilteredExportFilename(time.Now())
	}
	return writeCSV(ctx, survey.GenerateCSV(report.Filtered()), filename)
}

func (api *surveyApi) queryQuestions(ctx echo.Context) error {
	if functionName := ctx.QueryParam("function"); functionName != "" {
		questions := survey.QuestionSet(functionName)
		if questions == nil {
			return errHttpNotFound
		}
		return ctx.JSON(http.StatusOK, questions)
	}

	all := make(map[string][]survey.QuestionDefinition, len(survey.Functions))
	for _, functionName := range survey.Functions {
		all[functionName] = survey.QuestionSet(functionName)
	}
	return ctx.JSON(http.StatusOK, all)
}

func writeCSV(ctx echo.Context, content, filename string) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

type SubmissionResponse struct {
	Message string  `json:"message"`
	ID      string  `json:"id"`
	Overall float64 `json:"overall"`
	// message shown when the submitter requested a copy; empty otherwise
	EmailSent string `json:"emailSent,omitempty"`
}
