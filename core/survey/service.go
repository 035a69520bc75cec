package survey

import (
	"errors"
	"strconv"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/mdpdash/core"
)

var (
	// errors
	ErrNotFound = errors.New("survey response not found")
)

type (
	// Repository persists the append-only survey response collection.
	Repository interface {
		// QueryAllResponses returns all responses in insertion order.
		// An unreadable or corrupt backing file degrades to an empty slice.
		QueryAllResponses() ([]SurveyResponse, error)
		AppendResponse(resp SurveyResponse) error
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
		logger  core.Logger
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config, logger core.Logger) *Service {
	return &Service{
		repo:    repo,
		mailSvc: mailSvc,
		conf:    conf,
		logger:  logger,
	}
}

// Create assigns an id and submission time to a validated submission, computes
// its scores, persists it and dispatches notifications. Notification dispatch
// is fire-and-forget: its outcome never changes the result of the submission.
func (svc *Service) Create(ns NewSurveyResponse) (SurveyResponse, error) {
	now := time.Now().UTC()
	resp := SurveyResponse{
		ID:              strconv.FormatInt(now.UnixNano()/int64(time.Millisecond), 10),
		MDPName:         ns.MDPName,
		FunctionName:    ns.FunctionName,
		Manager:         ns.Manager,
		Rotation:        ns.Rotation,
		Responses:       ns.Responses,
		Scores:          CalculateScores(ns.Responses),
		SubmittedAt:     now,
		EmailResponse:   ns.EmailResponse,
		RespondentEmail: ns.RespondentEmail,
	}

	if err := svc.repo.AppendResponse(resp); err != nil {
		return SurveyResponse{}, pkgerrors.Wrap(err, "appending survey response")
	}

	svc.sendNotifications(resp)
	return resp, nil
}

func (svc *Service) QueryAll() ([]SurveyResponse, error) {
	return svc.repo.QueryAllResponses()
}

func (svc *Service) GetByID(id string) (SurveyResponse, error) {
	resps, err := svc.repo.QueryAllResponses()
	if err != nil {
		return SurveyResponse{}, err
	}
	for _, resp := range resps {
		if resp.ID == id {
			return resp, nil
		}
	}
	return SurveyResponse{}, ErrNotFound
}
