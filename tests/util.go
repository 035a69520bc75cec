package testutil

import (
	"net/mail"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/trezcool/mdpdash/core"
	"github.com/trezcool/mdpdash/core/survey"
)

// NewConfig returns a test configuration backed by the given data file.
func NewConfig(dataFile string) *core.Config {
	conf := &core.Config{
		Env:              "TEST",
		TestMode:         true,
		AppName:          "MDP Dashboard",
		Build:            "test",
		WorkDir:          core.Getwd(),
		DataFile:         dataFile,
		DefaultFromEmail: mail.Address{Name: "MDP Dashboard", Address: "noreply@test.cd"},
		DashboardURL:     "http://localhost:8000",
	}
	return conf
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func NewLogger() core.Logger { return nopLogger{} }

var respCounter int64

// CreateResponse builds a response from the given ratings and persists it.
func CreateResponse(
	t *testing.T,
	repo survey.Repository,
	mdpName, functionName, manager string,
	rotation int,
	ratings map[string]int,
	submittedAt ...time.Time,
) survey.SurveyResponse {
	tstamp := time.Now().UTC()
	if len(submittedAt) > 0 {
		tstamp = submittedAt[0].UTC()
	}
	resp := survey.SurveyResponse{
		ID:           strconv.FormatInt(atomic.AddInt64(&respCounter, 1)+tstamp.UnixNano()/int64(time.Millisecond), 10),
		MDPName:      mdpName,
		FunctionName: functionName,
		Manager:      manager,
		Rotation:     rotation,
		Responses:    ratings,
		Scores:       survey.CalculateScores(ratings),
		SubmittedAt:  tstamp,
	}
	if err := repo.AppendResponse(resp); err != nil {
		t.Fatalf("CreateResponse() failed: %v", err)
	}
	return resp
}

// Ratings returns a full Q1..Q10 rating set with the same value everywhere.
func Ratings(rating int) map[string]int {
	ratings := make(map[string]int, len(survey.QuestionIDs))
	for _, qid := range survey.QuestionIDs {
		ratings[qid] = rating
	}
	return ratings
}
