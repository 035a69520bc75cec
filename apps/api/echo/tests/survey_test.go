package tests

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/trezcool/mdpdash/core/survey"
	emailsvc "github.com/trezcool/mdpdash/services/email"
	testutil "github.com/trezcool/mdpdash/tests"
)

func TestHome(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
	if want := "Welcome to the MDP Performance Dashboard API!"; rec.Body.String() != want {
		t.Errorf("failed! body = %q; want %q", rec.Body.String(), want)
	}
}

func TestHealth(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/health")
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
	var health map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("json.Unmarshal(): %v", err)
	}
	if health["status"] != "healthy" {
		t.Errorf("status = %v; want healthy", health["status"])
	}
	if health["version"] != conf.Build {
		t.Errorf("version = %v; want %v", health["version"], conf.Build)
	}
}

func submissionBody(t *testing.T, mutate func(body map[string]interface{})) []byte {
	body := map[string]interface{}{
		"mdpName":      "Jane Q. Public",
		"functionName": survey.FunctionPlanning,
		"manager":      "John Smith",
		"rotation":     2,
		"responses": map[string]int{
			"Q1": 5, "Q2": 5, "Q3": 5, "Q4": 5, "Q5": 5,
			"Q6": 5, "Q7": 5, "Q8": 5, "Q9": 5, "Q10": 5,
		},
	}
	if mutate != nil {
		mutate(body)
	}
	return marshalObj(t, body)
}

func storedCount(t *testing.T) int {
	t.Helper()
	resps, err := repo.QueryAllResponses()
	if err != nil {
		t.Fatalf("QueryAllResponses(): %v", err)
	}
	return len(resps)
}

func Test_surveyApi_create(t *testing.T) {
	resetStore(t)

	req, rec := newRequest(http.MethodPost, "/v1/survey-responses", submissionBody(t, nil))
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("failed! code = %v; wantCode %v; body = %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var res struct {
		Message   string  `json:"message"`
		ID        string  `json:"id"`
		Overall   float64 `json:"overall"`
		EmailSent string  `json:"emailSent"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("json.Unmarshal(): %v", err)
	}
	if res.Message != "Survey response saved successfully" {
		t.Errorf("message = %q", res.Message)
	}
	if res.ID == "" {
		t.Error("id is empty")
	}
	if res.Overall != 5 {
		t.Errorf("overall = %v; want 5", res.Overall)
	}
	if res.EmailSent != "" {
		t.Errorf("emailSent = %q; want empty (no copy requested)", res.EmailSent)
	}
	if n := storedCount(t); n != 1 {
		t.Errorf("stored responses = %d; want 1", n)
	}
	// program manager notification only
	if n := len(emailsvc.SentMessages); n != 1 {
		t.Fatalf("sent messages = %d; want 1", n)
	}
	if to := emailsvc.SentMessages[0].To[0].Address; to != conf.ProgramManagerEmail.Address {
		t.Errorf("notification sent to %q; want %q", to, conf.ProgramManagerEmail.Address)
	}
}

func Test_surveyApi_create_respondentCopy(t *testing.T) {
	resetStore(t)

	body := submissionBody(t, func(body map[string]interface{}) {
		body["emailResponse"] = true
		body["respondentEmail"] = "jane@test.cd"
	})
	req, rec := newRequest(http.MethodPost, "/v1/survey-responses", body)
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("failed! code = %v; wantCode %v; body = %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var res struct {
		EmailSent string `json:"emailSent"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("json.Unmarshal(): %v", err)
	}
	if want := "Copy will be sent to your email"; res.EmailSent != want {
		t.Errorf("emailSent = %q; want %q", res.EmailSent, want)
	}

	if n := len(emailsvc.SentMessages); n != 2 {
		t.Fatalf("sent messages = %d; want 2", n)
	}
	copyMsg := emailsvc.SentMessages[1]
	if to := copyMsg.To[0].Address; to != "jane@test.cd" {
		t.Errorf("copy sent to %q; want jane@test.cd", to)
	}
	if len(copyMsg.Attachments) != 1 {
		t.Errorf("copy attachments = %d; want 1", len(copyMsg.Attachments))
	}
	if copyMsg.HTMLContent == "" || copyMsg.TextContent == "" {
		t.Error("copy message was not fully rendered")
	}
}

func Test_surveyApi_create_invalid(t *testing.T) {
	resetStore(t)

	requiredText := "this field is required"
	tests := []httpTest{
		{
			name: "missing mdpName",
			body: submissionBody(t, func(body map[string]interface{}) { delete(body, "mdpName") }),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"mdpName": requiredText}),
		},
		{
			name: "missing rotation",
			body: submissionBody(t, func(body map[string]interface{}) { body["rotation"] = 0 }),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"rotation": requiredText}),
		},
		{
			name: "missing responses",
			body: submissionBody(t, func(body map[string]interface{}) { delete(body, "responses") }),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"responses": requiredText}),
		},
		{
			name: "invalid respondent email",
			body: submissionBody(t, func(body map[string]interface{}) { body["respondentEmail"] = "lol" }),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"respondentEmail": "respondentEmail must be a valid email address"}),
		},
		{
			name: "copy requested without an email",
			body: submissionBody(t, func(body map[string]interface{}) { body["emailResponse"] = true }),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"respondentEmail": "an email address is required to receive a copy of the submission"}),
		},
		{
			name:     "malformed JSON",
			body:     []byte("{lol"),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/survey-responses", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// nothing was persisted, nothing was sent
	if n := storedCount(t); n != 0 {
		t.Errorf("stored responses = %d; want 0", n)
	}
	if n := len(emailsvc.SentMessages); n != 0 {
		t.Errorf("sent messages = %d; want 0", n)
	}
}

func Test_surveyApi_query(t *testing.T) {
	resetStore(t)

	t.Run("empty collection", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/survey-responses")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte("[]")}, rec)
	})

	r1 := testutil.CreateResponse(t, repo, "Alice Smith", survey.FunctionPlanning, "Sarah Johnson", 1, testutil.Ratings(4))
	r2 := testutil.CreateResponse(t, repo, "Bob Jones", survey.FunctionDigitalMerch, "Tom King", 2, testutil.Ratings(5))

	t.Run("insertion order", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/survey-responses")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshalList(t, r1, r2)}, rec)
	})
}

func Test_surveyApi_export(t *testing.T) {
	resetStore(t)

	r1 := testutil.CreateResponse(t, repo, "Alice Smith", survey.FunctionPlanning, "Sarah Johnson", 1, testutil.Ratings(4))
	testutil.CreateResponse(t, repo, "Bob Jones", survey.FunctionDigitalMerch, "Tom King", 2, testutil.Ratings(5))

	parseCSV := func(t *testing.T, body string) [][]string {
		t.Helper()
		records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
		if err != nil {
			t.Fatalf("csv.ReadAll(): %v", err)
		}
		return records
	}

	t.Run("all", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/survey-responses/export")
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
			t.Errorf("Content-Type = %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "All_Survey_Responses_") {
			t.Errorf("Content-Disposition = %q; want an All_Survey_Responses filename", cd)
		}
		if records := parseCSV(t, rec.Body.String()); len(records) != 3 {
			t.Errorf("csv records = %d; want 3 (header + 2 rows)", len(records))
		}
	})

	t.Run("filtered", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/survey-responses/export?function=Planning")
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Filtered_Survey_Responses_") {
			t.Errorf("Content-Disposition = %q; want a Filtered_Survey_Responses filename", cd)
		}
		records := parseCSV(t, rec.Body.String())
		if len(records) != 2 {
			t.Fatalf("csv records = %d; want 2 (header + 1 row)", len(records))
		}
		if records[1][0] != "Alice S." {
			t.Errorf("exported name = %q; want the privacy-formatted %q", records[1][0], "Alice S.")
		}
	})

	t.Run("filtered no match", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/survey-responses/export?mdp=lol")
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("body = %q; want empty", rec.Body.String())
		}
	})

	t.Run("single record", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/survey-responses/export?id="+r1.ID)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Alice_S._Rotation_1_") {
			t.Errorf("Content-Disposition = %q; want an Alice_S._Rotation_1 filename", cd)
		}
		if records := parseCSV(t, rec.Body.String()); len(records) != 2 {
			t.Errorf("csv records = %d; want 2 (header + 1 row)", len(records))
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/survey-responses/export?id=lol")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Error: "not found"})}, rec)
	})
}

func Test_surveyApi_queryQuestions(t *testing.T) {
	t.Run("all tracks", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/questions")
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v", rec.Code)
		}
		var all map[string][]survey.QuestionDefinition
		if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if len(all) != len(survey.Functions) {
			t.Errorf("tracks = %d; want %d", len(all), len(survey.Functions))
		}
		for _, functionName := range survey.Functions {
			if len(all[functionName]) != len(survey.QuestionIDs) {
				t.Errorf("%s questions = %d; want %d", functionName, len(all[functionName]), len(survey.QuestionIDs))
			}
		}
	})

	t.Run("single track", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/questions?function=Planning")
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v", rec.Code)
		}
		var questions []survey.QuestionDefinition
		if err := json.Unmarshal(rec.Body.Bytes(), &questions); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if len(questions) != len(survey.QuestionIDs) {
			t.Fatalf("questions = %d; want %d", len(questions), len(survey.QuestionIDs))
		}
		if questions[0].ID != "Q1" {
			t.Errorf("first question = %s; want Q1", questions[0].ID)
		}
	})

	t.Run("unknown track", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/questions?function=lol")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Error: "not found"})}, rec)
	})
}
