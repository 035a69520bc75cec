package survey

import (
	"strconv"
	"strings"
	"time"
)

// CSV column order is fixed; dashboards and spreadsheets downstream rely on it.
var csvHeaders = []string{
	"MDP Name",
	"Function",
	"Manager",
	"Rotation",
	"Overall Score",
	"Job Knowledge",
	"Quality of Work",
	"Communication",
	"Initiative",
	"Submitted Date",
	"Q1", "Q2", "Q3", "Q4", "Q5", "Q6", "Q7", "Q8", "Q9", "Q10",
}

// GenerateCSV serializes records to CSV: a header row then one row per record,
// every field double-quoted, names privacy-formatted. An empty input yields an
// empty string.
func GenerateCSV(responses []SurveyResponse) string {
	if len(responses) == 0 {
		return ""
	}

	rows := make([]string, 0, len(responses)+1)
	rows = append(rows, quoteJoin(csvHeaders))
	for i := range responses {
		rows = append(rows, quoteJoin(csvRow(&responses[i])))
	}
	return strings.Join(rows, "\n")
}

func csvRow(resp *SurveyResponse) []string {
	fields := make([]string, 0, len(csvHeaders))
	fields = append(fields,
		FormatNamePrivate(resp.MDPName),
		resp.FunctionName,
		FormatNamePrivate(resp.Manager),
		strconv.Itoa(resp.Rotation),
		formatScore(resp.DisplayOverall()),
		formatScore(resp.JobKnowledge),
		formatScore(resp.QualityOfWork),
		formatScore(resp.Communication),
		formatScore(resp.Initiative),
		resp.SubmittedAt.UTC().Format(time.RFC3339),
	)
	for _, qid := range QuestionIDs {
		fields = append(fields, strconv.Itoa(resp.Responses[qid]))
	}
	return fields
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

// quoteJoin double-quotes every field unconditionally; embedded quotes are
// doubled so the output stays RFC 4180 parseable.
func quoteJoin(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// SingleExportFilename names a one-record export after the (privacy-formatted)
// participant, their rotation and the given date.
func SingleExportFilename(resp SurveyResponse, date time.Time) string {
	name := strings.ReplaceAll(FormatNamePrivate(resp.MDPName), " ", "_")
	return name + "_Rotation_" + strconv.Itoa(resp.Rotation) + "_" + date.Format("2006-01-02") + ".csv"
}

func AllExportFilename(date time.Time) string {
	return "All_Survey_Responses_" + date.Format("2006-01-02") + ".csv"
}

func FilteredExportFilename(date time.Time) string {
	return "Filtered_Survey_Responses_" + date.Format("2006-01-02") + ".csv"
}
