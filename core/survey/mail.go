package survey

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/trezcool/mdpdash/core"
)

var notificationTemplate = "survey-notification"

type (
	questionRating struct {
		ID     string
		Rating int
	}

	// notificationData feeds the single survey-notification template; the
	// RespondentCopy flag switches the copy between the program-manager
	// notification and the submitter's own copy.
	notificationData struct {
		RespondentCopy bool
		MDPName        string // privacy-formatted
		FunctionName   string
		Manager        string // privacy-formatted
		Rotation       int
		Scores         Scores
		SubmittedAt    string
		Ratings        []questionRating
	}
)

// sendNotifications dispatches the program-manager notification and, when
// requested, the submitter's copy. Both are best-effort: the email service
// sends concurrently and reports failures to its logger only.
func (svc *Service) sendNotifications(resp SurveyResponse) {
	msgs := make([]*core.EmailMessage, 0, 2)

	if svc.conf.ProgramManagerEmail.Address != "" {
		msgs = append(msgs, svc.notificationMessage(resp, svc.conf.ProgramManagerEmail, false))
	}

	if resp.EmailResponse && resp.RespondentEmail != "" {
		msg := svc.notificationMessage(resp, mail.Address{Address: resp.RespondentEmail}, true)
		svc.attachResponseCopy(msg, resp)
		msgs = append(msgs, msg)
	}

	if len(msgs) > 0 {
		svc.mailSvc.SendMessages(msgs...)
	}
}

func (svc *Service) notificationMessage(resp SurveyResponse, to mail.Address, respondentCopy bool) *core.EmailMessage {
	mdpName := FormatNamePrivate(resp.MDPName)

	subject := fmt.Sprintf("New MDP Performance Evaluation - %s", mdpName)
	if respondentCopy {
		subject = fmt.Sprintf("Your MDP Evaluation Submission - %s", mdpName)
	}

	ratings := make([]questionRating, 0, len(QuestionIDs))
	for _, qid := range QuestionIDs {
		if rating, ok := resp.Responses[qid]; ok {
			ratings = append(ratings, questionRating{ID: qid, Rating: rating})
		}
	}

	return &core.EmailMessage{
		To:           []mail.Address{to},
		Subject:      subject,
		TemplateName: notificationTemplate,
		TemplateData: notificationData{
			RespondentCopy: respondentCopy,
			MDPName:        mdpName,
			FunctionName:   resp.FunctionName,
			Manager:        FormatNamePrivate(resp.Manager),
			Rotation:       resp.Rotation,
			Scores:         resp.Scores,
			SubmittedAt:    resp.SubmittedAt.Format(time.RFC1123),
			Ratings:        ratings,
		},
	}
}

// attachResponseCopy attaches the submitter's own record as CSV.
func (svc *Service) attachResponseCopy(msg *core.EmailMessage, resp SurveyResponse) {
	content := GenerateCSV([]SurveyResponse{resp})
	filename := SingleExportFilename(resp, resp.SubmittedAt)
	if err := msg.Attach(strings.NewReader(content), filename, "text/csv"); err != nil {
		svc.logger.Warn(fmt.Sprintf("attaching response copy: %v", err), err)
	}
}
