package survey

import "math"

// Assessment area groupings. Question ids missing from a response count as 0
// and the declared group size stays the denominator; incomplete submissions
// therefore score lower rather than being averaged over fewer questions.
// Historical scores depend on this, do not "fix" it.
var (
	jobKnowledgeQuestions  = []string{"Q1", "Q2", "Q3", "Q4", "Q5"}
	qualityOfWorkQuestions = []string{"Q6", "Q7"}
	communicationQuestions = []string{"Q8", "Q9"}
	initiativeQuestions    = []string{"Q10"}

	// QuestionIDs is the full ordered question id set.
	QuestionIDs = []string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q6", "Q7", "Q8", "Q9", "Q10"}
)

// Overall score weights per assessment area.
const (
	jobKnowledgeWeight  = 0.50
	qualityOfWorkWeight = 0.20
	communicationWeight = 0.15
	initiativeWeight    = 0.15
)

// CalculateScores maps per-question ratings to the four category averages and
// the weighted overall score, each rounded to 2 decimal places. Out-of-range
// ratings are included as-is; an empty map yields all-zero scores.
func CalculateScores(responses map[string]int) Scores {
	jobKnowledge := groupAverage(responses, jobKnowledgeQuestions)
	qualityOfWork := groupAverage(responses, qualityOfWorkQuestions)
	communication := groupAverage(responses, communicationQuestions)
	initiative := groupAverage(responses, initiativeQuestions)

	overall := jobKnowledge*jobKnowledgeWeight +
		qualityOfWork*qualityOfWorkWeight +
		communication*communicationWeight +
		initiative*initiativeWeight

	return Scores{
		JobKnowledge:  Round2(jobKnowledge),
		QualityOfWork: Round2(qualityOfWork),
		Communication: Round2(communication),
		Initiative:    Round2(initiative),
		Overall:       Round2(overall),
	}
}

func groupAverage(responses map[string]int, questions []string) float64 {
	var sum int
	for _, q := range questions {
		sum += responses[q]
	}
	return float64(sum) / float64(len(questions))
}

// FallbackOverall recomputes an overall score for legacy records persisted
// without derived scores: the plain mean of the strictly positive ratings,
// 0 when there are none.
func FallbackOverall(responses map[string]int) float64 {
	var sum, n int
	for _, rating := range responses {
		if rating > 0 {
			sum += rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
