package survey

// QuestionDefinition is static reference data used to render human-readable
// question text in detail views; it has no bearing on scoring.
type QuestionDefinition struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Area string `json:"area"`
}

// Assessment area labels.
const (
	areaJobKnowledge  = "Job Knowledge"
	areaQualityOfWork = "Quality of Work"
	areaCommunication = "Communication Skills & Teamwork"
	areaInitiative    = "Initiative & Productivity"
)

// Q5..Q10 are shared across all tracks; only Q1..Q4 are function-specific.
var commonQuestions = []QuestionDefinition{
	{ID: "Q5", Text: "MDP produced high-quality deliverables that reflected strong attention to detail and accuracy.", Area: areaQualityOfWork},
	{ID: "Q6", Text: "MDP demonstrated problem-solving skills in their work, contributing meaningful insights or improvements to the team or their project.", Area: areaQualityOfWork},
	{ID: "Q7", Text: "MDP communicated clearly and effectively with team, stakeholders, and cross-functional partners throughout the rotation.", Area: areaCommunication},
	{ID: "Q8", Text: "MDP demonstrated strong collaboration skills and contributed positively to team dynamics.", Area: areaCommunication},
	{ID: "Q9", Text: "MDP consistently demonstrated initiative by proactively identifying opportunities, asking thoughtful questions, and seeking out ways to add value during the rotation.", Area: areaInitiative},
	{ID: "Q10", Text: "MDP maintained a high level of productivity while also effectively managing their time and responsibilities.", Area: areaInitiative},
}

var questionsByFunction = map[string][]QuestionDefinition{
	FunctionPlanning: withCommonQuestions(
		QuestionDefinition{ID: "Q1", Text: "MDP can effectively explain their category's P&L and tell a compelling business story through it.", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q2", Text: "To what extent does the participant demonstrate fluency in retail math and independently access key financial metrics?", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q3", Text: "MDP can navigate and apply financial planning tools (e.g., PBC, ISB Forecasting, AOP, One-Time-Buy).", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q4", Text: "MDP can understand and articulate the financial impact of decisions on their category, including budget and JBP alignment.", Area: areaJobKnowledge},
	),
	FunctionDigitalMerch: withCommonQuestions(
		QuestionDefinition{ID: "Q1", Text: "MDP demonstrated a clear understanding of the HAVE + FIND + LOVE + BUY framework and how it supports the digital purchase funnel at Sam's Club.", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q2", Text: "MDP can articulate how Digital Merchandising's strategy aligns with the broader Sam's Club strategy, particularly in accelerating the omni member experience.", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q3", Text: "MDP understands and can articulate how images and content impact SEO in Google.", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q4", Text: "MDP has a solid understanding of how items come to life on samsclub.com, from creation to discovery, checkout, and delivery.", Area: areaJobKnowledge},
	),
	FunctionReplenishment: withCommonQuestions(
		QuestionDefinition{ID: "Q1", Text: "MDP demonstrates confidence in using dashboards and reporting tools across replenishment systems to identify demand accuracy and support decision-making.", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q2", Text: "MDP understands the importance of item creation and maintenance accuracy, and recognizes how errors in this process can impact club operations.", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q3", Text: "MDP applies strategies to improve forecast accuracy and shows an understanding of how demand planning decisions drive seasonal and short-term sell-through.", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q4", Text: "MDP demonstrates an understanding of the importance of collaboration between merchants and replenishment teams in strengthening inventory allocation and supporting club performance.", Area: areaJobKnowledge},
	),
	FunctionMembersMark: withCommonQuestions(
		QuestionDefinition{ID: "Q1", Text: "MDP demonstrates a clear understanding of the Member's Mark ambition and strategy, and can articulate how it connects to the broader Sam's Club strategy.", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q2", Text: "MDP demonstrated a strong understanding of the Member's Mark creative guidelines and contributed to delivering a consistent member experience through packaging and design.", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q3", Text: "MDP effectively engaged with member research and sensory testing processes, showing a clear understanding of how member insights inform product development.", Area: areaJobKnowledge},
		QuestionDefinition{ID: "Q4", Text: "MDP showed a solid grasp of cross-functional collaboration, including quality, sourcing, and brand line management, and how these functions align to support the Member's Mark strategy.", Area: areaJobKnowledge},
	),
}

func withCommonQuestions(specific ...QuestionDefinition) []QuestionDefinition {
	return append(specific, commonQuestions...)
}

// QuestionSet returns the question definitions for a program track,
// or nil for an unknown one.
func QuestionSet(functionName string) []QuestionDefinition {
	return questionsByFunction[functionName]
}
