package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionSet(t *testing.T) {
	for _, functionName := range Functions {
		t.Run(functionName, func(t *testing.T) {
			questions := QuestionSet(functionName)
			require.Len(t, questions, len(QuestionIDs))
			for i, q := range questions {
				assert.Equal(t, QuestionIDs[i], q.ID)
				assert.NotEmpty(t, q.Text)
				assert.NotEmpty(t, q.Area)
			}
			// Q1..Q4 probe function-specific knowledge
			for _, q := range questions[:4] {
				assert.Equal(t, areaJobKnowledge, q.Area)
			}
		})
	}

	t.Run("unknown function", func(t *testing.T) {
		assert.Nil(t, QuestionSet("lol"))
	})
}
