package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizhub/internal/domain"
)

func TestNewQuizDraft(t *testing.T) {
	d := NewQuizDraft()

	require.Equal(t, 1, d.Len())
	q := d.Questions()[0]
	assert.Equal(t, domain.QuestionTypeBoolean, q.Type)
	assert.Empty(t, q.Text)
	require.Len(t, q.Options, 1)
	assert.Empty(t, q.Options[0].Value)
}

func TestQuizDraftAddRemoveQuestion(t *testing.T) {
	d := NewQuizDraft()
	first := d.Questions()[0].ID()
	second := d.AddQuestion()
	third := d.AddQuestion()

	require.Equal(t, 3, d.Len())

	t.Run("identity survives removal of another question", func(t *testing.T) {
		assert.True(t, d.RemoveQuestion(second))
		require.Equal(t, 2, d.Len())
		assert.Equal(t, first, d.Questions()[0].ID())
		assert.Equal(t, third, d.Questions()[1].ID())
	})

	t.Run("unknown identity is rejected", func(t *testing.T) {
		assert.False(t, d.RemoveQuestion(second))
		assert.Equal(t, 2, d.Len())
	})

	t.Run("new questions never reuse an identity", func(t *testing.T) {
		fourth := d.AddQuestion()
		assert.NotEqual(t, second, fourth)
	})
}

func TestQuizDraftSetters(t *testing.T) {
	d := NewQuizDraft()
	id := d.Questions()[0].ID()

	assert.True(t, d.SetQuestionText(id, "What is a closure?"))
	assert.Equal(t, "What is a closure?", d.Questions()[0].Text)

	assert.True(t, d.SetQuestionType(id, domain.QuestionTypeInput))
	assert.Equal(t, domain.QuestionTypeInput, d.Questions()[0].Type)

	assert.False(t, d.SetQuestionText(999, "nope"))
	assert.False(t, d.SetQuestionType(999, domain.QuestionTypeBoolean))
}

func TestQuizDraftOptions(t *testing.T) {
	d := NewQuizDraft()
	id := d.Questions()[0].ID()
	d.SetQuestionType(id, domain.QuestionTypeCheckbox)

	require.True(t, d.AddOption(id))
	require.True(t, d.SetOption(id, 0, "String"))
	require.True(t, d.SetOption(id, 1, "Boolean"))

	q := d.Questions()[0]
	require.Len(t, q.Options, 2)
	assert.Equal(t, "String", q.Options[0].Value)
	assert.Equal(t, "Boolean", q.Options[1].Value)

	t.Run("remove shifts the remainder", func(t *testing.T) {
		assert.True(t, d.RemoveOption(id, 0))
		q := d.Questions()[0]
		require.Len(t, q.Options, 1)
		assert.Equal(t, "Boolean", q.Options[0].Value)
	})

	t.Run("out of range index rejected", func(t *testing.T) {
		assert.False(t, d.RemoveOption(id, 5))
		assert.False(t, d.SetOption(id, -1, "x"))
	})

	t.Run("removal below two options is allowed", func(t *testing.T) {
		assert.True(t, d.RemoveOption(id, 0))
		assert.Empty(t, d.Questions()[0].Options)
	})
}

func TestQuizDraftTypeSwitchPreservesOptions(t *testing.T) {
	d := NewQuizDraft()
	id := d.Questions()[0].ID()

	d.SetQuestionType(id, domain.QuestionTypeCheckbox)
	d.AddOption(id)
	d.SetOption(id, 0, "useState")
	d.SetOption(id, 1, "useEffect")

	d.SetQuestionType(id, domain.QuestionTypeBoolean)
	d.SetQuestionType(id, domain.QuestionTypeCheckbox)

	q := d.Questions()[0]
	require.Len(t, q.Options, 2)
	assert.Equal(t, "useState", q.Options[0].Value)
	assert.Equal(t, "useEffect", q.Options[1].Value)
}
