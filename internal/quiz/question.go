package quiz

import (
	"fmt"
	"strings"

	"github.com/mroshb/quizmaster_bot/pkg/errors"
)

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// QuestionRecord is the wire shape of one entry in a quiz sheet.
type QuestionRecord struct {
	Statement     string `json:"statement"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
	CorrectOption string `json:"correct_option"`
}

// Question is one immutable quiz item.
type Question struct {
	Statement string
	Options   [OptionCount]string
	Correct   string
}

// IsCorrect reports whether option matches the correct option text.
func (q *Question) IsCorrect(option string) bool {
	return q.Correct == option
}

// Prompt renders the question statement with numbered options, the way it
// is posted to the chat.
func (q *Question) Prompt() string {
	var sb strings.Builder
	sb.WriteString("Question: ")
	sb.WriteString(q.Statement)
	sb.WriteString("\n\nOptions:\n")
	for i, option := range q.Options {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, option))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// QuestionSet is an ordered, immutable collection of questions loaded from
// one sheet.
type QuestionSet struct {
	questions []Question
}

// NewQuestionSet builds a QuestionSet from sheet records, preserving input
// order. A record missing any field aborts the load; no partial set is
// returned. The correct option must match one of the four option texts.
func NewQuestionSet(records []QuestionRecord) (*QuestionSet, error) {
	questions := make([]Question, 0, len(records))
	for i, rec := range records {
		q, err := newQuestion(i, rec)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return &QuestionSet{questions: questions}, nil
}

func newQuestion(index int, rec QuestionRecord) (Question, error) {
	fields := map[string]string{
		"statement":      rec.Statement,
		"option1":        rec.Option1,
		"option2":        rec.Option2,
		"option3":        rec.Option3,
		"option4":        rec.Option4,
		"correct_option": rec.CorrectOption,
	}
	for _, name := range []string{"statement", "option1", "option2", "option3", "option4", "correct_option"} {
		if fields[name] == "" {
			return Question{}, errors.New(errors.ErrCodeMalformedQuestion,
				fmt.Sprintf("record %d is missing field %q", index, name))
		}
	}

	q := Question{
		Statement: rec.Statement,
		Options:   [OptionCount]string{rec.Option1, rec.Option2, rec.Option3, rec.Option4},
		Correct:   rec.CorrectOption,
	}

	found := false
	for _, option := range q.Options {
		if option == q.Correct {
			found = true
			break
		}
	}
	if !found {
		return Question{}, errors.New(errors.ErrCodeMalformedQuestion,
			fmt.Sprintf("record %d: correct_option %q is not among the options", index, rec.CorrectOption))
	}

	return q, nil
}

// Len returns the number of questions in the set.
func (s *QuestionSet) Len() int {
	return len(s.questions)
}

// At returns the question at index i.
func (s *QuestionSet) At(i int) *Question {
	return &s.questions[i]
}
