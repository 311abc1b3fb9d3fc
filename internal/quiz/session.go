package quiz

import (
	"sync"

	"github.com/mroshb/quizmaster_bot/pkg/errors"
	"github.com/mroshb/quizmaster_bot/pkg/utils"
)

// Session states
const (
	StateIdle      = "idle"
	StateSelecting = "selecting"
	StateRunning   = "running"
	StateFinished  = "finished"
)

// Logical quiz errors, reported to users as informational messages rather
// than faults.
var (
	ErrQuizAlreadyRunning = errors.New(errors.ErrCodeQuizRunning, "a quiz is already running in this chat")
	ErrNoActiveQuiz       = errors.New(errors.ErrCodeNoActiveQuiz, "no quiz is running in this chat")
	ErrAlreadyAnswered    = errors.New(errors.ErrCodeAlreadyAnswered, "user already attempted this question")
	ErrNoQuestionSet      = errors.New(errors.ErrCodeValidation, "no question set selected")
)

// ScoreEntry is one user's row on the score sheet.
type ScoreEntry struct {
	UserID      int64
	DisplayName string
	Score       int
}

// AnswerResult is the outcome of one answer submission.
type AnswerResult struct {
	Correct       bool
	CorrectOption string
}

// Session is the state of one quiz run in one chat. All methods are safe
// for concurrent use; the internal mutex makes the attempted-set
// check-and-insert atomic so duplicate submissions can never score twice.
type Session struct {
	mu sync.Mutex

	state     string
	set       *QuestionSet
	current   int
	runID     string
	attempted map[int64]struct{}
	scores    map[int64]*ScoreEntry
	order     []int64
}

func NewSession() *Session {
	return &Session{
		state:     StateIdle,
		current:   -1,
		attempted: make(map[int64]struct{}),
		scores:    make(map[int64]*ScoreEntry),
	}
}

// State returns the current state name.
func (s *Session) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentIndex returns the current question index, -1 when no question is
// being displayed.
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// RunID identifies the current run; stale callback payloads carry an older
// run ID and are rejected by the caller.
func (s *Session) RunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runID
}

// BeginSelection moves an idle or finished session into sheet selection.
func (s *Session) BeginSelection() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSelecting || s.state == StateRunning {
		return ErrQuizAlreadyRunning
	}
	s.state = StateSelecting
	return nil
}

// InSelection reports whether the session is waiting for a sheet choice or
// the start button.
func (s *Session) InSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateSelecting
}

// ChooseSet installs the fetched question set while staying in selection;
// the quiz starts on the explicit start button.
func (s *Session) ChooseSet(set *QuestionSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelecting {
		return ErrNoActiveQuiz
	}
	s.set = set
	return nil
}

// Start begins the run: question 0, empty attempted set, empty score sheet,
// fresh run ID.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelecting {
		return ErrNoActiveQuiz
	}
	if s.set == nil || s.set.Len() == 0 {
		return ErrNoQuestionSet
	}

	s.state = StateRunning
	s.current = 0
	s.runID = utils.NewRunID(6)
	s.attempted = make(map[int64]struct{})
	s.scores = make(map[int64]*ScoreEntry)
	s.order = nil
	return nil
}

// CurrentQuestion returns the question being displayed.
func (s *Session) CurrentQuestion() (*Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return nil, ErrNoActiveQuiz
	}
	return s.set.At(s.current), nil
}

// Advance moves to the next question, clearing the attempted set. On the
// last question it finishes the run instead and reports finished=true.
func (s *Session) Advance() (finished bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return false, ErrNoActiveQuiz
	}

	if s.current < s.set.Len()-1 {
		s.current++
		s.attempted = make(map[int64]struct{})
		return false, nil
	}

	s.finishLocked()
	return true, nil
}

// Stop ends a running quiz immediately.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning && s.state != StateSelecting {
		return ErrNoActiveQuiz
	}
	s.finishLocked()
	return nil
}

func (s *Session) finishLocked() {
	s.state = StateFinished
	s.current = -1
}

// SubmitAnswer records one user's answer for the current question. Each
// user gets exactly one scoring evaluation per question; repeats return
// ErrAlreadyAnswered with no state change.
func (s *Session) SubmitAnswer(userID int64, displayName string, optionIdx int) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return AnswerResult{}, ErrNoActiveQuiz
	}
	if _, dup := s.attempted[userID]; dup {
		return AnswerResult{}, ErrAlreadyAnswered
	}

	question := s.set.At(s.current)
	if optionIdx < 0 || optionIdx >= OptionCount {
		return AnswerResult{}, errors.New(errors.ErrCodeValidation, "option index out of range")
	}

	s.attempted[userID] = struct{}{}

	entry, ok := s.scores[userID]
	if !ok {
		entry = &ScoreEntry{UserID: userID, DisplayName: displayName}
		s.scores[userID] = entry
		s.order = append(s.order, userID)
	}

	result := AnswerResult{CorrectOption: question.Correct}
	if question.IsCorrect(question.Options[optionIdx]) {
		entry.Score++
		result.Correct = true
	}
	return result, nil
}

// AttemptedCount returns how many users have answered the current question.
func (s *Session) AttemptedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attempted)
}

// Scoreboard returns the score entries ranked by score descending; equal
// scores keep their original insertion order.
func (s *Session) Scoreboard() []ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]ScoreEntry, 0, len(s.order))
	for _, userID := range s.order {
		entries = append(entries, *s.scores[userID])
	}
	return rankEntries(entries)
}
