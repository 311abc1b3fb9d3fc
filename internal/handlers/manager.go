package handlers

import (
	"context"
	"sync"

	"github.com/mroshb/quizmaster_bot/internal/config"
	"github.com/mroshb/quizmaster_bot/internal/quiz"
)

// BotInterface is the abstract chat transport the handlers emit actions
// through. The telegram package implements it over the Bot API; tests use
// a recording fake.
type BotInterface interface {
	SendMessage(chatID int64, text string, keyboard interface{}) int
	SendMarkdownMessage(chatID int64, text string, keyboard interface{}) int
	EditMessage(chatID int64, messageID int, text string, keyboard interface{})
	DeleteMessage(chatID int64, messageID int)
	PinMessage(chatID int64, messageID int)
	AnswerCallbackQuery(queryID string, text string, showAlert bool)
}

// SheetFetcher loads a question set from a sheet URL.
type SheetFetcher interface {
	Fetch(ctx context.Context, url string) (*quiz.QuestionSet, error)
}

// QuizMasterStore is the persistent quizmaster registry.
type QuizMasterStore interface {
	Add(userID int64) (bool, error)
	Remove(userID int64) (bool, error)
	List() ([]int64, error)
	IsQuizMaster(userID int64) (bool, error)
}

type HandlerManager struct {
	Config   *config.Config
	Masters  QuizMasterStore
	Sessions *quiz.SessionStore
	Sheets   SheetFetcher

	// ID of the prompt message per chat: the selection prompt that gets
	// edited into the question message and deleted before the scoreboard.
	promptMu   sync.Mutex
	promptMsgs map[int64]int
}

func NewHandlerManager(cfg *config.Config, masters QuizMasterStore, sessions *quiz.SessionStore, sheets SheetFetcher) *HandlerManager {
	return &HandlerManager{
		Config:     cfg,
		Masters:    masters,
		Sessions:   sessions,
		Sheets:     sheets,
		promptMsgs: make(map[int64]int),
	}
}

// IsAuthorized reports whether userID may control quiz sessions: either
// the configured owner or a registered quizmaster.
func (h *HandlerManager) IsAuthorized(userID int64) bool {
	if h.Config.OwnerTgID != 0 && userID == h.Config.OwnerTgID {
		return true
	}
	ok, err := h.Masters.IsQuizMaster(userID)
	return err == nil && ok
}

func (h *HandlerManager) setPromptMessage(chatID int64, messageID int) {
	h.promptMu.Lock()
	defer h.promptMu.Unlock()
	h.promptMsgs[chatID] = messageID
}

func (h *HandlerManager) promptMessage(chatID int64) (int, bool) {
	h.promptMu.Lock()
	defer h.promptMu.Unlock()
	id, ok := h.promptMsgs[chatID]
	return id, ok
}

func (h *HandlerManager) clearPromptMessage(chatID int64) {
	h.promptMu.Lock()
	defer h.promptMu.Unlock()
	delete(h.promptMsgs, chatID)
}
