package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/mroshb/quizmaster_bot/internal/quiz"
	"github.com/mroshb/quizmaster_bot/internal/security"
	"github.com/mroshb/quizmaster_bot/pkg/logger"
	"github.com/mroshb/quizmaster_bot/pkg/utils"
)

// NewQuiz handles the /quiz command: opens sheet selection unless a quiz
// is already underway in this chat.
func (h *HandlerManager) NewQuiz(chatID, userID int64, bot BotInterface) {
	if !h.IsAuthorized(userID) {
		bot.SendMessage(chatID, MsgNotAuthorized, nil)
		return
	}

	session := h.Sessions.Get(chatID)
	if session.State() == quiz.StateSelecting || session.State() == quiz.StateRunning {
		bot.SendMessage(chatID, MsgQuizRunning, nil)
		return
	}

	// A finished session is inert; the new run gets a fresh instance in
	// the same chat slot.
	session = h.Sessions.Replace(chatID)
	if err := session.BeginSelection(); err != nil {
		logger.Error("Failed to begin selection", "chat_id", chatID, "error", err)
		return
	}

	msgID := bot.SendMessage(chatID, MsgChooseQuiz, SheetSelectionKeyboard())
	h.setPromptMessage(chatID, msgID)
}

// ChooseQuiz handles a sheet selection button: fetches the sheet, installs
// the question set and swaps the prompt to the start button.
func (h *HandlerManager) ChooseQuiz(chatID, userID int64, sheetKey, queryID string, bot BotInterface) {
	if !h.IsAuthorized(userID) {
		bot.AnswerCallbackQuery(queryID, MsgNotAuthorized, true)
		return
	}

	session := h.Sessions.Get(chatID)
	if !session.InSelection() {
		bot.AnswerCallbackQuery(queryID, MsgNoActiveQuiz, false)
		return
	}

	url, ok := h.Config.SheetURL(sheetKey)
	if !ok {
		bot.AnswerCallbackQuery(queryID, MsgSheetLoadFailed, false)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.Config.GetFetchTimeout())
	defer cancel()

	set, err := h.Sheets.Fetch(ctx, url)
	if err != nil {
		logger.Error("Failed to load quiz sheet", "chat_id", chatID, "sheet", sheetKey, "error", err)
		bot.AnswerCallbackQuery(queryID, MsgSheetLoadFailed, true)
		return
	}

	if err := session.ChooseSet(set); err != nil {
		bot.AnswerCallbackQuery(queryID, MsgNoActiveQuiz, false)
		return
	}

	bot.AnswerCallbackQuery(queryID, "", false)
	if msgID, ok := h.promptMessage(chatID); ok {
		bot.EditMessage(chatID, msgID, fmt.Sprintf(MsgSheetSelectedFmt, sheetKey), StartKeyboard())
	}

	logger.Info("Quiz sheet selected", "chat_id", chatID, "sheet", sheetKey, "questions", set.Len())
}

// StartQuiz handles the start button: question 0 replaces the prompt and
// gets pinned.
func (h *HandlerManager) StartQuiz(chatID, userID int64, queryID string, bot BotInterface) {
	if !h.IsAuthorized(userID) {
		bot.AnswerCallbackQuery(queryID, MsgNotAuthorized, true)
		return
	}

	session := h.Sessions.Get(chatID)
	if err := session.Start(); err != nil {
		bot.AnswerCallbackQuery(queryID, MsgNoActiveQuiz, false)
		return
	}

	bot.AnswerCallbackQuery(queryID, "", false)
	h.postCurrentQuestion(chatID, session, bot)

	if msgID, ok := h.promptMessage(chatID); ok {
		bot.PinMessage(chatID, msgID)
	}
}

// CheckOption handles an option button press: first answer per user per
// question, scored exactly once, reported via an ephemeral notice.
func (h *HandlerManager) CheckOption(chatID, userID int64, fullName, runID string, optionIdx int, queryID string, bot BotInterface) {
	session := h.Sessions.Get(chatID)
	if runID != session.RunID() || runID == "" {
		bot.AnswerCallbackQuery(queryID, MsgStaleButton, false)
		return
	}

	displayName := utils.EscapeMarkdown(security.SanitizeDisplayName(fullName))

	result, err := session.SubmitAnswer(userID, displayName, optionIdx)
	switch {
	case errors.Is(err, quiz.ErrAlreadyAnswered):
		bot.AnswerCallbackQuery(queryID, MsgAlreadyAttempted, true)
	case errors.Is(err, quiz.ErrNoActiveQuiz):
		bot.AnswerCallbackQuery(queryID, MsgNoActiveQuiz, false)
	case err != nil:
		logger.Error("Failed to submit answer", "chat_id", chatID, "user_id", userID, "error", err)
		bot.AnswerCallbackQuery(queryID, MsgNoActiveQuiz, false)
	case result.Correct:
		bot.AnswerCallbackQuery(queryID, MsgCorrect, true)
	default:
		bot.AnswerCallbackQuery(queryID, fmt.Sprintf(MsgIncorrectFmt, result.CorrectOption), true)
	}
}

// NextQuestion handles the next button: advances the session or, on the
// last question, finishes the run and posts the scoreboard.
func (h *HandlerManager) NextQuestion(chatID, userID int64, runID, queryID string, bot BotInterface) {
	if !h.IsAuthorized(userID) {
		bot.AnswerCallbackQuery(queryID, MsgNotAuthorized, true)
		return
	}

	session := h.Sessions.Get(chatID)
	if runID != session.RunID() || runID == "" {
		bot.AnswerCallbackQuery(queryID, MsgStaleButton, false)
		return
	}

	bot.AnswerCallbackQuery(queryID, "", false)

	finished, err := session.Advance()
	if err != nil {
		bot.SendMessage(chatID, MsgNoActiveQuiz, nil)
		return
	}

	if finished {
		h.sendScoreboard(chatID, session, bot)
		return
	}
	h.postCurrentQuestion(chatID, session, bot)
}

// StopQuiz handles /stop: a running quiz finishes with a scoreboard, a
// pending selection is discarded.
func (h *HandlerManager) StopQuiz(chatID, userID int64, bot BotInterface) {
	if !h.IsAuthorized(userID) {
		bot.SendMessage(chatID, MsgNotAuthorized, nil)
		return
	}

	session := h.Sessions.Get(chatID)
	switch session.State() {
	case quiz.StateRunning:
		if err := session.Stop(); err != nil {
			bot.SendMessage(chatID, MsgNoQuizToStop, nil)
			return
		}
		h.sendScoreboard(chatID, session, bot)
	case quiz.StateSelecting:
		if err := session.Stop(); err != nil {
			return
		}
		if msgID, ok := h.promptMessage(chatID); ok {
			bot.DeleteMessage(chatID, msgID)
			h.clearPromptMessage(chatID)
		}
		bot.SendMessage(chatID, MsgQuizCancelled, nil)
	default:
		bot.SendMessage(chatID, MsgNoQuizToStop, nil)
	}
}

func (h *HandlerManager) postCurrentQuestion(chatID int64, session *quiz.Session, bot BotInterface) {
	question, err := session.CurrentQuestion()
	if err != nil {
		logger.Error("No current question to post", "chat_id", chatID, "error", err)
		return
	}

	keyboard := OptionKeyboard(session.RunID())
	if msgID, ok := h.promptMessage(chatID); ok {
		bot.EditMessage(chatID, msgID, question.Prompt(), keyboard)
		return
	}

	// Prompt lost (e.g. bot restarted mid-run): fall back to a fresh message.
	msgID := bot.SendMessage(chatID, question.Prompt(), keyboard)
	h.setPromptMessage(chatID, msgID)
}

// sendScoreboard deletes the question message and posts the pinned final
// ranking. Transport failures do not roll the session state back.
func (h *HandlerManager) sendScoreboard(chatID int64, session *quiz.Session, bot BotInterface) {
	if msgID, ok := h.promptMessage(chatID); ok {
		bot.DeleteMessage(chatID, msgID)
		h.clearPromptMessage(chatID)
	}

	text := MsgScoreboardHeader + quiz.RenderScoreboard(session.Scoreboard())
	msgID := bot.SendMarkdownMessage(chatID, text, nil)
	bot.PinMessage(chatID, msgID)

	logger.Info("Quiz finished", "chat_id", chatID, "participants", len(session.Scoreboard()))
}
