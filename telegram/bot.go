package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mroshb/quizmaster_bot/internal/config"
	"github.com/mroshb/quizmaster_bot/internal/handlers"
	"github.com/mroshb/quizmaster_bot/internal/middleware"
	"github.com/mroshb/quizmaster_bot/pkg/logger"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	config   *config.Config
	handlers *handlers.HandlerManager
	limiter  *middleware.RateLimiter

	// Worker pool for parallel processing
	workerChans []chan tgbotapi.Update
}

func InitBot(cfg *config.Config, handlerMgr *handlers.HandlerManager) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	if cfg.AppEnv == "development" {
		api.Debug = true
	}

	logger.Info("Authorized on account", "username", api.Self.UserName)

	bot := &Bot{
		api:         api,
		config:      cfg,
		handlers:    handlerMgr,
		limiter:     middleware.NewRateLimiter(cfg.RateLimitPerUser, time.Minute),
		workerChans: make([]chan tgbotapi.Update, 10), // 10 workers
	}

	// Start workers
	for i := 0; i < 10; i++ {
		bot.workerChans[i] = make(chan tgbotapi.Update, 100)
		go bot.startWorker(bot.workerChans[i])
	}

	// Start update listener
	go bot.startUpdateListener()

	return bot, nil
}

func (b *Bot) startUpdateListener() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for {
		logger.Info("Starting update listener...")
		updates := b.api.GetUpdatesChan(u)

		for update := range updates {
			// Find chatID for hashing
			var chatID int64
			if update.Message != nil {
				chatID = update.Message.Chat.ID
			} else if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
				chatID = update.CallbackQuery.Message.Chat.ID
			}

			if chatID != 0 {
				// Hashed dispatch to workers to ensure per-chat ordered processing
				workerIdx := chatID % int64(len(b.workerChans))
				if workerIdx < 0 {
					workerIdx = -workerIdx
				}
				b.workerChans[workerIdx] <- update
			} else {
				go b.handleUpdate(update)
			}
		}

		logger.Warn("Update channel closed. Restarting in 5 seconds...")
		time.Sleep(5 * time.Second)
	}
}

func (b *Bot) startWorker(ch chan tgbotapi.Update) {
	for update := range ch {
		b.handleUpdate(update)
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in handleUpdate", "error", r)
		}
	}()

	if update.Message != nil {
		b.handleMessage(update.Message)
	} else if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	userID := message.From.ID
	chatID := message.Chat.ID

	logger.Debug("Received message", "user_id", userID, "chat_id", chatID, "text", message.Text)

	if !b.limiter.Allow(userID) {
		logger.Warn("Rate limit exceeded", "user_id", userID)
		return
	}

	if message.IsCommand() {
		b.handleCommand(message)
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		args := message.CommandArguments()
		if strings.HasPrefix(args, "invite_") {
			b.handlers.RedeemInvite(chatID, userID, strings.TrimPrefix(args, "invite_"), b)
			return
		}
		b.sendMessage(chatID, handlers.MsgStart, nil)

	case "quiz":
		b.handlers.NewQuiz(chatID, userID, b)

	case "stop":
		b.handlers.StopQuiz(chatID, userID, b)

	case "invite":
		b.handlers.HandleInvite(chatID, userID, b.api.Self.UserName, b)

	case "addquizmaster":
		if targetID, ok := b.commandTarget(message); ok {
			b.handlers.AddQuizMaster(chatID, userID, targetID, b)
		}

	case "rmquizmaster":
		if targetID, ok := b.commandTarget(message); ok {
			b.handlers.RemoveQuizMaster(chatID, userID, targetID, b)
		}

	case "quizmasters":
		b.handlers.ListQuizMasters(chatID, userID, b)
	}
}

// commandTarget resolves who an admin command acts on: the replied-to user
// or a numeric argument.
func (b *Bot) commandTarget(message *tgbotapi.Message) (int64, bool) {
	if message.ReplyToMessage != nil && message.ReplyToMessage.From != nil {
		return message.ReplyToMessage.From.ID, true
	}

	args := strings.TrimSpace(message.CommandArguments())
	if args == "" {
		b.sendMessage(message.Chat.ID, "Reply to a user or pass their numeric ID.", nil)
		return 0, false
	}

	targetID, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		b.sendMessage(message.Chat.ID, "That doesn't look like a numeric user ID.", nil)
		return 0, false
	}
	return targetID, true
}

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil || query.From == nil {
		return
	}
	userID := query.From.ID
	chatID := query.Message.Chat.ID
	data := query.Data

	logger.Debug("Callback query", "data", data, "user_id", userID, "chat_id", chatID)

	if !b.limiter.Allow(userID) {
		b.AnswerCallbackQuery(query.ID, "", false)
		return
	}

	if strings.HasPrefix(data, "sheet_") {
		b.handlers.ChooseQuiz(chatID, userID, strings.TrimPrefix(data, "sheet_"), query.ID, b)
		return
	}

	if data == "start_quiz" {
		b.handlers.StartQuiz(chatID, userID, query.ID, b)
		return
	}

	if strings.HasPrefix(data, "option_") {
		// option_<runID>_<index>
		parts := strings.Split(data, "_")
		if len(parts) != 3 {
			return
		}
		optionIdx, err := strconv.Atoi(parts[2])
		if err != nil {
			return
		}
		b.handlers.CheckOption(chatID, userID, displayName(query.From), parts[1], optionIdx, query.ID, b)
		return
	}

	if strings.HasPrefix(data, "next_") {
		b.handlers.NextQuestion(chatID, userID, strings.TrimPrefix(data, "next_"), query.ID, b)
		return
	}

	// Unknown payload, ack so the client spinner stops
	b.AnswerCallbackQuery(query.ID, "", false)
}

func displayName(user *tgbotapi.User) string {
	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	return name
}

func (b *Bot) sendMessage(chatID int64, text string, keyboard interface{}) int {
	msg := tgbotapi.NewMessage(chatID, text)

	switch kb := keyboard.(type) {
	case tgbotapi.ReplyKeyboardMarkup:
		msg.ReplyMarkup = kb
	case tgbotapi.InlineKeyboardMarkup:
		msg.ReplyMarkup = kb
	case tgbotapi.ReplyKeyboardRemove:
		msg.ReplyMarkup = kb
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		sentMsg, err := b.api.Send(msg)
		if err != nil {
			logger.Error("Failed to send message", "error", err, "chat_id", chatID, "attempt", i+1)

			// If it's a network error, wait and retry
			if strings.Contains(err.Error(), "connection reset") ||
				strings.Contains(err.Error(), "timeout") ||
				strings.Contains(err.Error(), "network is unreachable") {
				time.Sleep(time.Duration(i+1) * time.Second)
				continue
			}
			return 0 // Non-network error, don't retry
		}
		return sentMsg.MessageID // Success
	}
	return 0 // All retries failed
}

func (b *Bot) SendMessage(chatID int64, text string, keyboard interface{}) int {
	return b.sendMessage(chatID, text, keyboard)
}

func (b *Bot) SendMarkdownMessage(chatID int64, text string, keyboard interface{}) int {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if kb, ok := keyboard.(tgbotapi.InlineKeyboardMarkup); ok {
		msg.ReplyMarkup = kb
	}

	sentMsg, err := b.api.Send(msg)
	if err != nil {
		logger.Error("Failed to send markdown message", "error", err, "chat_id", chatID)
		return 0
	}
	return sentMsg.MessageID
}

func (b *Bot) EditMessage(chatID int64, messageID int, text string, keyboard interface{}) {
	msg := tgbotapi.NewEditMessageText(chatID, messageID, text)

	if keyboard != nil {
		if kb, ok := keyboard.(tgbotapi.InlineKeyboardMarkup); ok {
			msg.ReplyMarkup = &kb
		}
	}

	if _, err := b.api.Send(msg); err != nil {
		logger.Error("Failed to edit message", "error", err, "chat_id", chatID, "message_id", messageID)
	}
}

func (b *Bot) DeleteMessage(chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	deleteMsg := tgbotapi.NewDeleteMessage(chatID, messageID)
	if _, err := b.api.Request(deleteMsg); err != nil {
		logger.Error("Failed to delete message", "chat_id", chatID, "msg_id", messageID, "error", err)
	}
}

func (b *Bot) PinMessage(chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	pin := tgbotapi.PinChatMessageConfig{
		ChatID:              chatID,
		MessageID:           messageID,
		DisableNotification: true,
	}
	if _, err := b.api.Request(pin); err != nil {
		logger.Error("Failed to pin message", "chat_id", chatID, "msg_id", messageID, "error", err)
	}
}

func (b *Bot) AnswerCallbackQuery(queryID string, text string, showAlert bool) {
	callback := tgbotapi.NewCallback(queryID, text)
	callback.ShowAlert = showAlert
	if _, err := b.api.Request(callback); err != nil {
		logger.Error("Failed to answer callback query", "error", err, "query_id", queryID)
	}
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	logger.Info("Bot stopped receiving updates")
}
