package handlers

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mroshb/quizmaster_bot/internal/quiz"
)

// SheetSelectionKeyboard offers the configured quiz sheets.
func SheetSelectionKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("quiz1", "sheet_quiz1"),
			tgbotapi.NewInlineKeyboardButtonData("quiz2", "sheet_quiz2"),
		),
	)
}

// StartKeyboard shows the single start button after a sheet is chosen.
func StartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(BtnStart, "start_quiz"),
		),
	)
}

// OptionKeyboard renders the numbered answer buttons for the current
// question plus the admin-only next row. Payloads carry the run ID so
// presses on a stale keyboard are detectable.
func OptionKeyboard(runID string) tgbotapi.InlineKeyboardMarkup {
	var optionRow []tgbotapi.InlineKeyboardButton
	for i := 0; i < quiz.OptionCount; i++ {
		optionRow = append(optionRow, tgbotapi.NewInlineKeyboardButtonData(
			strconv.Itoa(i+1),
			fmt.Sprintf("option_%s_%d", runID, i),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(optionRow...),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(BtnNext, "next_"+runID),
		),
	)
}
