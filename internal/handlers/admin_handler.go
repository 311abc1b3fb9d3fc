package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mroshb/quizmaster_bot/internal/security"
	"github.com/mroshb/quizmaster_bot/pkg/logger"
)

// AddQuizMaster handles /addquizmaster: records targetID in the registry.
func (h *HandlerManager) AddQuizMaster(chatID, actorID, targetID int64, bot BotInterface) {
	if !h.IsAuthorized(actorID) {
		bot.SendMessage(chatID, MsgNotAuthorized, nil)
		return
	}

	added, err := h.Masters.Add(targetID)
	if err != nil {
		logger.Error("Failed to add quizmaster", "target_id", targetID, "error", err)
		bot.SendMessage(chatID, MsgSheetLoadFailed, nil)
		return
	}

	if added {
		bot.SendMessage(chatID, fmt.Sprintf(MsgMasterAddedFmt, targetID), nil)
	} else {
		bot.SendMessage(chatID, fmt.Sprintf(MsgMasterExistsFmt, targetID), nil)
	}
}

// RemoveQuizMaster handles /rmquizmaster: deletes targetID from the registry.
func (h *HandlerManager) RemoveQuizMaster(chatID, actorID, targetID int64, bot BotInterface) {
	if !h.IsAuthorized(actorID) {
		bot.SendMessage(chatID, MsgNotAuthorized, nil)
		return
	}

	removed, err := h.Masters.Remove(targetID)
	if err != nil {
		logger.Error("Failed to remove quizmaster", "target_id", targetID, "error", err)
		bot.SendMessage(chatID, MsgSheetLoadFailed, nil)
		return
	}

	if removed {
		bot.SendMessage(chatID, fmt.Sprintf(MsgMasterRemovedFmt, targetID), nil)
	} else {
		bot.SendMessage(chatID, fmt.Sprintf(MsgMasterMissingFmt, targetID), nil)
	}
}

// ListQuizMasters handles /quizmasters.
func (h *HandlerManager) ListQuizMasters(chatID, actorID int64, bot BotInterface) {
	if !h.IsAuthorized(actorID) {
		bot.SendMessage(chatID, MsgNotAuthorized, nil)
		return
	}

	ids, err := h.Masters.List()
	if err != nil {
		logger.Error("Failed to list quizmasters", "error", err)
		bot.SendMessage(chatID, MsgSheetLoadFailed, nil)
		return
	}

	if len(ids) == 0 {
		bot.SendMessage(chatID, MsgMastersEmpty, nil)
		return
	}

	var sb strings.Builder
	sb.WriteString(MsgMastersHeader)
	for _, id := range ids {
		sb.WriteString("\n")
		sb.WriteString(strconv.FormatInt(id, 10))
	}
	bot.SendMessage(chatID, sb.String(), nil)
}

// HandleInvite handles /invite: the owner gets a signed deep-link that
// grants quizmaster access to whoever opens it.
func (h *HandlerManager) HandleInvite(chatID, userID int64, botUsername string, bot BotInterface) {
	if h.Config.OwnerTgID == 0 || userID != h.Config.OwnerTgID {
		bot.SendMessage(chatID, MsgNotAuthorized, nil)
		return
	}

	token, err := security.GenerateInviteToken(userID, h.Config.InviteSecret)
	if err != nil {
		logger.Error("Failed to generate invite token", "error", err)
		return
	}

	link := fmt.Sprintf("https://t.me/%s?start=invite_%s", botUsername, token)
	bot.SendMessage(chatID, fmt.Sprintf(MsgInviteFmt, link), nil)
}

// RedeemInvite handles a /start invite_<token> deep-link.
func (h *HandlerManager) RedeemInvite(chatID, userID int64, token string, bot BotInterface) {
	claims, err := security.ValidateInviteToken(token, h.Config.InviteSecret)
	if err != nil {
		bot.SendMessage(chatID, MsgInviteInvalid, nil)
		return
	}

	if _, err := h.Masters.Add(userID); err != nil {
		logger.Error("Failed to redeem invite", "user_id", userID, "error", err)
		bot.SendMessage(chatID, MsgInviteInvalid, nil)
		return
	}

	logger.Info("Invite redeemed", "user_id", userID, "issuer_id", claims.IssuerID)
	bot.SendMessage(chatID, fmt.Sprintf(MsgInviteRedeemedFmt, userID), nil)
}
