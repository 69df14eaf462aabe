package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Start shows the main menu and records today's visit
func (h *Handler) Start(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User opened main menu",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(userID)
	streak := h.svc.Progress.Visit()
	due := len(h.svc.Vocabulary.DueWords(h.svc.Calendar.Today()))

	text := fmt.Sprintf("%s\n\n🔥 連續學習 %d 天｜今日待複習 %d 個", mainMenuText, streak, due)
	return h.reply(c, text, mainMenuMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	h.setSession(c.Sender().ID, nil)
	return h.Start(c)
}
