package handler

import (
	"strings"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") || text == "" {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingSentence:
		h.ResetState(userID)
		return h.practiceWriting(c, state.WordID, text)

	case domain.StateWaitingTag:
		h.ResetState(userID)
		if !h.svc.Vocabulary.AddTag(state.WordID, text) {
			if _, ok := h.svc.Vocabulary.Get(state.WordID); !ok {
				return c.Send("⚠️ "+userMessage(service.ErrWordNotFound), backMarkup())
			}
			return c.Send("這個單字已經有這個標籤了。", backMarkup())
		}
		h.logger.Info("Tag added", zap.String("word_id", state.WordID), zap.String("tag", text))
		return h.showWord(c, state.WordID)

	case domain.StateWaitingTopic:
		h.ResetState(userID)
		return h.generatePack(c, text)

	default:
		// Idle state - any text is a word to add
		return h.addWord(c, text)
	}
}

// addWord asks the AI for the word's details and saves it
func (h *Handler) addWord(c tele.Context, text string) error {
	userID := c.Sender().ID
	h.working(c)

	stub, err := h.svc.Vocabulary.Define(h.ctx, text)
	if err != nil {
		return h.fail(c, "define_word", err)
	}

	w, err := h.svc.Vocabulary.Add(stub)
	if err != nil {
		return h.fail(c, "add_word", err)
	}

	h.logger.Info("Word saved",
		zap.Int64("user_id", userID),
		zap.String("word_id", w.ID),
		zap.String("word", w.Word),
	)

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})
	return c.Send("✅ 已儲存！\n\n"+formatWord(w)+"\n\n可以繼續輸入下一個單字。", wordMarkup(w))
}

func (h *Handler) handleAddPrompt(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingWord})
	return h.reply(c, "請輸入要新增的英文單字：", cancelMarkup())
}
