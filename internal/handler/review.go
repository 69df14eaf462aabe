package handler

import (
	"vocabdeck/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleReview starts a session over the words due today
func (h *Handler) handleReview(c tele.Context) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()
	session := h.svc.Vocabulary.StartReview()

	if _, ok := session.Current(); !ok {
		h.setSession(userID, nil)
		return h.reply(c, "🎉 今天沒有需要複習的單字！", backMarkup())
	}

	h.setSession(userID, session)
	_, total := session.Progress()
	h.logger.Info("Review started", zap.Int64("user_id", userID), zap.Int("words", total))
	return h.showCard(c, false)
}

// showCard renders the current card, front only or with the answer
func (h *Handler) showCard(c tele.Context, revealed bool) error {
	session, ok := h.session(c.Sender().ID)
	if !ok {
		return h.reply(c, "複習已結束。", backMarkup())
	}

	for {
		id, ok := session.Current()
		if !ok {
			return h.finishReview(c)
		}
		w, found := h.svc.Vocabulary.Get(id)
		if !found {
			// deleted or replaced by an import since the session started
			session.Advance()
			continue
		}

		done, total := session.Progress()
		markup := &tele.ReplyMarkup{}
		if !revealed {
			markup.Inline(markup.Row(btnReveal), markup.Row(btnCancel))
			return h.reply(c, formatCardFront(w, done, total), markup)
		}

		markup.Inline(
			markup.Row(
				markup.Data(domain.RatingAgain.Label(), btnRate.Unique, string(domain.RatingAgain), id),
				markup.Data(domain.RatingGood.Label(), btnRate.Unique, string(domain.RatingGood), id),
				markup.Data(domain.RatingEasy.Label(), btnRate.Unique, string(domain.RatingEasy), id),
			),
			markup.Row(btnCancel),
		)
		return h.reply(c, formatCardBack(w, done, total), markup)
	}
}

func (h *Handler) handleReveal(c tele.Context) error {
	defer h.lockUser(c.Sender().ID)()
	return h.showCard(c, true)
}

// handleRate records the rating of the card named in the button data
// (rating|word id) and moves on. A tap on a card that is no longer current
// is ignored.
func (h *Handler) handleRate(c tele.Context) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	session, ok := h.session(userID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "複習已結束"})
	}

	args := c.Args()
	if len(args) < 2 {
		return c.Respond(&tele.CallbackResponse{Text: "無效的評分"})
	}
	rating, err := domain.ParseRating(args[0])
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "無效的評分"})
	}
	id := args[1]

	current, ok := session.Current()
	if !ok {
		return h.finishReview(c)
	}
	if current != id {
		h.logger.Debug("Stale rating ignored",
			zap.Int64("user_id", userID),
			zap.String("word_id", id),
			zap.String("current_id", current),
		)
		return c.Respond(&tele.CallbackResponse{Text: "這張卡片已經評分了"})
	}

	outcome, found, err := h.svc.Vocabulary.RecordReview(id, rating)
	if err != nil {
		return h.fail(c, "record_review", err)
	}
	if found {
		h.svc.Progress.RecordReview()
		w, _ := h.svc.Vocabulary.Get(id)
		_ = c.Respond(&tele.CallbackResponse{Text: formatReviewOutcome(w.Word, rating, outcome)})
	}

	session.AdvanceFrom(id)
	return h.showCard(c, false)
}

func (h *Handler) finishReview(c tele.Context) error {
	userID := c.Sender().ID
	session, _ := h.session(userID)
	h.setSession(userID, nil)

	total := 0
	if session != nil {
		_, total = session.Progress()
	}
	today := h.svc.Progress.ReviewsOn(h.svc.Calendar.Today())
	h.logger.Info("Review finished", zap.Int64("user_id", userID), zap.Int("words", total))

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnPlan), markup.Row(btnMainMenu))
	return h.reply(c, "🎉 複習完成！今天已複習 "+itoa(today)+" 次。", markup)
}
