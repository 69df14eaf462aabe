package handler

import (
	"fmt"
	"strconv"
	"strings"

	"vocabdeck/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleTopic generates a pack for the topic after the command, or offers
// the suggested topics and waits for one to be typed
func (h *Handler) handleTopic(c tele.Context) error {
	if c.Callback() == nil {
		if topic := strings.TrimSpace(c.Message().Payload); topic != "" {
			return h.generatePack(c, topic)
		}
	}

	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingTopic})

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for i := 0; i < len(domain.SuggestedTopics); i += 2 {
		row := tele.Row{}
		for j := i; j < i+2 && j < len(domain.SuggestedTopics); j++ {
			row = append(row, markup.Data(domain.SuggestedTopics[j].Name, btnSuggested.Unique, strconv.Itoa(j)))
		}
		rows = append(rows, row)
	}
	if len(h.svc.Topics.List()) > 0 {
		rows = append(rows, markup.Row(markup.Data("📦 我的學習包", btnPack.Unique, "")))
	}
	rows = append(rows, markup.Row(btnCancel))
	markup.Inline(rows...)

	return h.reply(c, "🎯 選擇一個主題，或直接輸入你想學的主題：", markup)
}

func (h *Handler) handleSuggestedTopic(c tele.Context) error {
	i, err := strconv.Atoi(c.Data())
	if err != nil || i < 0 || i >= len(domain.SuggestedTopics) {
		return c.Respond()
	}
	h.ResetState(c.Sender().ID)
	return h.generatePack(c, domain.SuggestedTopics[i].English)
}

func (h *Handler) generatePack(c tele.Context, topic string) error {
	h.working(c)
	pack, err := h.svc.Topics.Generate(h.ctx, topic)
	if err != nil {
		return h.fail(c, "topic_pack", err)
	}
	return c.Send(formatPack(pack), packMarkup(pack))
}

func packMarkup(p domain.TopicPack) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(btnAddPack.Text, btnAddPack.Unique, p.ID)),
		markup.Row(markup.Data(btnDeletePack.Text, btnDeletePack.Unique, p.ID)),
		markup.Row(markup.Data("📦 我的學習包", btnPack.Unique, ""), btnMainMenu),
	)
	return markup
}

// handlePacks lists packs grouped by category
func (h *Handler) handlePacks(c tele.Context) error {
	categories := h.svc.Topics.Categories()
	if len(categories) == 0 {
		markup := &tele.ReplyMarkup{}
		markup.Inline(markup.Row(btnTopics), markup.Row(btnMainMenu))
		return h.reply(c, "還沒有任何主題學習包。", markup)
	}

	var b strings.Builder
	b.WriteString("📦 我的學習包\n")
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, cat := range categories {
		title, err := h.svc.Topics.GroupTitle(h.ctx, cat.Name)
		if err != nil {
			h.logger.Warn("Using fallback group title", zap.String("category", cat.Name), zap.Error(err))
		}
		fmt.Fprintf(&b, "\n%s（%d）", title, len(cat.Packs))
		for _, p := range cat.Packs {
			rows = append(rows, markup.Row(markup.Data(title+"｜"+p.ChineseTitle, btnPack.Unique, p.ID)))
		}
	}
	rows = append(rows, markup.Row(btnTopics, btnMainMenu))
	markup.Inline(rows...)
	return h.reply(c, b.String(), markup)
}

func (h *Handler) handlePackDetail(c tele.Context) error {
	id := c.Data()
	if id == "" {
		return h.handlePacks(c)
	}
	pack, ok := h.svc.Topics.Get(id)
	if !ok {
		return h.handlePacks(c)
	}
	return h.reply(c, formatPack(pack), packMarkup(pack))
}

// handleAddPackWords copies the pack's words into the collection
func (h *Handler) handleAddPackWords(c tele.Context) error {
	pack, ok := h.svc.Topics.Get(c.Data())
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "找不到這個學習包"})
	}

	added, skipped := h.svc.Vocabulary.AddStubs(pack.Words)
	h.logger.Info("Pack words added",
		zap.String("pack_id", pack.ID),
		zap.Int("added", added),
		zap.Int("skipped", skipped),
	)
	return c.Respond(&tele.CallbackResponse{
		Text:      fmt.Sprintf("已加入 %d 個單字，略過 %d 個重複的單字。", added, skipped),
		ShowAlert: true,
	})
}

func (h *Handler) handleDeletePack(c tele.Context) error {
	if h.svc.Topics.Delete(c.Data()) {
		_ = c.Respond(&tele.CallbackResponse{Text: "已刪除"})
	}
	return h.handlePacks(c)
}
