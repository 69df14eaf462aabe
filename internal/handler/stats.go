package handler

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"
)

const recentDays = 7

// handleStats shows the streak, collection size and the last week of reviews
func (h *Handler) handleStats(c tele.Context) error {
	p := h.svc.Progress
	days := p.RecentDays(recentDays)
	due := len(h.svc.Vocabulary.DueWords(h.svc.Calendar.Today()))

	text := formatStats(p.Streak(), h.svc.Vocabulary.Count(), due, days, h.svc.Calendar.Now())

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("📅 學習紀錄", "dpage_1")),
		markup.Row(btnMainMenu),
	)
	return h.reply(c, text, markup)
}

// showDaysPage lists days with reviews, newest first
func (h *Handler) showDaysPage(c tele.Context, page int) error {
	days, totalPages := h.svc.Progress.DaysPage(page)
	if len(days) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "還沒有複習紀錄",
			ShowAlert: true,
		})
	}

	now := h.svc.Calendar.Now()
	var b strings.Builder
	fmt.Fprintf(&b, "📅 學習紀錄（第 %d/%d 頁）\n\n", page, totalPages)
	for _, d := range days {
		fmt.Fprintf(&b, "%s %s：複習 %d 次\n", d.Bar(), d.DisplayString(now), d.ReviewCount)
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	// Add pagination buttons
	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("dpage_%d", page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("dpage_%d", page+1)))
		}
		rows = append(rows, navRow)
	}
	rows = append(rows, markup.Row(btnStats, btnMainMenu))
	markup.Inline(rows...)

	return h.reply(c, b.String(), markup)
}
