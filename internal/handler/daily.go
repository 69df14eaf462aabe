package handler

import (
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"
)

func (h *Handler) handleDailyWord(c tele.Context) error {
	h.working(c)
	word, err := h.svc.DailyWord.CheckAndFetch(h.ctx)
	if err != nil {
		return h.fail(c, "daily_slang", err)
	}
	return c.Send(formatDailyWord(word), backMarkup())
}

func (h *Handler) handleQuote(c tele.Context) error {
	h.working(c)
	quote, err := h.svc.Quote.CheckAndFetch(h.ctx)
	if err != nil {
		return h.fail(c, "daily_quote", err)
	}
	return c.Send(formatQuote(quote), backMarkup())
}

func (h *Handler) handleGrammar(c tele.Context) error {
	h.working(c)
	lesson, err := h.svc.Grammar.CheckAndFetch(h.ctx)
	if err != nil {
		return h.fail(c, "daily_grammar", err)
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for i, q := range lesson.Quiz {
		row := tele.Row{}
		for j := range q.Options {
			row = append(row, markup.Data(fmt.Sprintf("%d%s", i+1, answerMark(j)), btnGrammarAnswer.Unique, strconv.Itoa(i), strconv.Itoa(j)))
		}
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return c.Send(formatGrammar(lesson), markup)
}

// handleGrammarAnswer checks a quiz answer of today's grammar lesson
func (h *Handler) handleGrammarAnswer(c tele.Context) error {
	qi, oi, ok := answerArgs(c.Args())
	lesson, has := h.svc.Grammar.Current()
	if !ok || !has || qi >= len(lesson.Quiz) || oi >= len(lesson.Quiz[qi].Options) {
		return c.Respond(&tele.CallbackResponse{Text: "這題已過期"})
	}

	q := lesson.Quiz[qi]
	chosen := q.Options[oi]
	correct := strings.EqualFold(strings.TrimSpace(chosen), strings.TrimSpace(q.CorrectAnswer)) ||
		strings.EqualFold(answerMark(oi), strings.TrimSpace(q.CorrectAnswer))

	return c.Respond(&tele.CallbackResponse{
		Text:      verdict(correct, q.CorrectAnswer, q.Explanation),
		ShowAlert: true,
	})
}

// handlePlan shows today's study plan, generating it on first use
func (h *Handler) handlePlan(c tele.Context) error {
	h.working(c)
	vocab := h.svc.Vocabulary
	if _, err := h.svc.Plan.CheckAndGenerate(h.ctx,
		vocab.DueWords(h.svc.Calendar.Today()), vocab.WeakWords(), vocab.Count()); err != nil {
		return h.fail(c, "study_plan", err)
	}
	return h.showPlan(c)
}

func (h *Handler) showPlan(c tele.Context) error {
	plan, ok := h.svc.Plan.Current()
	if !ok {
		return h.reply(c, "今天還沒有學習計畫。", backMarkup())
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, t := range plan.Tasks {
		if t.IsCompleted || !fitsCallback(btnTask.Unique, t.ID) {
			continue
		}
		row := tele.Row{markup.Data("✅ "+t.Title, btnTask.Unique, t.ID)}
		if action, ok := actionButton(t.ActionType); ok {
			row = append(row, action)
		}
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	done, total := plan.Progress()
	text := formatPlan(plan)
	if total > 0 && done == total {
		text += "\n🎉 今天的任務全部完成！"
	}
	return h.reply(c, text, markup)
}

// actionButton maps a task action type to the screen that performs it
func actionButton(actionType string) (tele.Btn, bool) {
	switch actionType {
	case "flashcard":
		return btnReview, true
	case "reading-comprehension":
		return btnReading, true
	case "topic-learning":
		return btnTopics, true
	case "daily-grammar":
		return btnGrammar, true
	case "writing-practice":
		return btnWords, true
	default:
		return tele.Btn{}, false
	}
}

func (h *Handler) handleTask(c tele.Context) error {
	if !h.svc.Plan.CompleteTask(c.Data()) {
		_ = c.Respond(&tele.CallbackResponse{Text: "任務已完成"})
	}
	return h.showPlan(c)
}

// handleReading shows today's reading test, generating it on first use
func (h *Handler) handleReading(c tele.Context) error {
	h.working(c)
	test, err := h.svc.Reading.CheckAndGenerate(h.ctx)
	if err != nil {
		return h.fail(c, "reading_test", err)
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for i, q := range test.Questions {
		row := tele.Row{}
		for j := range q.Options {
			row = append(row, markup.Data(fmt.Sprintf("%d%s", i+1, answerMark(j)), btnReadingAnswer.Unique, strconv.Itoa(i), strconv.Itoa(j)))
		}
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return c.Send(formatReading(test), markup)
}

func (h *Handler) handleReadingAnswer(c tele.Context) error {
	qi, oi, ok := answerArgs(c.Args())
	test, has := h.svc.Reading.Current()
	if !ok || !has || qi >= len(test.Questions) {
		return c.Respond(&tele.CallbackResponse{Text: "這題已過期"})
	}

	q := test.Questions[qi]
	answer := ""
	if q.CorrectAnswerIndex < len(q.Options) {
		answer = answerMark(q.CorrectAnswerIndex) + ". " + q.Options[q.CorrectAnswerIndex]
	}
	return c.Respond(&tele.CallbackResponse{
		Text:      verdict(oi == q.CorrectAnswerIndex, answer, q.Explanation),
		ShowAlert: true,
	})
}

func answerArgs(args []string) (question, option int, ok bool) {
	if len(args) != 2 {
		return 0, 0, false
	}
	q, err1 := strconv.Atoi(args[0])
	o, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || q < 0 || o < 0 {
		return 0, 0, false
	}
	return q, o, true
}

// verdict is the alert text of a quiz answer. Telegram caps alerts at 200 characters.
func verdict(correct bool, answer, explanation string) string {
	text := "❌ 答錯了，正確答案：" + answer + "\n" + explanation
	if correct {
		text = "✅ 答對了！\n" + explanation
	}
	if r := []rune(text); len(r) > 200 {
		text = string(r[:199]) + "…"
	}
	return text
}
