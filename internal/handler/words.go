package handler

import (
	"fmt"
	"strconv"
	"strings"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const wordsPageSize = 8

func itoa(n int) string { return strconv.Itoa(n) }

// wordMarkup returns the enrichment buttons of a word detail view
func wordMarkup(w domain.Word) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{
		markup.Row(
			markup.Data(btnExplain.Text, btnExplain.Unique, w.ID),
			markup.Data(btnSimilar.Text, btnSimilar.Unique, w.ID),
		),
		markup.Row(
			markup.Data(btnStructure.Text, btnStructure.Unique, w.ID),
			markup.Data(btnMoreExamples.Text, btnMoreExamples.Unique, w.ID),
		),
		markup.Row(
			markup.Data(btnWrite.Text, btnWrite.Unique, w.ID),
			markup.Data(btnTag.Text, btnTag.Unique, w.ID),
		),
	}

	var untag []tele.Btn
	for _, tag := range w.Tags {
		if fitsCallback(btnUntag.Unique, w.ID, tag) {
			untag = append(untag, markup.Data("✖ "+tag, btnUntag.Unique, w.ID, tag))
		}
	}
	if len(untag) > 0 {
		rows = append(rows, markup.Row(untag...))
	}

	rows = append(rows, markup.Row(btnWords, btnMainMenu))
	markup.Inline(rows...)
	return markup
}

func (h *Handler) showWord(c tele.Context, id string) error {
	w, ok := h.svc.Vocabulary.Get(id)
	if !ok {
		return h.reply(c, userMessage(service.ErrWordNotFound), backMarkup())
	}
	return h.reply(c, formatWord(w), wordMarkup(w))
}

func (h *Handler) handleWordDetail(c tele.Context) error {
	return h.showWord(c, c.Data())
}

// handleWords lists the collection, filtered when the command has a query
func (h *Handler) handleWords(c tele.Context) error {
	if c.Callback() == nil {
		if query := strings.TrimSpace(c.Message().Payload); query != "" {
			return h.showWordList(c, "🔎 "+query, h.svc.Vocabulary.Search(query), 1, "")
		}
	}
	return h.showWordsPage(c, 1)
}

func (h *Handler) showWordsPage(c tele.Context, page int) error {
	return h.showWordList(c, "📖 我的單字", h.svc.Vocabulary.Words(), page, "wpage_")
}

// showWordList renders one page of words; pagePrefix empty disables paging
func (h *Handler) showWordList(c tele.Context, title string, words []domain.Word, page int, pagePrefix string) error {
	if len(words) == 0 {
		return h.reply(c, title+"\n\n沒有找到單字。", backMarkup())
	}

	totalPages := (len(words) + wordsPageSize - 1) / wordsPageSize
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * wordsPageSize
	end := start + wordsPageSize
	if end > len(words) {
		end = len(words)
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, w := range words[start:end] {
		label := fmt.Sprintf("%s｜%s", w.Word, w.ChineseDefinition)
		rows = append(rows, markup.Row(markup.Data(label, btnWord.Unique, w.ID)))
	}

	// Add pagination buttons
	if pagePrefix != "" && totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("%s%d", pagePrefix, page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("%s%d", pagePrefix, page+1)))
		}
		rows = append(rows, navRow)
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	text := fmt.Sprintf("%s（共 %d 個，第 %d/%d 頁）", title, len(words), page, totalPages)
	return h.reply(c, text, markup)
}

func (h *Handler) handleExplain(c tele.Context) error {
	id := c.Data()
	h.working(c)
	text, err := h.svc.Vocabulary.ExplainSentence(h.ctx, id)
	if err != nil {
		return h.fail(c, "explain_sentence", err)
	}
	return c.Send("🔍 句子解析\n\n"+text, wordBackMarkup(id))
}

func (h *Handler) handleSimilar(c tele.Context) error {
	id := c.Data()
	h.working(c)
	similar, err := h.svc.Vocabulary.FindSimilarWord(h.ctx, id)
	if err != nil {
		return h.fail(c, "similar_word", err)
	}
	w, _ := h.svc.Vocabulary.Get(id)
	return c.Send(formatSimilar(w.Word, similar), wordBackMarkup(id))
}

func (h *Handler) handleStructure(c tele.Context) error {
	id := c.Data()
	h.working(c)
	structure, err := h.svc.Vocabulary.AnalyzeStructure(h.ctx, id)
	if err != nil {
		return h.fail(c, "word_structure", err)
	}
	w, _ := h.svc.Vocabulary.Get(id)
	return c.Send(formatStructure(w.Word, structure), wordBackMarkup(id))
}

func (h *Handler) handleMoreExamples(c tele.Context) error {
	id := c.Data()
	h.working(c)
	examples, err := h.svc.Vocabulary.MoreExamples(h.ctx, id)
	if err != nil {
		return h.fail(c, "more_examples", err)
	}
	return c.Send("➕ 例句\n\n• "+strings.Join(examples, "\n• "), wordBackMarkup(id))
}

func (h *Handler) handleWritePrompt(c tele.Context) error {
	id := c.Data()
	w, ok := h.svc.Vocabulary.Get(id)
	if !ok {
		return h.reply(c, userMessage(service.ErrWordNotFound), backMarkup())
	}
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingSentence, WordID: id})
	_ = c.Respond()
	return c.Send(fmt.Sprintf("✍️ 請用「%s」造一個英文句子：", w.Word), cancelMarkup())
}

func (h *Handler) practiceWriting(c tele.Context, id, sentence string) error {
	h.working(c)
	attempt, err := h.svc.Vocabulary.PracticeWriting(h.ctx, id, sentence)
	if err != nil {
		return h.fail(c, "writing_feedback", err)
	}
	return c.Send("✍️ "+attempt.Sentence+"\n\n"+attempt.Feedback, wordBackMarkup(id))
}

func (h *Handler) handleTagPrompt(c tele.Context) error {
	id := c.Data()
	if _, ok := h.svc.Vocabulary.Get(id); !ok {
		return h.reply(c, userMessage(service.ErrWordNotFound), backMarkup())
	}
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingTag, WordID: id})
	_ = c.Respond()
	return c.Send("🏷 請輸入標籤名稱：", cancelMarkup())
}

func (h *Handler) handleUntag(c tele.Context) error {
	args := c.Args()
	if len(args) != 2 {
		return c.Respond()
	}
	if h.svc.Vocabulary.RemoveTag(args[0], args[1]) {
		h.logger.Info("Tag removed", zap.String("word_id", args[0]), zap.String("tag", args[1]))
	}
	return h.showWord(c, args[0])
}

// handleTags lists every tag in use
func (h *Handler) handleTags(c tele.Context) error {
	tags := h.svc.Vocabulary.Tags()
	if len(tags) == 0 {
		return h.reply(c, "還沒有任何標籤。", backMarkup())
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, tag := range tags {
		if !fitsCallback(btnTagged.Unique, tag) {
			continue
		}
		n := len(h.svc.Vocabulary.WordsWithTag(tag))
		rows = append(rows, markup.Row(markup.Data(fmt.Sprintf("🏷 %s (%d)", tag, n), btnTagged.Unique, tag)))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return h.reply(c, "🏷 標籤", markup)
}

func (h *Handler) handleTagged(c tele.Context) error {
	tag := c.Data()
	return h.showWordList(c, "🏷 "+tag, h.svc.Vocabulary.WordsWithTag(tag), 1, "")
}

// handleGenerate adds a batch of AI generated words
func (h *Handler) handleGenerate(c tele.Context) error {
	h.working(c)
	added, err := h.svc.Vocabulary.BulkGenerate(h.ctx)
	if err != nil {
		return h.fail(c, "generate_words", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✨ 新增了 %d 個單字：\n", len(added))
	for _, w := range added {
		fmt.Fprintf(&b, "\n• %s：%s", w.Word, w.ChineseDefinition)
	}
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnReview), markup.Row(btnMainMenu))
	return c.Send(b.String(), markup)
}

func wordBackMarkup(id string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("◀️ 回到單字", btnWord.Unique, id), btnMainMenu))
	return markup
}
