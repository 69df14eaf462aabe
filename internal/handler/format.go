package handler

import (
	"fmt"
	"strings"
	"time"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/service"
)

const mainMenuText = "🏠 主選單\n\n請選擇功能："

func formatCardFront(w domain.Word, done, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 複習 %d/%d\n\n", done+1, total)
	b.WriteString(w.Word)
	if w.Phonetic != "" {
		fmt.Fprintf(&b, "  %s", w.Phonetic)
	}
	return b.String()
}

func formatCardBack(w domain.Word, done, total int) string {
	var b strings.Builder
	b.WriteString(formatCardFront(w, done, total))
	fmt.Fprintf(&b, "\n\n%s\n%s\n\n例句：%s", w.ChineseDefinition, w.Definition, w.ExampleSentence)
	return b.String()
}

func formatReviewOutcome(word string, rating domain.Rating, outcome service.ReviewOutcome) string {
	return fmt.Sprintf("%s → %s，下次複習：%s", word, rating.Label(), outcome.DueDate)
}

func formatWord(w domain.Word) string {
	var b strings.Builder
	b.WriteString("📝 " + w.Word)
	if w.Phonetic != "" {
		b.WriteString("  " + w.Phonetic)
	}
	fmt.Fprintf(&b, "\n\n%s\n%s\n\n例句：%s\n", w.ChineseDefinition, w.Definition, w.ExampleSentence)

	for _, ex := range w.AdditionalExamples {
		b.WriteString("• " + ex + "\n")
	}

	fmt.Fprintf(&b, "\n熟悉度：%s\n下次複習：%s", familiarityBar(w.Familiarity), w.DueDate)
	if len(w.Tags) > 0 {
		b.WriteString("\n標籤：" + strings.Join(w.Tags, "、"))
	}
	if n := len(w.WritingPractice); n > 0 {
		fmt.Fprintf(&b, "\n造句練習：%d 次", n)
	}
	return b.String()
}

func familiarityBar(level int) string {
	if level < 0 {
		level = 0
	}
	if level > domain.MaxFamiliarity {
		level = domain.MaxFamiliarity
	}
	return strings.Repeat("★", level) + strings.Repeat("☆", domain.MaxFamiliarity-level)
}

func formatSimilar(word string, s domain.SimilarWord) string {
	return fmt.Sprintf("🔀 %s vs %s %s\n\n%s\n例句：%s\n\n差異：%s",
		word, s.ComparisonTarget, s.Phonetic, s.Definition, s.Example, s.UsageDifference)
}

func formatStructure(word string, s domain.WordStructure) string {
	var b strings.Builder
	b.WriteString("🧩 " + word + " 的結構\n")
	parts := []struct {
		label string
		m     *domain.Morpheme
	}{
		{"字首", s.Prefix},
		{"字根", s.Root},
		{"字尾", s.Suffix},
	}
	for _, p := range parts {
		if p.m == nil {
			continue
		}
		fmt.Fprintf(&b, "\n%s：%s（%s）", p.label, p.m.Part, p.m.Meaning)
	}
	return b.String()
}

func formatDailyWord(d domain.DailyWord) string {
	return fmt.Sprintf("🔥 每日俚語 %s\n\n%s  %s\n%s\n\n%s\n%s\n\n💡 %s",
		d.Date, d.Slang, d.Phonetic, d.Definition, d.Example, d.ChineseExample, d.Trivia)
}

func formatGrammar(g domain.DailyGrammar) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 每日文法 %s\n\n%s\n\n%s\n", g.Date, g.Topic, g.Explanation)
	for _, ex := range g.Examples {
		b.WriteString("\n• " + ex)
	}
	for i, q := range g.Quiz {
		fmt.Fprintf(&b, "\n\n第 %d 題：%s", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "\n  %c. %s", 'A'+j, opt)
		}
	}
	return b.String()
}

func formatQuote(q domain.DailyQuote) string {
	return fmt.Sprintf("💬 每日名言 %s\n\n“%s”\n— %s（%s）\n\n%s",
		q.Date, q.Quote, q.Author, q.AuthorTranslation, q.ChineseTranslation)
}

func formatPlan(p domain.StudyPlan) string {
	done, total := p.Progress()
	var b strings.Builder
	fmt.Fprintf(&b, "🗓 %s\n完成 %d/%d\n", p.PlanTitle, done, total)
	for _, t := range p.Tasks {
		mark := "⬜"
		if t.IsCompleted {
			mark = "✅"
		}
		fmt.Fprintf(&b, "\n%s %s %s\n%s\n", mark, t.Icon, t.Title, t.Description)
	}
	return b.String()
}

func formatReading(r domain.ReadingTest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📰 %s\n\n%s\n", r.Title, r.Article)
	for i, q := range r.Questions {
		fmt.Fprintf(&b, "\n第 %d 題：%s", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "\n  %c. %s", 'A'+j, opt)
		}
		b.WriteString("\n")
	}
	if len(r.Vocabulary) > 0 {
		b.WriteString("\n重點詞彙：")
		for _, v := range r.Vocabulary {
			fmt.Fprintf(&b, "\n• %s：%s", v.WordOrPhrase, v.Definition)
		}
	}
	return b.String()
}

func formatPack(p domain.TopicPack) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 %s\n%s\n\n%s\n\n單字：", p.ChineseTitle, p.Title, p.Description)
	for _, w := range p.Words {
		fmt.Fprintf(&b, "\n• %s %s：%s", w.Word, w.Phonetic, w.ChineseDefinition)
	}
	if len(p.Dialogue) > 0 {
		b.WriteString("\n\n對話：")
		for _, line := range p.Dialogue {
			fmt.Fprintf(&b, "\n%s：%s\n（%s）", line.Speaker, line.Line, line.Translation)
		}
	}
	return b.String()
}

func formatStats(streak domain.Streak, total, due int, days []domain.Day, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 學習統計\n\n🔥 連續學習：%d 天\n📖 單字總數：%d\n⏰ 今日待複習：%d\n\n最近 %d 天：\n", streak.Streak, total, due, len(days))
	for _, d := range days {
		fmt.Fprintf(&b, "%s %s（%d）\n", d.Bar(), d.DisplayString(now), d.ReviewCount)
	}
	return b.String()
}

// answerMark labels a multiple choice option index
func answerMark(i int) string {
	return string(rune('A' + i))
}
