package handler

import (
	tele "gopkg.in/telebot.v3"
)

// Inline keyboard buttons. Buttons with a payload are built per message
// with markup.Data(text, btn.Unique, payload...).
var (
	btnReview   = tele.Btn{Unique: "review", Text: "📚 開始複習"}
	btnReveal   = tele.Btn{Unique: "reveal", Text: "👀 顯示答案"}
	btnRate     = tele.Btn{Unique: "rate"}
	btnAddWord  = tele.Btn{Unique: "add_word", Text: "➕ 新增單字"}
	btnWords    = tele.Btn{Unique: "words", Text: "📖 單字列表"}
	btnWord     = tele.Btn{Unique: "word"}
	btnDaily    = tele.Btn{Unique: "daily", Text: "🔥 每日俚語"}
	btnGrammar  = tele.Btn{Unique: "grammar", Text: "📝 每日文法"}
	btnQuote    = tele.Btn{Unique: "quote", Text: "💬 每日名言"}
	btnPlan     = tele.Btn{Unique: "plan", Text: "🗓 今日學習計畫"}
	btnReading  = tele.Btn{Unique: "reading", Text: "📰 閱讀測驗"}
	btnTopics   = tele.Btn{Unique: "topics", Text: "🎯 主題學習包"}
	btnStats    = tele.Btn{Unique: "stats", Text: "📊 學習統計"}
	btnCancel   = tele.Btn{Unique: "cancel", Text: "❌ 取消"}
	btnMainMenu = tele.Btn{Unique: "main_menu", Text: "🏠 主選單"}

	btnExplain      = tele.Btn{Unique: "explain", Text: "🔍 句子解析"}
	btnSimilar      = tele.Btn{Unique: "similar", Text: "🔀 易混淆字"}
	btnStructure    = tele.Btn{Unique: "structure", Text: "🧩 字根字首"}
	btnMoreExamples = tele.Btn{Unique: "more_ex", Text: "➕ 更多例句"}
	btnWrite        = tele.Btn{Unique: "write", Text: "✍️ 造句練習"}
	btnTag          = tele.Btn{Unique: "tag", Text: "🏷 加標籤"}
	btnUntag        = tele.Btn{Unique: "untag"}
	btnTagged       = tele.Btn{Unique: "tagged"}

	btnGrammarAnswer = tele.Btn{Unique: "g_ans"}
	btnTask          = tele.Btn{Unique: "task"}
	btnReadingAnswer = tele.Btn{Unique: "r_ans"}

	btnSuggested  = tele.Btn{Unique: "suggest"}
	btnPack       = tele.Btn{Unique: "pack"}
	btnAddPack    = tele.Btn{Unique: "add_pack", Text: "📥 加入我的單字"}
	btnDeletePack = tele.Btn{Unique: "del_pack", Text: "🗑 刪除學習包"}
)

// Telegram rejects callback data longer than this
const maxCallbackData = 64

// fitsCallback reports whether unique plus payload fits in one button
func fitsCallback(unique string, payload ...string) bool {
	n := 1 + len(unique)
	for _, p := range payload {
		n += 1 + len(p)
	}
	return n <= maxCallbackData
}

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnReview, btnAddWord),
		menu.Row(btnWords, btnStats),
		menu.Row(btnPlan, btnReading),
		menu.Row(btnDaily, btnGrammar, btnQuote),
		menu.Row(btnTopics),
	)
	return menu
}

func backMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))
	return markup
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
