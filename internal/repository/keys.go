package repository

// Tracked keys. Their names match the keys of existing backups so old
// export files stay importable.
const (
	KeyWords             = "toeic_vocabulary_words"
	KeyTopicPacks        = "toeic_topic_packs"
	KeyDailyWord         = "daily_word_history"
	KeyDailyGrammar      = "daily_grammar_history"
	KeyDailyQuote        = "daily_famous_quote"
	KeyStreak            = "learning_streak_data"
	KeyActivityLog       = "learning_activity_log"
	KeyStudyPlan         = "ai_daily_study_plan"
	KeyGroupTitles       = "topic_pack_group_titles"
	KeyReadingComprehend = "daily_reading_comprehension"
)

// KeyBotOwner holds the chat id allowed to use the bot. It is not part of backups.
const KeyBotOwner = "bot_owner_id"

// TrackedKeys returns every key included in export and required by import
func TrackedKeys() []string {
	return []string{
		KeyWords,
		KeyTopicPacks,
		KeyDailyWord,
		KeyDailyGrammar,
		KeyDailyQuote,
		KeyStreak,
		KeyActivityLog,
		KeyStudyPlan,
		KeyGroupTitles,
		KeyReadingComprehend,
	}
}

// IsTracked reports whether key belongs to the backup set
func IsTracked(key string) bool {
	for _, k := range TrackedKeys() {
		if k == key {
			return true
		}
	}
	return false
}
