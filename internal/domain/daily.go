package domain

// DailyEntry is content generated at most once per calendar date
type DailyEntry interface {
	EntryDate() string
	// RepeatKey identifies the entry when asking the generator to avoid repeats
	RepeatKey() string
}

// DailyWord is the slang word of the day
type DailyWord struct {
	Date           string `json:"date"`
	Slang          string `json:"slang"`
	Phonetic       string `json:"phonetic"`
	Definition     string `json:"definition"`
	Example        string `json:"example"`
	ChineseExample string `json:"chineseExample"`
	Trivia         string `json:"trivia"`
}

func (d DailyWord) EntryDate() string { return d.Date }
func (d DailyWord) RepeatKey() string { return d.Slang }

// GrammarQuestion is a fill-in-the-blank question attached to a grammar lesson
type GrammarQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// DailyGrammar is the grammar lesson of the day
type DailyGrammar struct {
	Date        string            `json:"date"`
	Topic       string            `json:"topic"`
	Explanation string            `json:"explanation"`
	Examples    []string          `json:"examples"`
	Quiz        []GrammarQuestion `json:"quiz"`
}

func (d DailyGrammar) EntryDate() string { return d.Date }
func (d DailyGrammar) RepeatKey() string { return d.Topic }

// DailyQuote is the quote of the day
type DailyQuote struct {
	Date               string `json:"date"`
	Quote              string `json:"quote"`
	Author             string `json:"author"`
	AuthorTranslation  string `json:"authorTranslation"`
	ChineseTranslation string `json:"chineseTranslation"`
}

func (d DailyQuote) EntryDate() string { return d.Date }
func (d DailyQuote) RepeatKey() string { return d.Author }
