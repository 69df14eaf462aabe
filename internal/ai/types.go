package ai

import (
	"strings"

	"vocabdeck/internal/domain"
)

const (
	OpDefineWord      = "DefineWord"
	OpGenerateWords   = "GenerateWords"
	OpExplainSentence = "ExplainSentence"
	OpMoreExamples    = "MoreExamples"
	OpSimilarWord     = "SimilarWord"
	OpWordStructure   = "WordStructure"
	OpWritingFeedback = "WritingFeedback"
	OpTopicPack       = "TopicPack"
	OpGroupTitle      = "GroupTitle"
	OpDailySlang      = "DailySlang"
	OpDailyGrammar    = "DailyGrammar"
	OpDailyQuote      = "DailyQuote"
	OpReadingTest     = "ReadingTest"
	OpStudyPlan       = "StudyPlan"
)

func blank(s string) bool { return strings.TrimSpace(s) == "" }

type wordEntry struct {
	Word              string `json:"word" jsonschema:"description=The word itself."`
	Phonetic          string `json:"phonetic" jsonschema:"description=The phonetic transcription (IPA) of the word."`
	Definition        string `json:"definition" jsonschema:"description=A concise English definition suitable for a learner."`
	ChineseDefinition string `json:"chineseDefinition" jsonschema:"description=The definition in Traditional Chinese."`
	ExampleSentence   string `json:"exampleSentence" jsonschema:"description=An example sentence using the word."`
}

func (w wordEntry) validate(op string) error {
	if blank(w.Word) || blank(w.Definition) {
		return shapeErr(op, "word entry missing word or definition")
	}
	return nil
}

func (w wordEntry) stub() domain.WordStub {
	return domain.WordStub{
		Word:              strings.TrimSpace(w.Word),
		Phonetic:          w.Phonetic,
		Definition:        w.Definition,
		ChineseDefinition: w.ChineseDefinition,
		ExampleSentence:   w.ExampleSentence,
	}
}

type wordListResponse struct {
	Words []wordEntry `json:"words"`
}

func (r wordListResponse) Validate() error {
	if len(r.Words) == 0 {
		return shapeErr(OpGenerateWords, "no words")
	}
	for _, w := range r.Words {
		if err := w.validate(OpGenerateWords); err != nil {
			return err
		}
	}
	return nil
}

type examplesResponse struct {
	Examples []string `json:"examples" jsonschema:"description=New example sentences."`
}

func (r examplesResponse) Validate() error {
	if r.Examples == nil {
		return shapeErr(OpMoreExamples, "examples missing")
	}
	return nil
}

type similarWordResponse struct {
	ComparisonTarget string `json:"comparisonTarget" jsonschema:"description=The similar word to compare with."`
	Phonetic         string `json:"phonetic"`
	Definition       string `json:"definition"`
	Example          string `json:"example"`
	UsageDifference  string `json:"usageDifference" jsonschema:"description=The usage difference explained in Traditional Chinese."`
}

func (r similarWordResponse) Validate() error {
	if blank(r.ComparisonTarget) || blank(r.UsageDifference) {
		return shapeErr(OpSimilarWord, "missing comparison target or usage difference")
	}
	return nil
}

type morphemeEntry struct {
	Part    string `json:"part"`
	Meaning string `json:"meaning"`
}

func (m morphemeEntry) morpheme() *domain.Morpheme {
	if blank(m.Part) || blank(m.Meaning) {
		return nil
	}
	return &domain.Morpheme{Part: strings.TrimSpace(m.Part), Meaning: strings.TrimSpace(m.Meaning)}
}

// structureResponse uses empty strings for parts that do not exist
type structureResponse struct {
	Prefix morphemeEntry `json:"prefix"`
	Root   morphemeEntry `json:"root"`
	Suffix morphemeEntry `json:"suffix"`
}

// structureUnknown is the meaning stored when no part could be analysed
const structureUnknown = "無法分析結構"

func (r structureResponse) structure(word string) domain.WordStructure {
	s := domain.WordStructure{
		Prefix: r.Prefix.morpheme(),
		Root:   r.Root.morpheme(),
		Suffix: r.Suffix.morpheme(),
	}
	if s.Empty() {
		s.Root = &domain.Morpheme{Part: word, Meaning: structureUnknown}
	}
	return s
}

type dialogueEntry struct {
	Speaker     string `json:"speaker"`
	Line        string `json:"line"`
	Translation string `json:"translation"`
}

type topicPackResponse struct {
	Title        string          `json:"title" jsonschema:"description=An engaging English title."`
	ChineseTitle string          `json:"chineseTitle"`
	Description  string          `json:"description"`
	Words        []wordEntry     `json:"words"`
	Dialogue     []dialogueEntry `json:"dialogue"`
}

func (r topicPackResponse) Validate() error {
	if blank(r.Title) || len(r.Words) == 0 || len(r.Dialogue) == 0 {
		return shapeErr(OpTopicPack, "missing title, words or dialogue")
	}
	for _, w := range r.Words {
		if err := w.validate(OpTopicPack); err != nil {
			return err
		}
	}
	return nil
}

func (r topicPackResponse) pack() domain.TopicPack {
	p := domain.TopicPack{
		Title:        r.Title,
		ChineseTitle: r.ChineseTitle,
		Description:  r.Description,
	}
	for _, w := range r.Words {
		p.Words = append(p.Words, w.stub())
	}
	for _, d := range r.Dialogue {
		p.Dialogue = append(p.Dialogue, domain.DialogueLine(d))
	}
	return p
}

type slangResponse struct {
	Slang          string `json:"slang" jsonschema:"description=The English slang word or phrase."`
	Phonetic       string `json:"phonetic"`
	Definition     string `json:"definition" jsonschema:"description=The main definition in Traditional Chinese."`
	Example        string `json:"example"`
	ChineseExample string `json:"chineseExample"`
	Trivia         string `json:"trivia" jsonschema:"description=A fun fact about the slang in Traditional Chinese."`
}

func (r slangResponse) Validate() error {
	if blank(r.Slang) || blank(r.Definition) || blank(r.Example) || blank(r.ChineseExample) || blank(r.Trivia) {
		return shapeErr(OpDailySlang, "missing required field")
	}
	return nil
}

type grammarQuestionEntry struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type grammarResponse struct {
	Topic       string                 `json:"topic"`
	Explanation string                 `json:"explanation"`
	Examples    []string               `json:"examples"`
	Quiz        []grammarQuestionEntry `json:"quiz"`
}

func (r grammarResponse) Validate() error {
	if blank(r.Topic) || blank(r.Explanation) || r.Examples == nil || r.Quiz == nil {
		return shapeErr(OpDailyGrammar, "missing required field")
	}
	return nil
}

type quoteResponse struct {
	Quote              string `json:"quote"`
	Author             string `json:"author"`
	AuthorTranslation  string `json:"authorTranslation"`
	ChineseTranslation string `json:"chineseTranslation"`
}

func (r quoteResponse) Validate() error {
	if blank(r.Quote) || blank(r.Author) || blank(r.AuthorTranslation) || blank(r.ChineseTranslation) {
		return shapeErr(OpDailyQuote, "missing required field")
	}
	return nil
}

type readingQuestionEntry struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

type highlightEntry struct {
	WordOrPhrase string `json:"wordOrPhrase"`
	Definition   string `json:"definition"`
	Example      string `json:"example"`
}

type readingResponse struct {
	Title      string                 `json:"title"`
	Article    string                 `json:"article"`
	Questions  []readingQuestionEntry `json:"questions"`
	Vocabulary []highlightEntry       `json:"vocabulary"`
}

func (r readingResponse) Validate() error {
	if blank(r.Title) || blank(r.Article) || r.Questions == nil || r.Vocabulary == nil {
		return shapeErr(OpReadingTest, "missing required field")
	}
	for i, q := range r.Questions {
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
			return shapeErr(OpReadingTest, "question %d answer index %d out of range", i, q.CorrectAnswerIndex)
		}
	}
	return nil
}

type taskEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionType  string `json:"actionType"`
	Icon        string `json:"icon"`
	IsCompleted bool   `json:"isCompleted"`
}

type planResponse struct {
	PlanTitle string      `json:"planTitle"`
	Tasks     []taskEntry `json:"tasks"`
}

func (r planResponse) Validate() error {
	if blank(r.PlanTitle) || len(r.Tasks) == 0 {
		return shapeErr(OpStudyPlan, "missing plan title or tasks")
	}
	seen := make(map[string]bool, len(r.Tasks))
	for _, t := range r.Tasks {
		if blank(t.ID) {
			return shapeErr(OpStudyPlan, "task without id")
		}
		if seen[t.ID] {
			return shapeErr(OpStudyPlan, "duplicate task id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

var (
	wordEntrySchema   = generateSchema[wordEntry]()
	wordListSchema    = generateSchema[wordListResponse]()
	examplesSchema    = generateSchema[examplesResponse]()
	similarWordSchema = generateSchema[similarWordResponse]()
	structureSchema   = generateSchema[structureResponse]()
	topicPackSchema   = generateSchema[topicPackResponse]()
	slangSchema       = generateSchema[slangResponse]()
	grammarSchema     = generateSchema[grammarResponse]()
	quoteSchema       = generateSchema[quoteResponse]()
	readingSchema     = generateSchema[readingResponse]()
	planSchema        = generateSchema[planResponse]()
)
