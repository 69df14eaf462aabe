package ai

import (
	"context"
	"strings"

	"vocabdeck/internal/domain"
)

type validator interface {
	Validate() error
}

func (w wordEntry) Validate() error { return w.validate(OpDefineWord) }

func (structureResponse) Validate() error { return nil }

func structured[T validator](ctx context.Context, c *Client, op string, schema map[string]any, prompt string) (T, error) {
	var out T
	req := Request{Name: op, Instructions: jsonInstructions, Input: prompt, Schema: schema}
	if err := c.completeJSON(ctx, req, &out); err != nil {
		return out, err
	}
	if err := out.Validate(); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) text(ctx context.Context, op, prompt string) (string, error) {
	out, err := c.complete(ctx, Request{Name: op, Instructions: textInstructions, Input: prompt})
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", shapeErr(op, "empty text")
	}
	return out, nil
}

// DefineWord fills in the text fields of a word typed by the learner
func (c *Client) DefineWord(ctx context.Context, word string) (domain.WordStub, error) {
	r, err := structured[wordEntry](ctx, c, OpDefineWord, wordEntrySchema, defineWordPrompt(word))
	if err != nil {
		return domain.WordStub{}, err
	}
	return r.stub(), nil
}

// GenerateWords asks for count new words not in exclude
func (c *Client) GenerateWords(ctx context.Context, exclude []string, count int) ([]domain.WordStub, error) {
	r, err := structured[wordListResponse](ctx, c, OpGenerateWords, wordListSchema, generateWordsPrompt(exclude, count))
	if err != nil {
		return nil, err
	}
	stubs := make([]domain.WordStub, 0, len(r.Words))
	for _, w := range r.Words {
		stubs = append(stubs, w.stub())
	}
	return stubs, nil
}

func (c *Client) ExplainSentence(ctx context.Context, word, sentence string) (string, error) {
	return c.text(ctx, OpExplainSentence, explainSentencePrompt(word, sentence))
}

func (c *Client) MoreExamples(ctx context.Context, word, existing string) ([]string, error) {
	r, err := structured[examplesResponse](ctx, c, OpMoreExamples, examplesSchema, moreExamplesPrompt(word, existing))
	if err != nil {
		return nil, err
	}
	return r.Examples, nil
}

func (c *Client) SimilarWord(ctx context.Context, word string) (domain.SimilarWord, error) {
	r, err := structured[similarWordResponse](ctx, c, OpSimilarWord, similarWordSchema, similarWordPrompt(word))
	if err != nil {
		return domain.SimilarWord{}, err
	}
	return domain.SimilarWord(r), nil
}

// WordStructure splits word into morphemes. When the model returns no
// usable part the word itself is reported as the root.
func (c *Client) WordStructure(ctx context.Context, word string) (domain.WordStructure, error) {
	r, err := structured[structureResponse](ctx, c, OpWordStructure, structureSchema, wordStructurePrompt(word))
	if err != nil {
		return domain.WordStructure{}, err
	}
	return r.structure(word), nil
}

func (c *Client) WritingFeedback(ctx context.Context, word, sentence string) (string, error) {
	return c.text(ctx, OpWritingFeedback, writingFeedbackPrompt(word, sentence))
}

// TopicPack generates a pack for topic. ID and category are left for the caller.
func (c *Client) TopicPack(ctx context.Context, topic string, existingTitles []string) (domain.TopicPack, error) {
	r, err := structured[topicPackResponse](ctx, c, OpTopicPack, topicPackSchema, topicPackPrompt(topic, existingTitles))
	if err != nil {
		return domain.TopicPack{}, err
	}
	return r.pack(), nil
}

func (c *Client) GroupTitle(ctx context.Context, titles []string) (string, error) {
	out, err := c.text(ctx, OpGroupTitle, groupTitlePrompt(titles))
	if err != nil {
		return "", err
	}
	if t := cleanTitle(out); t != "" {
		return t, nil
	}
	return "", shapeErr(OpGroupTitle, "title empty after cleanup")
}

func (c *Client) DailySlang(ctx context.Context, exclude []string) (domain.DailyWord, error) {
	r, err := structured[slangResponse](ctx, c, OpDailySlang, slangSchema, dailySlangPrompt(exclude))
	if err != nil {
		return domain.DailyWord{}, err
	}
	return domain.DailyWord{
		Slang:          r.Slang,
		Phonetic:       r.Phonetic,
		Definition:     r.Definition,
		Example:        r.Example,
		ChineseExample: r.ChineseExample,
		Trivia:         r.Trivia,
	}, nil
}

func (c *Client) DailyGrammar(ctx context.Context, exclude []string) (domain.DailyGrammar, error) {
	r, err := structured[grammarResponse](ctx, c, OpDailyGrammar, grammarSchema, dailyGrammarPrompt(exclude))
	if err != nil {
		return domain.DailyGrammar{}, err
	}
	g := domain.DailyGrammar{
		Topic:       r.Topic,
		Explanation: r.Explanation,
		Examples:    r.Examples,
	}
	for _, q := range r.Quiz {
		g.Quiz = append(g.Quiz, domain.GrammarQuestion(q))
	}
	return g, nil
}

func (c *Client) DailyQuote(ctx context.Context, exclude []string) (domain.DailyQuote, error) {
	r, err := structured[quoteResponse](ctx, c, OpDailyQuote, quoteSchema, dailyQuotePrompt(exclude))
	if err != nil {
		return domain.DailyQuote{}, err
	}
	return domain.DailyQuote{
		Quote:              r.Quote,
		Author:             r.Author,
		AuthorTranslation:  r.AuthorTranslation,
		ChineseTranslation: r.ChineseTranslation,
	}, nil
}

func (c *Client) ReadingTest(ctx context.Context) (domain.ReadingTest, error) {
	r, err := structured[readingResponse](ctx, c, OpReadingTest, readingSchema, readingTestPrompt)
	if err != nil {
		return domain.ReadingTest{}, err
	}
	t := domain.ReadingTest{
		Title:      r.Title,
		Article:    r.Article,
		Questions:  []domain.ReadingQuestion{},
		Vocabulary: []domain.VocabularyHighlight{},
	}
	for _, q := range r.Questions {
		t.Questions = append(t.Questions, domain.ReadingQuestion(q))
	}
	for _, v := range r.Vocabulary {
		t.Vocabulary = append(t.Vocabulary, domain.VocabularyHighlight(v))
	}
	return t, nil
}

// StudyPlan generates today's tasks. Every task starts incomplete.
func (c *Client) StudyPlan(ctx context.Context, in PlanInput) (domain.StudyPlan, error) {
	r, err := structured[planResponse](ctx, c, OpStudyPlan, planSchema, studyPlanPrompt(in))
	if err != nil {
		return domain.StudyPlan{}, err
	}
	p := domain.StudyPlan{PlanTitle: r.PlanTitle}
	for _, t := range r.Tasks {
		task := domain.StudyTask(t)
		task.IsCompleted = false
		p.Tasks = append(p.Tasks, task)
	}
	return p, nil
}
