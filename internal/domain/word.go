package domain

// DefaultFamiliarity is assigned to every new word
const DefaultFamiliarity = 3

// MaxFamiliarity is the top of the informational familiarity scale
const MaxFamiliarity = 5

// CurrentSchemaVersion is the version written on every word record
const CurrentSchemaVersion = 3

// TagAIGenerated marks words produced by bulk generation
const TagAIGenerated = "ai-generated"

// Word is a single vocabulary entry in the learner's collection
type Word struct {
	ID                  string           `json:"id"`
	Word                string           `json:"word"`
	Phonetic            string           `json:"phonetic"`
	Definition          string           `json:"definition"`
	ChineseDefinition   string           `json:"chineseDefinition"`
	ExampleSentence     string           `json:"exampleSentence"`
	Familiarity         int              `json:"familiarity"`
	Tags                []string         `json:"tags"`
	AdditionalExamples  []string         `json:"additionalExamples"`
	SentenceAnalysis    *string          `json:"sentenceAnalysis,omitempty"`
	SimilarWordAnalysis *SimilarWord     `json:"similarWordAnalysis,omitempty"`
	StructureAnalysis   *WordStructure   `json:"structureAnalysis,omitempty"`
	WritingPractice     []WritingAttempt `json:"writingPractice"`
	DueDate             string           `json:"dueDate"`
	Interval            int              `json:"interval"`
	SchemaVersion       int              `json:"schemaVersion"`
}

// WordStub carries the text fields of a word without any learning state
type WordStub struct {
	Word              string `json:"word"`
	Phonetic          string `json:"phonetic"`
	Definition        string `json:"definition"`
	ChineseDefinition string `json:"chineseDefinition"`
	ExampleSentence   string `json:"exampleSentence"`
}

// SimilarWord is a commonly confused word with a usage comparison
type SimilarWord struct {
	ComparisonTarget string `json:"comparisonTarget"`
	Phonetic         string `json:"phonetic"`
	Definition       string `json:"definition"`
	Example          string `json:"example"`
	UsageDifference  string `json:"usageDifference"`
}

// Morpheme is one part of a word's structure
type Morpheme struct {
	Part    string `json:"part"`
	Meaning string `json:"meaning"`
}

// WordStructure splits a word into prefix, root and suffix. Absent parts stay nil.
type WordStructure struct {
	Prefix *Morpheme `json:"prefix,omitempty"`
	Root   *Morpheme `json:"root,omitempty"`
	Suffix *Morpheme `json:"suffix,omitempty"`
}

// Empty reports whether no part of the structure is known
func (s WordStructure) Empty() bool {
	return s.Prefix == nil && s.Root == nil && s.Suffix == nil
}

// WritingAttempt is a sentence written by the learner and the feedback it got
type WritingAttempt struct {
	Sentence string `json:"sentence"`
	Feedback string `json:"feedback"`
}

// Stub returns the text fields of the word
func (w Word) Stub() WordStub {
	return WordStub{
		Word:              w.Word,
		Phonetic:          w.Phonetic,
		Definition:        w.Definition,
		ChineseDefinition: w.ChineseDefinition,
		ExampleSentence:   w.ExampleSentence,
	}
}

// HasTag reports whether the word carries tag
func (w Word) HasTag(tag string) bool {
	for _, t := range w.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate shared slices
func (w Word) Clone() Word {
	c := w
	c.Tags = cloneSlice(w.Tags)
	c.AdditionalExamples = cloneSlice(w.AdditionalExamples)
	c.WritingPractice = cloneSlice(w.WritingPractice)
	if w.SentenceAnalysis != nil {
		s := *w.SentenceAnalysis
		c.SentenceAnalysis = &s
	}
	if w.SimilarWordAnalysis != nil {
		s := *w.SimilarWordAnalysis
		c.SimilarWordAnalysis = &s
	}
	if w.StructureAnalysis != nil {
		s := *w.StructureAnalysis
		c.StructureAnalysis = &s
	}
	return c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
