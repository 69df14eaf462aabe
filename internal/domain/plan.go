package domain

// StudyTask is one step of the daily study plan
type StudyTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionType  string `json:"actionType"`
	Icon        string `json:"icon"`
	IsCompleted bool   `json:"isCompleted"`
}

// StudyPlan is the generated task list for one calendar day
type StudyPlan struct {
	Date      string      `json:"date"`
	PlanTitle string      `json:"planTitle"`
	Tasks     []StudyTask `json:"tasks"`
}

func (p StudyPlan) EntryDate() string { return p.Date }

// Progress returns completed and total task counts
func (p StudyPlan) Progress() (done, total int) {
	for _, t := range p.Tasks {
		if t.IsCompleted {
			done++
		}
	}
	return done, len(p.Tasks)
}

// ReadingQuestion is a multiple choice question about the article
type ReadingQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// VocabularyHighlight is a phrase from the article worth learning
type VocabularyHighlight struct {
	WordOrPhrase string `json:"wordOrPhrase"`
	Definition   string `json:"definition"`
	Example      string `json:"example"`
}

// ReadingTest is the daily reading comprehension exercise
type ReadingTest struct {
	Date       string                `json:"date"`
	Title      string                `json:"title"`
	Article    string                `json:"article"`
	Questions  []ReadingQuestion     `json:"questions"`
	Vocabulary []VocabularyHighlight `json:"vocabulary"`
}

func (r ReadingTest) EntryDate() string { return r.Date }
